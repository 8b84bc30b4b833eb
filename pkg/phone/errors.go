package phone

import "errors"

// ErrUnknownStrategy is returned by FromStrategy for unsupported names.
var ErrUnknownStrategy = errors.New("unknown phone validation strategy")

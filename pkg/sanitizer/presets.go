package sanitizer

// Preset pipelines for the login and signup fields.
var (
	Name     = Compose(RemoveControlChars, CollapseWhitespace)
	Email    = Compose(RemoveControlChars, NormalizeEmail)
	UserName = Compose(RemoveControlChars, Trim)
	Phone    = Compose(RemoveControlChars, NormalizePhone)
)

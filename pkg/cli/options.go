package cli

import (
	"io"
	"os"
)

// Option configures the root command.
type Option func(*options)

type options struct {
	out    io.Writer
	logOut io.Writer
	env    map[string]string
}

// WithOutput sets where reports are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.logOut = w
		}
	}
}

// WithEnvironment reads configuration from vars instead of the process
// environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.env = vars
	}
}

func newOptions(opts ...Option) *options {
	o := &options{out: os.Stdout, logOut: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

package parse

type parseOpts struct {
	skipBlank bool
	filename  string
}

type ParseOption func(*parseOpts)

// SkipBlank makes blank lines be ignored rather than rejected.  Line
// indexes in errors still refer to the unfiltered input.
func SkipBlank() ParseOption {
	return func(o *parseOpts) { o.skipBlank = true }
}

// WithFilename names the input in error messages.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

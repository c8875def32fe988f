package confmap

// ValidateOption configures a single Validate call.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	messages Messages
	reporter Reporter
}

// WithMessages sets the error-message tree for the call. See Messages
// for the accepted shapes.
func WithMessages(msgs Messages) ValidateOption {
	return func(o *validateOptions) {
		o.messages = msgs
	}
}

// WithMessage sets a single blanket invalid message for the whole
// template, shorthand for a Messages tree carrying only a root "_".
func WithMessage(msg string) ValidateOption {
	return func(o *validateOptions) {
		o.messages = blanket(msg)
	}
}

// WithReporter substitutes the reporting hook. The default prints each
// message to standard output.
func WithReporter(r Reporter) ValidateOption {
	return func(o *validateOptions) {
		if r != nil {
			o.reporter = r
		}
	}
}

package ggedit

import "github.com/gogpu/ggedit/buffer"

// Option configures a Session during creation.
//
// Example:
//
//	s, err := ggedit.NewSession(font,
//	    ggedit.WithText("hello"),
//	    ggedit.WithBufferOptions(buffer.WithMaxCapacity(1<<20)),
//	)
type Option func(*sessionOptions)

type sessionOptions struct {
	text       string
	caretWidth float64
	bufferOpts []buffer.Option
}

func defaultOptions() sessionOptions {
	return sessionOptions{
		caretWidth: 2,
	}
}

// WithText sets the initial buffer contents. The string is stored as is,
// one byte per character.
func WithText(s string) Option {
	return func(o *sessionOptions) {
		o.text = s
	}
}

// WithCaretWidth sets the width in pixels of the rectangle returned by
// Session.Caret. Default: 2.
func WithCaretWidth(px float64) Option {
	return func(o *sessionOptions) {
		o.caretWidth = px
	}
}

// WithBufferOptions passes options to the session's buffer, for example
// an initial capacity or an allocation limit.
func WithBufferOptions(opts ...buffer.Option) Option {
	return func(o *sessionOptions) {
		o.bufferOpts = append(o.bufferOpts, opts...)
	}
}

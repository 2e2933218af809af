// File: nest/builder.go
package nest

import "fmt"

// Builder provides a fluent interface for constructing a Nest from either
// in-memory data or a document file.
type Builder struct {
	data    any
	hasData bool
	file    string
	opts    Options
}

// NewBuilder creates a builder preloaded with the default options.
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultOptions(),
	}
}

// WithData sets the structure to wrap.
func (b *Builder) WithData(data any) *Builder {
	b.data = data
	b.hasData = true
	return b
}

// WithFile sets a TOML/JSON/YAML document to load and wrap. Ignored when
// WithData was also called.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithSilentFail selects between silent and strict failure modes.
func (b *Builder) WithSilentFail(silent bool) *Builder {
	b.opts.SilentFail = silent
	return b
}

// WithStrict is shorthand for WithSilentFail(false).
func (b *Builder) WithStrict() *Builder {
	b.opts.SilentFail = false
	return b
}

// WithWildcard sets the wildcard symbol.
func (b *Builder) WithWildcard(symbol string) *Builder {
	b.opts.Wildcard = symbol
	return b
}

// WithSeparator sets the path separator.
func (b *Builder) WithSeparator(separator string) *Builder {
	b.opts.Separator = separator
	return b
}

// WithAppendSymbol sets the sequence append symbol.
func (b *Builder) WithAppendSymbol(symbol string) *Builder {
	b.opts.AppendSymbol = symbol
	return b
}

// WithWarnHandler sets the warning sink.
func (b *Builder) WithWarnHandler(fn WarnFunc) *Builder {
	b.opts.WarnHandler = fn
	return b
}

// Build constructs the Nest from the configured source.
func (b *Builder) Build() (*Nest, error) {
	if b.hasData {
		return NewWithOptions(b.data, b.opts)
	}
	if b.file != "" {
		return Load(b.file, b.opts)
	}
	return nil, newError(ErrInvalidInput, "builder requires WithData or WithFile")
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Nest {
	n, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("nest build failed: %v", err))
	}
	return n
}

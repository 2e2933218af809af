// File: nest/nest.go
package nest

import (
	"iter"
	"log"
)

// Default symbols used when Options leaves them unset.
const (
	DefaultWildcard     = "*"
	DefaultSeparator    = "."
	DefaultAppendSymbol = "+"
)

// WarnFunc receives non-fatal diagnostics, such as a wildcard character
// embedded inside a longer path token.
type WarnFunc func(format string, args ...any)

// Options configures a Nest. The configuration is fixed at construction and
// immutable afterwards.
type Options struct {
	// SilentFail degrades unresolvable paths to absent/no-op results
	// instead of returning errors.
	SilentFail bool

	// Wildcard is the segment that fans out over all entries of a
	// container during pattern iteration.
	Wildcard string

	// Separator splits path strings into segments.
	Separator string

	// AppendSymbol, as the final segment of an assignment path against a
	// sequence, means "insert after the last element".
	AppendSymbol string

	// WarnHandler receives warnings. Defaults to log.Printf.
	WarnHandler WarnFunc
}

// DefaultOptions returns the standard wrapper options: silent failure mode
// with '*', '.' and '+' symbols.
func DefaultOptions() Options {
	return Options{
		SilentFail:   true,
		Wildcard:     DefaultWildcard,
		Separator:    DefaultSeparator,
		AppendSymbol: DefaultAppendSymbol,
	}
}

func (o Options) withDefaults() Options {
	if o.Wildcard == "" {
		o.Wildcard = DefaultWildcard
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	if o.AppendSymbol == "" {
		o.AppendSymbol = DefaultAppendSymbol
	}
	if o.WarnHandler == nil {
		o.WarnHandler = log.Printf
	}
	return o
}

// Nest is a path-addressable view over an existing nested structure of
// maps and slices. It references the structure it was constructed with and
// never copies it: mutations through the view are visible to every other
// holder of the same structure.
//
// A Nest is not safe for concurrent mutation; callers that share the
// underlying structure across goroutines must serialize access themselves.
type Nest struct {
	data any
	opts Options
}

// New wraps data with default options (silent failure mode, '.', '*', '+').
// Returns an input error if data is not a supported container:
// map[string]any, map[any]any, []any, or another *Nest (which is
// re-referenced, never nested).
func New(data any) (*Nest, error) {
	return NewWithOptions(data, DefaultOptions())
}

// NewWithOptions wraps data with explicit options. Zero-value symbols fall
// back to the defaults.
func NewWithOptions(data any, opts Options) (*Nest, error) {
	data = unwrap(data)
	if kindOf(data) == KindLeaf {
		return nil, newError(ErrInvalidInput, "only map[string]any, map[any]any and []any are supported as data, got %T", data)
	}
	return &Nest{data: data, opts: opts.withDefaults()}, nil
}

// MustNew is like New but panics on error.
func MustNew(data any) *Nest {
	n, err := New(data)
	if err != nil {
		panic(err)
	}
	return n
}

// Data returns the underlying structure the view references.
func (n *Nest) Data() any {
	return n.data
}

// Options returns a copy of the wrapper configuration.
func (n *Nest) Options() Options {
	return n.opts
}

// fail applies the failure mode: silent mode swallows the error. The nil
// check keeps a typed-nil *Error from leaking into the error interface.
func (n *Nest) fail(err *Error) error {
	if err == nil || n.opts.SilentFail {
		return nil
	}
	return err
}

// Get retrieves the value at a path. In silent mode an unresolvable path
// yields (nil, nil); in strict mode the specific traversal or lookup error
// is returned.
func (n *Nest) Get(path string) (any, error) {
	return n.GetAt(n.splitPath(path)...)
}

// GetAt is Get over pre-split segments; segments must be strings or ints.
func (n *Nest) GetAt(segments ...any) (any, error) {
	segments, verr := normalizeSegments(segments)
	if verr != nil {
		return nil, verr // input errors bypass the failure mode
	}

	res, err := n.resolve(segments, false)
	if err != nil {
		return nil, n.fail(err)
	}
	value, err := containerGet(res.parent, res.key)
	if err != nil {
		return nil, n.fail(err)
	}
	return value, nil
}

// Set assigns a value at a path. The final segment may be the append
// symbol, which appends to the parent sequence. Assigning a sequence index
// that does not exist fails with a range error; only the append symbol
// grows a sequence. In silent mode failures are no-ops.
func (n *Nest) Set(path string, value any) error {
	return n.SetAt(value, n.splitPath(path)...)
}

// SetAt is Set over pre-split segments.
func (n *Nest) SetAt(value any, segments ...any) error {
	segments, verr := normalizeSegments(segments)
	if verr != nil {
		return verr
	}

	res, err := n.resolve(segments, true)
	if err != nil {
		return n.fail(err)
	}

	if res.appending {
		seq := res.parent.([]any)
		return n.fail(n.writeBack(res, append(seq, value)))
	}

	// The append symbol as the final segment always means append, even
	// against a mapping, where it is undefined and fails.
	if ks, ok := res.key.(string); ok && ks == n.opts.AppendSymbol {
		return n.fail(newError(ErrTraversal, "append symbol %q is only valid against a sequence", n.opts.AppendSymbol))
	}

	return n.fail(containerSet(res.parent, res.key, value))
}

// Has reports whether a path resolves to an existing entry. For a mapping
// parent the final key's presence is checked; for a sequence parent,
// membership is by value: the coerced final segment is compared against
// the elements. Has never returns an error: any failure at any stage,
// including malformed input, yields false regardless of the failure mode.
func (n *Nest) Has(path string) bool {
	return n.HasAt(n.splitPath(path)...)
}

// HasAt is Has over pre-split segments.
func (n *Nest) HasAt(segments ...any) bool {
	segments, verr := normalizeSegments(segments)
	if verr != nil {
		return false
	}
	res, err := n.resolve(segments, false)
	if err != nil {
		return false
	}
	return containerHas(res.parent, res.key)
}

// Delete removes the entry at a path and reports success. Like Has, it
// never returns an error, independent of the configured failure mode.
func (n *Nest) Delete(path string) bool {
	return n.DeleteAt(n.splitPath(path)...)
}

// DeleteAt is Delete over pre-split segments.
func (n *Nest) DeleteAt(segments ...any) bool {
	segments, verr := normalizeSegments(segments)
	if verr != nil {
		return false
	}
	res, err := n.resolve(segments, false)
	if err != nil {
		return false
	}

	switch c := res.parent.(type) {
	case map[string]any:
		k := segmentString(res.key)
		if _, ok := c[k]; !ok {
			return false
		}
		delete(c, k)
		return true
	case map[any]any:
		if _, ok := c[res.key]; !ok {
			return false
		}
		delete(c, res.key)
		return true
	case []any:
		idx, ok := res.key.(int)
		if !ok || idx < 0 || idx >= len(c) {
			return false
		}
		shrunk := append(c[:idx], c[idx+1:]...)
		return n.writeBack(res, shrunk) == nil
	}
	return false
}

// writeBack stores a regrown or shrunk sequence header into the container
// that holds it, or into the root reference when the sequence is the root.
func (n *Nest) writeBack(res resolution, seq []any) *Error {
	if res.holder == nil {
		n.data = seq
		return nil
	}
	return containerSet(res.holder, res.holderKey, seq)
}

// Len returns the size of the root container.
func (n *Nest) Len() int {
	switch c := n.data.(type) {
	case map[string]any:
		return len(c)
	case map[any]any:
		return len(c)
	case []any:
		return len(c)
	}
	return 0
}

// IsEmpty reports whether the root container has no entries.
func (n *Nest) IsEmpty() bool {
	return n.Len() == 0
}

// Keys returns the keys of the root container: map keys in unspecified
// order, or the ints 0..N-1 for a sequence root.
func (n *Nest) Keys() []any {
	switch c := n.data.(type) {
	case map[string]any:
		keys := make([]any, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		return keys
	case map[any]any:
		keys := make([]any, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		return keys
	case []any:
		keys := make([]any, len(c))
		for i := range c {
			keys[i] = i
		}
		return keys
	}
	return nil
}

// ContainerKind reports whether the root container is a mapping or a
// sequence.
func (n *Nest) ContainerKind() Kind {
	return kindOf(n.data)
}

// Values iterates the root container's immediate values lazily: sequence
// elements in index order, mapping values in unspecified order.
func (n *Nest) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		switch c := n.data.(type) {
		case []any:
			for _, v := range c {
				if !yield(v) {
					return
				}
			}
		case map[string]any:
			for _, v := range c {
				if !yield(v) {
					return
				}
			}
		case map[any]any:
			for _, v := range c {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// GetDefault reads a single key from a mapping root, returning def when the
// key is absent. For a sequence root it returns def in silent mode and an
// input error in strict mode.
func (n *Nest) GetDefault(key string, def any) (any, error) {
	switch c := n.data.(type) {
	case map[string]any:
		if v, ok := c[key]; ok {
			return v, nil
		}
		return def, nil
	case map[any]any:
		if v, ok := c[key]; ok {
			return v, nil
		}
		return def, nil
	}
	if n.opts.SilentFail {
		return def, nil
	}
	return nil, newError(ErrInvalidInput, "GetDefault is not supported when root data is a sequence")
}

// Entries iterates the (key, value) pairs of a mapping root lazily. For a
// sequence root the sequence is empty.
func (n *Nest) Entries() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		switch c := n.data.(type) {
		case map[string]any:
			for k, v := range c {
				if !yield(k, v) {
					return
				}
			}
		case map[any]any:
			for k, v := range c {
				if !yield(segmentString(k), v) {
					return
				}
			}
		}
	}
}

func (n *Nest) warnf(format string, args ...any) {
	if n.opts.WarnHandler != nil {
		n.opts.WarnHandler(format, args...)
	}
}

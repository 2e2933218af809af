// File: nest/resolve.go
package nest

import (
	"reflect"
	"strconv"
)

// Kind is the discriminant of the value model: every value in a wrapped
// structure is a mapping, a sequence, or a leaf.
type Kind int

const (
	// KindLeaf is any value that cannot hold nested values.
	KindLeaf Kind = iota
	// KindMapping is a string- or mixed-keyed map container.
	KindMapping
	// KindSequence is an ordered, 0-indexed container.
	KindSequence
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "leaf"
	}
}

// kindOf classifies a value against the supported container types.
// map[any]any is supported alongside map[string]any so that sources with
// integer keys (hand-built structures, some YAML decoders) traverse the
// same way they would in their origin format.
func kindOf(v any) Kind {
	switch v.(type) {
	case map[string]any:
		return KindMapping
	case map[any]any:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindLeaf
	}
}

// unwrap replaces a nested *Nest with its underlying data so that wrapping
// never stacks and traversal descends into wrapped values transparently.
func unwrap(v any) any {
	if w, ok := v.(*Nest); ok && w != nil {
		return w.data
	}
	return v
}

// resolution is the result of walking a path: the container owning the
// final key, the coerced key itself, and the container one level above it.
// The holder is needed to write a regrown slice header back in place when a
// sequence is appended to or shrunk; holder is nil when parent is the root.
type resolution struct {
	parent    any
	key       any
	appending bool
	holder    any
	holderKey any
}

// resolve walks segments against the wrapped structure and returns the
// parent container plus the final segment coerced to the correct key type.
// Segments before the last must each resolve to an existing container; the
// final segment need not exist (assignment targets it). With allowAppend,
// the configured append symbol is accepted as the final segment against a
// sequence.
func (n *Nest) resolve(segments []any, allowAppend bool) (resolution, *Error) {
	return n.resolveFrom(n.data, segments, allowAppend)
}

// resolveFrom is resolve anchored at an arbitrary container; the pattern
// engine uses it to expand sub-patterns from intermediate values.
func (n *Nest) resolveFrom(root any, segments []any, allowAppend bool) (resolution, *Error) {
	cursor := root
	var res resolution

	for i, raw := range segments {
		last := i == len(segments)-1

		key, appending, err := coerceSegment(cursor, raw, n.opts.AppendSymbol, last && allowAppend)
		if err != nil {
			return resolution{}, err
		}

		if last {
			res.parent = cursor
			res.key = key
			res.appending = appending
			return res, nil
		}

		child, err := containerGet(cursor, key)
		if err != nil {
			// An absent intermediate is a traversal failure, not a plain
			// lookup failure on the final segment.
			return resolution{}, &Error{Code: ErrTraversal, Message: err.Message, Cause: err.Cause}
		}
		child = unwrap(child)
		if kindOf(child) == KindLeaf {
			return resolution{}, newError(ErrTraversal, "item '%s' cannot be traversed deeper", segmentString(key))
		}

		res.holder = cursor
		res.holderKey = key
		cursor = child
	}

	// Degenerate empty path: the root itself with no key. Callers always
	// supply at least one segment, normalizeSegments enforces it.
	res.parent = cursor
	return res, nil
}

// coerceSegment classifies one raw segment against the container it
// addresses and returns the coerced key.
func coerceSegment(container any, raw any, appendSymbol string, allowAppend bool) (key any, appending bool, err *Error) {
	switch kindOf(container) {
	case KindSequence:
		switch s := raw.(type) {
		case int:
			if s < 0 {
				return nil, false, newError(ErrTraversal, "negative index %d is not a valid sequence position", s)
			}
			return s, false, nil
		case string:
			if isDigits(s) {
				idx, _ := strconv.Atoi(s)
				return idx, false, nil
			}
			if s == appendSymbol && allowAppend {
				return s, true, nil
			}
			return nil, false, newError(ErrTraversal,
				"only non-negative integers are supported as sequence indexes, and %q as a final index for assignment", appendSymbol)
		}

	case KindMapping:
		switch s := raw.(type) {
		case int:
			// Prefer the integer key when present, fall back to its
			// string form.
			if m, ok := container.(map[any]any); ok {
				if _, exists := m[s]; exists {
					return s, false, nil
				}
			}
			return strconv.Itoa(s), false, nil
		case string:
			// A digit-only segment prefers an existing integer key:
			// supports sources where numeric-looking keys were stored
			// as integers.
			if isDigits(s) {
				if m, ok := container.(map[any]any); ok {
					if idx, aerr := strconv.Atoi(s); aerr == nil {
						if _, exists := m[idx]; exists {
							return idx, false, nil
						}
					}
				}
			}
			return s, false, nil
		}

	default:
		return nil, false, newError(ErrTraversal, "value of kind %s cannot be traversed", kindOf(container))
	}

	return nil, false, newError(ErrInvalidInput, "only string or int path segments are supported, got %T", raw)
}

// containerGet reads a coerced key from a container.
func containerGet(container any, key any) (any, *Error) {
	switch c := container.(type) {
	case map[string]any:
		k := segmentString(key)
		v, ok := c[k]
		if !ok {
			return nil, newError(ErrKeyNotFound, "key %q not found", k)
		}
		return v, nil
	case map[any]any:
		v, ok := c[key]
		if !ok {
			return nil, newError(ErrKeyNotFound, "key %q not found", segmentString(key))
		}
		return v, nil
	case []any:
		idx, ok := key.(int)
		if !ok {
			return nil, newError(ErrTraversal, "sequence index must be an integer, got %T", key)
		}
		if idx < 0 || idx >= len(c) {
			return nil, newError(ErrIndexOutOfBounds, "index %d out of range for sequence of length %d", idx, len(c))
		}
		return c[idx], nil
	}
	return nil, newError(ErrTraversal, "value of kind %s cannot be read by key", kindOf(container))
}

// containerSet assigns a value at a coerced key. Sequence assignment only
// replaces existing positions; growing is reserved for the append symbol.
func containerSet(container any, key any, value any) *Error {
	switch c := container.(type) {
	case map[string]any:
		c[segmentString(key)] = value
		return nil
	case map[any]any:
		c[key] = value
		return nil
	case []any:
		idx, ok := key.(int)
		if !ok {
			return newError(ErrTraversal, "sequence index must be an integer, got %T", key)
		}
		if idx < 0 || idx >= len(c) {
			return newError(ErrIndexAssignment, "assignment index %d out of range for sequence of length %d", idx, len(c))
		}
		c[idx] = value
		return nil
	}
	return newError(ErrTraversal, "value of kind %s cannot be assigned by key", kindOf(container))
}

// containerHas reports whether a coerced key exists in a container.
func containerHas(container any, key any) bool {
	switch c := container.(type) {
	case map[string]any:
		_, ok := c[segmentString(key)]
		return ok
	case map[any]any:
		_, ok := c[key]
		return ok
	case []any:
		// Sequence membership is by value, not index validity: the
		// coerced final segment is compared against the elements, so
		// "nums.1" asks whether the value 1 occurs in nums.
		for _, elem := range c {
			if reflect.DeepEqual(elem, key) {
				return true
			}
		}
		return false
	}
	return false
}

// File: nest/pattern.go
package nest

import (
	"iter"
	"reflect"
	"strings"
)

// Match is a single pattern-expansion result: the full path to a value and
// the value itself.
type Match struct {
	// Path is the full path string pointing at Value, joined with the
	// configured separator.
	Path string
	// Value is the live value found at Path.
	Value any
}

// IterPattern lazily expands a pattern into (path, value) pairs. A
// standalone wildcard segment fans out over every entry of the container at
// that position: sequences in ascending index order, mappings in
// unspecified order. Without a wildcard segment the sequence contains
// exactly one pair, resolved with Get's failure policy.
//
// The sequence reads the live structure at expansion time; re-invoking
// IterPattern restarts the expansion. In strict mode an expansion failure
// is delivered in-band as the final element; in silent mode the sequence
// simply ends.
func (n *Nest) IterPattern(pattern string) iter.Seq2[Match, error] {
	segments := n.splitPath(pattern)
	return func(yield func(Match, error) bool) {
		n.iterPattern(pattern, segments, n.data, yield)
	}
}

// iterPattern recursively expands segments against root. rawPattern is only
// non-empty at the top level, where it drives the embedded-wildcard
// warning. Returns false once the consumer stops.
func (n *Nest) iterPattern(rawPattern string, segments []any, root any, yield func(Match, error) bool) bool {
	wildcardIndex := -1
	for i, seg := range segments {
		if s, ok := seg.(string); ok && s == n.opts.Wildcard {
			wildcardIndex = i
			break
		}
	}

	if wildcardIndex < 0 {
		// No fan-out: a single pair resolved like Get. A wildcard buried
		// inside a longer token is treated as a literal character.
		if rawPattern != "" && strings.Contains(rawPattern, n.opts.Wildcard) {
			n.warnf("wildcard %q is only supported as a separate path segment "+
				"(e.g. 'some%s%s%skeys'); it will be treated as a normal character",
				n.opts.Wildcard, n.opts.Separator, n.opts.Wildcard, n.opts.Separator)
		}
		value, err := n.getFrom(root, segments)
		if err != nil {
			return yield(Match{}, err)
		}
		return yield(Match{Path: n.joinSegments(segments), Value: value}, nil)
	}

	before := segments[:wildcardIndex]
	after := segments[wildcardIndex+1:]

	prefix := ""
	if len(before) > 0 {
		prefix = n.joinSegments(before) + n.opts.Separator
	}

	target := root
	if len(before) > 0 {
		value, err := n.getFrom(root, before)
		if err != nil {
			return yield(Match{}, err)
		}
		target = value
	}
	target = unwrap(target)

	emit := func(key string, value any) bool {
		if len(after) == 0 {
			return yield(Match{Path: prefix + key, Value: value}, nil)
		}
		return n.iterPattern("", after, unwrap(value), func(m Match, err error) bool {
			if err != nil {
				return yield(m, err)
			}
			m.Path = prefix + key + n.opts.Separator + m.Path
			return yield(m, nil)
		})
	}

	switch c := target.(type) {
	case map[string]any:
		for k, v := range c {
			if !emit(k, v) {
				return false
			}
		}
	case map[any]any:
		for k, v := range c {
			if !emit(segmentString(k), v) {
				return false
			}
		}
	case []any:
		for i, v := range c {
			if !emit(segmentString(i), v) {
				return false
			}
		}
	default:
		// Wildcard positioned against a leaf: nothing to fan out over.
		if n.opts.SilentFail {
			return true
		}
		return yield(Match{}, newError(ErrNotIterable, "cannot iterate over a value of type %T", target))
	}
	return true
}

// getFrom resolves segments anchored at root and reads the final value,
// applying the configured failure mode.
func (n *Nest) getFrom(root any, segments []any) (any, *Error) {
	res, err := n.resolveFrom(root, segments, false)
	if err == nil {
		var value any
		value, err = containerGet(res.parent, res.key)
		if err == nil {
			return value, nil
		}
	}
	if n.opts.SilentFail {
		return nil, nil
	}
	return nil, err
}

// FilterPattern lazily filters IterPattern's output through predicate,
// stopping after maxCount accepted matches when maxCount is positive. A nil
// predicate is an input error reported at call time.
func (n *Nest) FilterPattern(pattern string, predicate func(any) bool, maxCount int) (iter.Seq2[Match, error], error) {
	if predicate == nil {
		return nil, newError(ErrInvalidInput, "predicate must not be nil")
	}

	seq := func(yield func(Match, error) bool) {
		accepted := 0
		for m, err := range n.IterPattern(pattern) {
			if err != nil {
				yield(Match{}, err)
				return
			}
			if !predicate(m.Value) {
				continue
			}
			if !yield(m, nil) {
				return
			}
			accepted++
			if maxCount > 0 && accepted >= maxCount {
				return
			}
		}
	}
	return seq, nil
}

// FindPattern returns the first match whose value satisfies
// valueOrPredicate, which is used directly when it is a func(any) bool and
// compared for deep equality otherwise. The expansion stops at the first
// hit. The boolean reports whether a match was found.
func (n *Nest) FindPattern(pattern string, valueOrPredicate any) (Match, bool, error) {
	predicate, ok := valueOrPredicate.(func(any) bool)
	if !ok {
		want := valueOrPredicate
		predicate = func(v any) bool { return reflect.DeepEqual(v, want) }
	}

	for m, err := range n.IterPattern(pattern) {
		if err != nil {
			return Match{}, false, err
		}
		if predicate(m.Value) {
			return m, true, nil
		}
	}
	return Match{}, false, nil
}

// KeyLevelUp drops the last levels segments from key and rejoins the rest
// with the separator. It does not check that the resulting prefix resolves.
func (n *Nest) KeyLevelUp(key string, levels int) string {
	if levels <= 0 {
		return key
	}
	parts := strings.Split(key, n.opts.Separator)
	if levels >= len(parts) {
		return ""
	}
	return strings.Join(parts[:len(parts)-levels], n.opts.Separator)
}

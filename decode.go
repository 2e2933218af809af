// File: nest/decode.go
package nest

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the value at a path into the target struct, map, or slice
// pointer using weakly typed conversion. An empty path decodes the root
// container. Scan resolves strictly: a path that does not exist is an
// error regardless of the configured failure mode, since a missing decode
// source indicates a programming mistake rather than a data-shape query.
func (n *Nest) Scan(path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return newError(ErrInvalidInput, "scan target must be non-nil pointer, got %T", target)
	}

	source := n.data
	if path != "" {
		res, err := n.resolve(n.splitPath(path), false)
		if err != nil {
			return err
		}
		value, err := containerGet(res.parent, res.key)
		if err != nil {
			return err
		}
		source = unwrap(value)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "nest",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(source); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", path, err)
	}

	return nil
}

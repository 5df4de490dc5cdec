package codec

import (
	"fmt"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// toCty converts a value decoded by a Go-native unmarshaler (YAML, TOML)
// into its cty equivalent. Mappings become objects and sequences become
// tuples, mirroring what the JSON path produces, so every format feeds the
// same layout model. gocty's reflection-based conversion cannot infer
// types through interface values, hence the explicit walk.
func toCty(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(t), nil
	case string:
		return cty.StringVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint64:
		return cty.NumberUIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case time.Time:
		// TOML datetimes have no layout meaning; carry them as text.
		return cty.StringVal(t.Format(time.RFC3339)), nil
	case []any:
		return sliceToCty(t)
	case []map[string]any:
		// BurntSushi/toml decodes arrays of tables into this shape.
		vals := make([]any, len(t))
		for i, el := range t {
			vals[i] = el
		}
		return sliceToCty(vals)
	case map[string]any:
		if len(t) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(t))
		for name, el := range t {
			cv, err := toCty(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("entry %q: %w", name, err)
			}
			attrs[name] = cv
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}

func sliceToCty(in []any) (cty.Value, error) {
	if len(in) == 0 {
		return cty.EmptyTupleVal, nil
	}
	vals := make([]cty.Value, len(in))
	for i, el := range in {
		cv, err := toCty(el)
		if err != nil {
			return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
		}
		vals[i] = cv
	}
	return cty.TupleVal(vals), nil
}

package layout

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// indent is the fixed indentation used for structured content.
const indent = "    "

// Render produces the exact bytes to write for a file entry's content.
//
// A string is written verbatim, with no transformation and no trailing
// newline. A null or absent value renders to zero bytes. Everything else
// (sequences, numbers, booleans, and any mappings nested inside a
// sequence) is rendered as canonical JSON with stable key ordering and
// fixed indentation, so equal logical values always yield identical bytes.
func Render(v cty.Value) ([]byte, error) {
	if v == cty.NilVal || v.IsNull() {
		return nil, nil
	}
	if v.Type() == cty.String {
		return []byte(v.AsString()), nil
	}
	raw, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return nil, fmt.Errorf("cannot serialize structured content: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", indent); err != nil {
		return nil, fmt.Errorf("cannot serialize structured content: %w", err)
	}
	return buf.Bytes(), nil
}

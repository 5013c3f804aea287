package powpow

import (
	"encoding/json"
	"fmt"
)

// textForm derives the text a matcher scans from an arbitrary input value.
// Strings pass through, prior results contribute their canonical marker-free
// value, and anything else is rendered with a deterministic pretty form so
// structured data can be grepped. Equal uses the same derivation, so
// comparing a result against any of these input kinds works uniformly.
func textForm(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case *GrepResult:
		return x.String()
	case *CatResult:
		return x.String()
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case nil:
		return ""
	default:
		return prettyForm(v)
	}
}

// prettyForm renders a structured value for matching. JSON keeps map keys
// sorted, so the rendering is stable across runs.
func prettyForm(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

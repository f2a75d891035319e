package internal

import (
	"fmt"
	"reflect"
)

// NormalizeTree rewrites decoder output into map[string]any / []any branches
// so the tree walk can enter every level. YAML decoders may produce
// map[any]any; TOML decoders produce []map[string]any for arrays of tables.
// Scalars are returned untouched.
func NormalizeTree(v any) any {
	switch n := v.(type) {
	case nil:
		return nil
	case map[string]any:
		for k, child := range n {
			n[k] = NormalizeTree(child)
		}
		return n
	case []any:
		for i, child := range n {
			n[i] = NormalizeTree(child)
		}
		return n
	case map[any]any:
		out := make(map[string]any, len(n))
		for k, child := range n {
			out[fmt.Sprint(k)] = NormalizeTree(child)
		}
		return out
	case []map[string]any:
		out := make([]any, len(n))
		for i, child := range n {
			out[i] = NormalizeTree(child)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = NormalizeTree(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = NormalizeTree(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}

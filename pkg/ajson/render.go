package ajson

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Render serializes a JSON tree to text. Object members are written in their
// stored order, so a Parse/Render round trip preserves key order.
func Render(v Value) string {
	var sb strings.Builder
	render(&sb, v)
	return sb.String()
}

func render(sb *strings.Builder, v Value) {
	switch val := v.(type) {
	case String:
		renderString(sb, string(val))
	case Number:
		sb.WriteString(strconv.FormatFloat(float64(val), 'g', -1, 64))
	case Boolean:
		sb.WriteString(strconv.FormatBool(bool(val)))
	case Null:
		sb.WriteString("null")
	case Array:
		sb.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			render(sb, elem)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			renderString(sb, m.Key)
			sb.WriteByte(':')
			render(sb, m.Value)
		}
		sb.WriteByte('}')
	}
}

func renderString(sb *strings.Builder, s string) {
	// delegate escaping to the stdlib encoder
	b, _ := json.Marshal(s)
	sb.Write(b)
}

// FromAny converts an encoding/json-shaped tree (map[string]any, []any,
// string, float64, json.Number, bool, nil) into a JSON Value. It panics on
// anything else; feeding it a non-JSON-shaped value is a programming error.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case string:
		return String(val)
	case float64:
		return Number(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			panic(fmt.Sprintf("ajson: number %q is not representable: %v", val, err))
		}
		return Number(f)
	case int:
		return Number(float64(val))
	case bool:
		return Boolean(val)
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			arr[i] = FromAny(elem)
		}
		return arr
	case map[string]any:
		obj := Object{}
		for _, key := range sortedKeys(val) {
			obj = append(obj, Member{Key: key, Value: FromAny(val[key])})
		}
		return obj
	default:
		panic(fmt.Sprintf("ajson: value %v was not a string, number, boolean, null, array, or object", v))
	}
}

// ToAny converts a JSON Value into an encoding/json-shaped tree. Object key
// order is lost: Go maps do not preserve it.
func ToAny(v Value) any {
	switch val := v.(type) {
	case String:
		return string(val)
	case Number:
		return float64(val)
	case Boolean:
		return bool(val)
	case Null:
		return nil
	case Array:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToAny(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(val))
		for _, m := range val {
			out[m.Key] = ToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// map iteration order is random; sort for a deterministic tree
	slices.Sort(keys)
	return keys
}

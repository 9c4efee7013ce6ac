package toml

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Unmarshal parses TOML data into the value pointed to by v
// Keys without a matching field are ignored
func Unmarshal(data []byte, v any) error {
	tree, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(tree, v)
}

// UnmarshalStrict is Unmarshal that rejects keys with no matching field
func UnmarshalStrict(data []byte, v any) error {
	tree, err := Parse(data)
	if err != nil {
		return err
	}
	return DecodeStrict(tree, v)
}

// Decode maps a parsed tree onto v using `toml` tags, falling back to field names
// time.Duration fields accept strings such as "150ms" or integers in milliseconds
func Decode(data any, v any) error {
	return decodeInto(data, v, false)
}

// DecodeStrict is Decode that rejects keys with no matching field
func DecodeStrict(data any, v any) error {
	return decodeInto(data, v, true)
}

func decodeInto(data any, v any, strict bool) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	d := decoder{strict: strict}
	return d.value(data, val.Elem(), "")
}

type decoder struct {
	strict bool
}

func (d decoder) value(data any, val reflect.Value, path string) error {
	if data == nil {
		return nil
	}

	if val.Type() == durationType {
		return d.duration(data, val, path)
	}

	switch val.Kind() {
	case reflect.Ptr:
		elem := reflect.New(val.Type().Elem())
		if err := d.value(data, elem.Elem(), path); err != nil {
			return err
		}
		val.Set(elem)

	case reflect.Struct:
		table, ok := data.(map[string]any)
		if !ok {
			return typeError(path, "table", data)
		}
		return d.structFields(table, val, path)

	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			return typeError(path, "array", data)
		}
		out := reflect.MakeSlice(val.Type(), len(items), len(items))
		for i, item := range items {
			if err := d.value(item, out.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		val.Set(out)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%s: only map[string]T is supported", path)
		}
		table, ok := data.(map[string]any)
		if !ok {
			return typeError(path, "table", data)
		}
		out := reflect.MakeMapWithSize(val.Type(), len(table))
		for k, item := range table {
			elem := reflect.New(val.Type().Elem()).Elem()
			if err := d.value(item, elem, join(path, k)); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), elem)
		}
		val.Set(out)

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := data.(int64)
		if !ok {
			return typeError(path, "integer", data)
		}
		if val.OverflowInt(n) {
			return fmt.Errorf("%s: %d overflows %s", path, n, val.Type())
		}
		val.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := data.(int64)
		if !ok {
			return typeError(path, "integer", data)
		}
		if n < 0 || val.OverflowUint(uint64(n)) {
			return fmt.Errorf("%s: %d out of range for %s", path, n, val.Type())
		}
		val.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			val.SetFloat(f)
		case int64:
			val.SetFloat(float64(f))
		default:
			return typeError(path, "float", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return typeError(path, "string", data)
		}
		val.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return typeError(path, "boolean", data)
		}
		val.SetBool(b)

	default:
		return fmt.Errorf("%s: unsupported field type %s", path, val.Type())
	}
	return nil
}

func (d decoder) duration(data any, val reflect.Value, path string) error {
	switch x := data.(type) {
	case string:
		dur, err := time.ParseDuration(x)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		val.SetInt(int64(dur))
	case int64:
		val.SetInt(int64(time.Duration(x) * time.Millisecond))
	default:
		return typeError(path, "duration", data)
	}
	return nil
}

func (d decoder) structFields(table map[string]any, val reflect.Value, path string) error {
	typ := val.Type()
	seen := make(map[string]bool, len(table))

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key := field.Name
		if tag := field.Tag.Get("toml"); tag != "" {
			name, _, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
		}

		item, ok := table[key]
		if !ok {
			continue
		}
		seen[key] = true
		if err := d.value(item, val.Field(i), join(path, key)); err != nil {
			return err
		}
	}

	if d.strict && len(seen) != len(table) {
		var unknown []string
		for k := range table {
			if !seen[k] {
				unknown = append(unknown, join(path, k))
			}
		}
		sort.Strings(unknown)
		return fmt.Errorf("unknown keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func typeError(path, want string, got any) error {
	if path == "" {
		path = "value"
	}
	return fmt.Errorf("%s: expected %s, got %T", path, want, got)
}

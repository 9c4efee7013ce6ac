package toml

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Marshal returns the TOML encoding of v, a struct or map[string]T
//
// Struct fields are written in declaration order, map keys sorted
// Scalars of a table come before its sub-tables
// time.Duration is written as a string that Decode reads back
// Nil pointers and fields tagged "-" are skipped
func Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("marshal: nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct && val.Kind() != reflect.Map {
		return nil, fmt.Errorf("marshal: root must be struct or map, got %v", val.Kind())
	}

	e := &encoder{}
	if err := e.table(val, ""); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
}

type entry struct {
	key string
	val reflect.Value
}

func (e *encoder) table(rv reflect.Value, prefix string) error {
	entries, err := tableEntries(rv)
	if err != nil {
		return err
	}

	var subtables []entry
	for _, en := range entries {
		if isTable(en.val) {
			subtables = append(subtables, en)
			continue
		}
		e.key(en.key)
		e.buf.WriteString(" = ")
		if err := e.value(en.val); err != nil {
			return fmt.Errorf("%s: %w", join(prefix, en.key), err)
		}
		e.buf.WriteByte('\n')
	}

	for _, en := range subtables {
		path := join(prefix, quoteKey(en.key))
		if e.buf.Len() > 0 {
			e.buf.WriteByte('\n')
		}
		e.buf.WriteString("[" + path + "]\n")
		if err := e.table(en.val, path); err != nil {
			return err
		}
	}
	return nil
}

// tableEntries lists the encodable children of a struct or map
func tableEntries(rv reflect.Value) ([]entry, error) {
	var out []entry
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key must be string, got %v", rv.Type().Key().Kind())
		}
		for _, k := range rv.MapKeys() {
			out = append(out, entry{k.String(), indirect(rv.MapIndex(k))})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })

	case reflect.Struct:
		typ := rv.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Name
			if tag := strings.Split(field.Tag.Get("toml"), ",")[0]; tag == "-" {
				continue
			} else if tag != "" {
				name = tag
			}
			out = append(out, entry{name, indirect(rv.Field(i))})
		}
	}

	// Nil pointers and interfaces have no value to write
	kept := out[:0]
	for _, en := range out {
		if en.val.IsValid() {
			kept = append(kept, en)
		}
	}
	return kept, nil
}

// indirect unwraps interfaces and pointers, returning an invalid Value for nil
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isTable(v reflect.Value) bool {
	if v.Type() == durationType {
		return false
	}
	return v.Kind() == reflect.Struct || v.Kind() == reflect.Map
}

func (e *encoder) value(v reflect.Value) error {
	if v.Type() == durationType {
		e.str(time.Duration(v.Int()).String())
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.String:
		e.str(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'f', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		e.buf.WriteString(s)
	case reflect.Slice, reflect.Array:
		e.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			elem := indirect(v.Index(i))
			if !elem.IsValid() {
				return fmt.Errorf("nil array element %d", i)
			}
			if isTable(elem) {
				return fmt.Errorf("arrays of tables not supported")
			}
			if err := e.value(elem); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	default:
		return fmt.Errorf("unsupported type: %v", v.Kind())
	}
	return nil
}

func (e *encoder) key(k string) {
	e.buf.WriteString(quoteKey(k))
}

func (e *encoder) str(s string) {
	e.buf.WriteString(strconv.Quote(s))
}

// quoteKey returns k bare when the lexer would read it back as an identifier
func quoteKey(k string) string {
	if k == "" || k == "true" || k == "false" {
		return strconv.Quote(k)
	}
	for i := 0; i < len(k); i++ {
		if !isBareChar(k[i]) {
			return strconv.Quote(k)
		}
	}
	if isDigit(k[0]) || ((k[0] == '-' || k[0] == '+') && len(k) > 1 && isDigit(k[1])) {
		return strconv.Quote(k)
	}
	return k
}

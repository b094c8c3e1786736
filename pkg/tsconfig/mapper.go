package tsconfig

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// fieldDecoder is implemented by schema types that resolve their own JSON
// shape: the enum domains and the polymorphic fields.
type fieldDecoder interface {
	decodeField(m *mapper, path string, v any) error
}

var fieldDecoderType = reflect.TypeOf((*fieldDecoder)(nil)).Elem()

// mapper projects a decoded JSON tree onto the schema types. It is used for
// one parse call only.
type mapper struct {
	deprecations []Deprecation
}

func (m *mapper) deprecate(path, message string) {
	m.deprecations = append(m.deprecations, Deprecation{Field: path, Message: message})
}

// schemaField is one mappable struct field, keyed by its json tag.
type schemaField struct {
	index      int
	name       string
	deprecated string
}

// fieldIndex caches the schema fields of each struct type.
var fieldIndex sync.Map // reflect.Type -> []schemaField

func schemaFields(t reflect.Type) []schemaField {
	if cached, ok := fieldIndex.Load(t); ok {
		return cached.([]schemaField)
	}

	var fields []schemaField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, schemaField{
			index:      i,
			name:       name,
			deprecated: f.Tag.Get("deprecated"),
		})
	}

	cached, _ := fieldIndex.LoadOrStore(t, fields)
	return cached.([]schemaField)
}

// decodeStruct maps the keys of obj onto the fields of dst. Keys without a
// schema field are ignored and null values are treated as absent.
func (m *mapper) decodeStruct(path string, obj map[string]any, dst reflect.Value) error {
	keys := sortedKeys(obj)
	for _, f := range schemaFields(dst.Type()) {
		raw, ok := lookupKey(obj, keys, f.name)
		if !ok || raw == nil {
			continue
		}

		fieldPath := joinPath(path, f.name)
		if f.deprecated != "" {
			m.deprecate(fieldPath, f.deprecated)
		}
		if err := m.decodeValue(fieldPath, raw, dst.Field(f.index)); err != nil {
			return err
		}
	}
	return nil
}

// decodeValue stores v into dst, requiring the JSON kind the Go type implies.
func (m *mapper) decodeValue(path string, v any, dst reflect.Value) error {
	if dst.CanAddr() && dst.Addr().Type().Implements(fieldDecoderType) {
		return dst.Addr().Interface().(fieldDecoder).decodeField(m, path, v)
	}

	switch dst.Kind() {
	case reflect.Pointer:
		elem := reflect.New(dst.Type().Elem())
		if err := m.decodeValue(path, v, elem.Elem()); err != nil {
			return err
		}
		dst.Set(elem)

	case reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return kindMismatch(path, "boolean", jsonKind(v))
		}
		dst.SetBool(b)

	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return kindMismatch(path, "string", jsonKind(v))
		}
		dst.SetString(s)

	case reflect.Slice:
		arr, ok := v.([]any)
		if !ok {
			return kindMismatch(path, "array", jsonKind(v))
		}
		out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
		for i, item := range arr {
			if err := m.decodeValue(indexPath(path, i), item, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)

	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			return kindMismatch(path, "object", jsonKind(v))
		}
		out := reflect.MakeMapWithSize(dst.Type(), len(obj))
		for _, key := range sortedKeys(obj) {
			// A null entry is absent, like a null field.
			if obj[key] == nil {
				continue
			}
			elem := reflect.New(dst.Type().Elem()).Elem()
			if err := m.decodeValue(keyPath(path, key), obj[key], elem); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(key).Convert(dst.Type().Key()), elem)
		}
		dst.Set(out)

	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return kindMismatch(path, "object", jsonKind(v))
		}
		return m.decodeStruct(path, obj, dst)

	case reflect.Interface:
		if v != nil {
			dst.Set(reflect.ValueOf(v))
		}

	default:
		return fmt.Errorf("%s: unsupported schema type %s", displayField(path), dst.Type())
	}
	return nil
}

// decodeDocument maps a decoded JSON value onto a Document.
func decodeDocument(root any) (*Document, []Deprecation, error) {
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, nil, kindMismatch("", "object", jsonKind(root))
	}

	m := &mapper{}
	var doc Document
	if err := m.decodeStruct("", obj, reflect.ValueOf(&doc).Elem()); err != nil {
		return nil, nil, err
	}
	return &doc, m.deprecations, nil
}

// lookupKey finds the value for a schema key. The exact spelling wins;
// otherwise the first case-insensitive match in sorted key order is used.
func lookupKey(obj map[string]any, keys []string, name string) (any, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for _, k := range keys {
		if strings.EqualFold(k, name) {
			return obj[k], true
		}
	}
	return nil, false
}

func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsonKind names the JSON kind of a decoded value.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func keyPath(path, key string) string {
	return fmt.Sprintf("%s[%q]", path, key)
}

package i18n

import (
	"reflect"
	"strings"
	"time"

	"souq-api/models"
)

var bilingualType = reflect.TypeOf(models.Bilingual{})
var timeType = reflect.TypeOf(time.Time{})

// Shape applies language shaping to a response payload: every Bilingual
// value collapses to the variant for lang (with fallback to the populated
// one), recursively through structs, maps, slices and pointers. In
// bilingual mode (lang == "") the payload passes through untouched so both
// variants reach the client. The transform is pure; the input is never
// mutated.
func Shape(v interface{}, lang string) interface{} {
	if lang == "" || v == nil {
		return v
	}
	return shapeValue(reflect.ValueOf(v), lang)
}

func shapeValue(rv reflect.Value, lang string) interface{} {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return shapeValue(rv.Elem(), lang)

	case reflect.Struct:
		if rv.Type() == bilingualType {
			b := rv.Interface().(models.Bilingual)
			return b.Resolve(lang)
		}
		if rv.Type() == timeType {
			return rv.Interface()
		}
		return shapeStruct(rv, lang)

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = shapeValue(rv.Index(i), lang)
		}
		return out

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := iter.Key().Interface().(string)
			if !ok {
				return rv.Interface()
			}
			out[key] = shapeValue(iter.Value(), lang)
		}
		return out

	default:
		if !rv.IsValid() {
			return nil
		}
		return rv.Interface()
	}
}

func shapeStruct(rv reflect.Value, lang string) map[string]interface{} {
	t := rv.Type()
	out := make(map[string]interface{}, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name, omitempty, skip := jsonFieldName(field)
		if skip {
			continue
		}

		fv := rv.Field(i)

		// Embedded structs flatten into the parent, matching encoding/json.
		if field.Anonymous && field.Tag.Get("json") == "" && fv.Kind() == reflect.Struct {
			if inner, ok := shapeValue(fv, lang).(map[string]interface{}); ok {
				for k, v := range inner {
					out[k] = v
				}
				continue
			}
		}

		if omitempty && fv.IsZero() {
			continue
		}

		out[name] = shapeValue(fv, lang)
	}

	return out
}

func jsonFieldName(field reflect.StructField) (name string, omitempty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

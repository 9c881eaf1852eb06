package validators

import (
	"encoding/json"
	"errors"
	"reflect"
)

// bodyField is the field name reported for a body that is not valid JSON.
const bodyField = "body"

// DecodeError converts a JSON decoding failure for obj into a
// *ValidationError. A value of the wrong type is reported against its field,
// using the field's msg tag when present.
func DecodeError(obj any, err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return NewFieldError(typeErr.Field, messageForJSONField(obj, typeErr.Field))
	}

	return NewFieldError(bodyField, "Invalid JSON body")
}

func messageForJSONField(obj any, name string) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if jsonFieldName(f) != name {
				continue
			}
			if msg := f.Tag.Get(messageTag); msg != "" {
				return msg
			}
			break
		}
	}

	return name + " has an invalid type"
}

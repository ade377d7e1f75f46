package content

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field name to a human readable message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, f[key]))
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// AsFieldErrors extracts FieldErrors from a (possibly wrapped) error.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		return fields, true
	}
	return nil, false
}

// the same "binding" tags gin uses for form binding
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

func validateStruct(value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = messageForTag(fieldErr.Tag())
	}
	return fields
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "Campo obrigatório"
	case "max":
		return "Texto muito longo"
	case "iscolor", "hexcolor":
		return "Cor inválida"
	case "url":
		return "URL inválida"
	case "email":
		return "E-mail inválido"
	default:
		return "Valor inválido"
	}
}

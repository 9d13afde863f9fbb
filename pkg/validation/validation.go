package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator configured to report fields by their json tag name,
// so violation records match the wire names the client submitted.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

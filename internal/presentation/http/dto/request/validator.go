package request

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sangkips/posledger/internal/domain/enum"
	"github.com/sangkips/posledger/internal/domain/ledger"
	"github.com/sangkips/posledger/pkg/apperror"
)

var (
	productCodePattern = regexp.MustCompile(`^\d{1,13}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so paths read items[0].qty
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("productcode", func(fl validator.FieldLevel) bool {
		return IsProductCode(fl.Field().String())
	}))
	must(v.RegisterValidation("taxrate", func(fl validator.FieldLevel) bool {
		_, ok := enum.ParseTaxRate(fl.Field().Int())
		return ok
	}))
	must(v.RegisterValidation("localtime", func(fl validator.FieldLevel) bool {
		_, err := ledger.ParseLocal(fl.Field().String())
		return err == nil
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// IsProductCode reports whether s is 1-13 ASCII digits
func IsProductCode(s string) bool {
	return productCodePattern.MatchString(s)
}

// validateStruct runs the tag constraints and converts failures into field
// errors in struct order.
func validateStruct(s interface{}) []apperror.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperror.FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperror.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: messageFor(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a namespace
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "items" {
			return "must be a non-empty array"
		}
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must be a non-empty array"
		}
		return "must be >= " + fe.Param()
	case "max":
		return "is too large"
	case "productcode":
		return "must be 1-13 digits"
	case "taxrate":
		return "must be 8 or 10"
	case "localtime":
		return "must be 'YYYY-MM-DD HH:MM:SS'"
	}
	return "is invalid"
}

package echo

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"go.pilab.hu/partsdesk/domain"
)

// Validator adapts go-playground/validator to echo's Validator interface,
// translating tag failures into the API's field-level codes.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator. Field names in errors come
// from the json tags, matching what the client sent.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Code: codeFor(fe)})
	}
	return domain.NewValidationError(fields...)
}

// Per-field codes for missing required values.
var requiredCodes = map[string]string{
	"username":    domain.CodeEmptyUsername,
	"password":    domain.CodeEmptyPassword,
	"brand":       domain.CodeEmptyBrand,
	"category":    domain.CodeEmptyCategory,
	"carMake":     domain.CodeEmptyCarMake,
	"description": domain.CodeEmptyDescription,
	"title":       domain.CodeEmptyTitle,
	"assignedTo":  domain.CodeEmptyAssignedTo,
	"type":        domain.CodeEmptyType,
	"sort":        domain.CodeEmptySort,
	"orderBy":     domain.CodeEmptyOrder,
	"id":          domain.CodeEmptyID,
}

func codeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if code, ok := requiredCodes[fe.Field()]; ok {
			return code
		}
		return domain.CodeInvalidRequest
	case "min", "max":
		if fe.Field() == "size" {
			return domain.CodeSizeExceeded
		}
		return domain.CodeInvalidType
	default:
		return domain.CodeInvalidType
	}
}

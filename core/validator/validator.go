package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"meca-api/core/controller"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Instance returns the shared validator; struct errors report json field names.
func Instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// RegisterEnum adds a tag that accepts only the given string values.
func RegisterEnum(tag string, allowed func(string) bool) {
	_ = Instance().RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		if field.Kind() != reflect.String {
			return false
		}
		return allowed(field.String())
	})
}

type Result struct {
	Errors []controller.ValidationError `json:"errors"`
}

func (r *Result) HasError() bool {
	return r != nil && len(r.Errors) > 0
}

func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, controller.NewValidationError(field, message))
}

// Struct validates v and converts failures into field messages.
func Struct(v any) *Result {
	result := &Result{}
	err := Instance().Struct(v)
	if err == nil {
		return result
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Add("", err.Error())
		return result
	}
	for _, fe := range verrs {
		result.Add(fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

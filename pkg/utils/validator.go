package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/givehub/backend/internal/models"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{
		validate: v,
	}
}

// Struct validates s and returns a per-field message map on failure,
// nil otherwise.
func (v *Validator) Struct(s interface{}) *models.ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &models.ValidationError{Fields: map[string]string{"request": err.Error()}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return &models.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldLabel(fe.Field()))
	case "email":
		return "Please enter a valid email address"
	case "oneof":
		if fe.Field() == "category" {
			return "Invalid category"
		}
		return fmt.Sprintf("%s must be one of: %s", fieldLabel(fe.Field()), fe.Param())
	case "gt":
		if fe.Field() == "targetAmount" {
			return "Target amount must be greater than 0"
		}
		return fmt.Sprintf("%s must be greater than %s", fieldLabel(fe.Field()), fe.Param())
	case "gte":
		if fe.Field() == "amount" {
			return "Amount must be at least 1"
		}
		return fmt.Sprintf("%s must be at least %s", fieldLabel(fe.Field()), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldLabel(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldLabel(fe.Field()))
	}
}

func fieldLabel(field string) string {
	switch field {
	case "phone":
		return "Phone number"
	case "targetAmount":
		return "Target amount"
	}
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("vnphone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Validate checks a form before it is ever sent to the backend. Field errors
// stay client-side and are surfaced as a single BadRequest message.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return errorx.New(errorx.BadRequest, "Invalid field %s (%s)", first.Field(), first.Tag())
	}

	return errorx.New(errorx.BadRequest, "Invalid form")
}

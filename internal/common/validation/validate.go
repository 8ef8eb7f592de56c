package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	registerNoSpacesAtStartOrEnd()
	registerMonth()
	registerYear()
	registerDecimalGreaterThan()
}

func ValidateStruct(toValidate interface{}) error {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				key := fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag())
				if data, found := models.MapErrors[key]; found {
					errs = multierror.Append(errs, ErrorValidateResponse{
						Code:    data.Code,
						Field:   valErr.Field(),
						Message: data.ErrorMessage.Error(),
					})
				} else {
					errs = multierror.Append(errs, ErrorValidateResponse{
						Code:    "UNKNOWN",
						Field:   valErr.Field(),
						Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
					})
				}
			}
		}
	}

	return errs.ErrorOrNil()
}

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Message)
}

func registerNoSpacesAtStartOrEnd() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

func registerMonth() {
	validate.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		m := fl.Field().Int()
		return m >= 1 && m <= 12
	})
}

func registerYear() {
	validate.RegisterValidation("year", func(fl validator.FieldLevel) bool {
		y := fl.Field().Int()
		return y >= 2000 && y <= 2100
	})
}

func registerDecimalGreaterThan() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(decimal.Decimal); ok {
			return valuer.String()
		}
		return nil
	}, decimal.Decimal{})

	validate.RegisterValidation("decimalGreaterThan", func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		value, err := decimal.NewFromString(data)
		if err != nil {
			return false
		}

		parameterValue, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}

		return value.GreaterThan(parameterValue)
	})
}

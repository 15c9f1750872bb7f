package domain_transfer

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(paramName)
	return v
}

// paramName reports a field under its wire name: the param tag when set, otherwise the url tag.
func paramName(fld reflect.StructField) string {
	if name := fld.Tag.Get("param"); name != "" {
		return name
	}

	name, _, _ := strings.Cut(fld.Tag.Get("url"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// checkRequired fails with the first missing field in declaration order.
func checkRequired(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &MissingParameterError{Param: verrs[0].Field()}
	}

	return err
}

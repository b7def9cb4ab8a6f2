package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"summit/shared/constant"
	"summit/shared/failure"
	"time"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate        *val.Validate
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

func registerDateValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DayDateFormat, str)

	return err == nil
}

func registerCurrencyValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)

	return ok && currencyPattern.MatchString(str)
}

// registerMimetypeValidation checks an uploaded file's declared content type against a
// space separated allow list, e.g. mimetypes=image/png image/jpeg.
func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), file.Header.Get(constant.RequestHeaderContentType))
}

// registerFileSizeValidation limits an uploaded file to maxfilesize megabytes.
func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(file.Size) <= maxSizeMB*1024*1024
}

// decimalValue lets numeric tags such as gte=0 apply to money amounts.
func decimalValue(field reflect.Value) any {
	if amount, ok := field.Interface().(decimal.Decimal); ok {
		value, _ := amount.Float64()

		return value
	}

	return nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("currency", registerCurrencyValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

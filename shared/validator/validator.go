package validator

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"tatzy/shared/constant"
	"tatzy/shared/dto"
	"tatzy/shared/failure"
	"tatzy/shared/phone"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)

	// now is swapped in tests that need a fixed clock.
	now = time.Now
)

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}

	return fld.Name
}

// nullableString exposes a Nullable as a *string so omitnil skips absent and null
// values while an explicit empty string still reaches the rules after it.
func nullableString(field reflect.Value) any {
	if n, ok := field.Interface().(dto.Nullable[string]); ok && n.Valid {
		return &n.Value
	}

	return (*string)(nil)
}

func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(field.Field().String())
}

func registerMinDigitsValidation(field val.FieldLevel) bool {
	minDigits, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	return phone.CountDigits(field.Field().String()) >= minDigits
}

func registerRFC3339Validation(field val.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, field.Field().String())

	return err == nil
}

func registerFutureValidation(field val.FieldLevel) bool {
	parsed, err := time.Parse(time.RFC3339, field.Field().String())
	if err != nil {
		return false
	}

	return parsed.After(now())
}

func registerPositiveIntValidation(field val.FieldLevel) bool {
	number, err := strconv.Atoi(field.Field().String())

	return err == nil && number > 0
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	validate.RegisterCustomTypeFunc(nullableString, dto.Nullable[string]{})

	rules := map[string]val.Func{
		"phone":       registerPhoneValidation,
		"mindigits":   registerMinDigitsValidation,
		"rfc3339":     registerRFC3339Validation,
		"future":      registerFutureValidation,
		"positiveint": registerPositiveIntValidation,
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Every rejected field is
// reported, including fields whose JSON type did not match.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	var typeErr *json.UnmarshalTypeError

	switch {
	case err == nil:
		return ValidateStruct(data)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		mismatch := failure.FieldError{Field: typeErr.Field, Message: messageTypeMismatch}

		return failure.Validation(constant.ResponseErrorInvalidData, //nolint:wrapcheck
			mergeFieldErrors(mismatch, fieldErrors(validate.Struct(data))))
	default:
		return failure.BadRequestFromString(constant.ResponseErrorInvalidBody) //nolint:wrapcheck
	}
}

func ValidateStruct[T any](data *T) error {
	return check(data, constant.ResponseErrorInvalidData)
}

// ValidateQuery validates decoded query parameters.
func ValidateQuery[T any](data *T) error {
	return check(data, constant.ResponseErrorInvalidParams)
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func check[T any](data *T, msg string) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	fields := fieldErrors(err)
	if len(fields) == 0 {
		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return failure.Validation(msg, fields) //nolint:wrapcheck
}

// mergeFieldErrors keeps the type mismatch and drops rule errors on the same path.
func mergeFieldErrors(mismatch failure.FieldError, fields []failure.FieldError) []failure.FieldError {
	merged := []failure.FieldError{mismatch}

	for _, field := range fields {
		if field.Field != mismatch.Field {
			merged = append(merged, field)
		}
	}

	return merged
}

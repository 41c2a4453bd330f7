package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"slotbook/shared/constant"
	"slotbook/shared/failure"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerLayoutValidation accepts strings that parse with the given time layout.
func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, str)

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("clock", registerLayoutValidation(constant.TimeOfDayLayout))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("calendardate", registerLayoutValidation(constant.CalendarLayout))
	if err != nil {
		panic(err)
	}
}

// Validate decodes JSON from r into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
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

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody возвращается, если тело запроса пустое
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrValidation возвращается, если тело не прошло валидацию тегов
	ErrValidation = errors.New("handlers: validation failed")
)

var validate = validator.New()

// DecodeJSON читает JSON тело запроса в dst. Неизвестные поля запрещены.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	return nil
}

// ValidateStruct проверяет теги `validate` и возвращает ErrValidation с перечнем полей
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fieldErrorMessage(fe)))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// ValidationDetails возвращает перечень полей без префикса ошибки
func ValidationDetails(err error) string {
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email format"
	case "max":
		return fmt.Sprintf("maximum length is %s", fe.Param())
	case "min":
		return fmt.Sprintf("minimum length is %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"weddingsite/internal/repository"
)

// ServiceError is a sentinel error that handlers map to a status code.
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrNotFound         ServiceError = "not found"
	ErrInvalidPassword  ServiceError = "password does not match"
	ErrInvalidInput     ServiceError = "invalid input"
	ErrUnauthorized     ServiceError = "unauthorized"
	ErrUnsupportedMedia ServiceError = "unsupported image type"
	ErrFileTooLarge     ServiceError = "file too large"
	ErrNotGalleryItem   ServiceError = "only gallery photos can be reordered"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports the first failing fields as
// ErrInvalidInput.
func validateInput(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, describeField(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, "; "))
}

func describeField(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "url":
		return name + " must be a valid URL"
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

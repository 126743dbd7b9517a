package dto

import (
	"fmt"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("sensitivity", func(fl validator.FieldLevel) bool {
		return domain.Sensitivity(fl.Field().String()).IsValid()
	})
}

package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"cinebook/internal/domain"
)

// upiRgx matches the local-part@provider shape of a UPI ID, e.g. "alice@upi".
var upiRgx = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z]{2,}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("upi", validateUpiID)
	validator.RegisterValidation("payment_method", validatePaymentMethod)

	return validator
}

func validateUpiID(fl validator.FieldLevel) bool {
	return upiRgx.MatchString(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch domain.PaymentMethod(fl.Field().String()) {
	case domain.PaymentMethodCreditCard, domain.PaymentMethodDebitCard, domain.PaymentMethodUpi:
		return true
	}

	return false
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_if", "required_unless":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "upi":
		return "must be a valid UPI ID (e.g. yourname@upi)"
	case "payment_method":
		return "must be one of credit_card, debit_card or upi"
	default:
		return "is invalid"
	}
}

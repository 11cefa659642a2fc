package engine

import (
	"strings"

	"bistro/order-svc/internal/domain"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every problem with a form so the client can
// highlight all missing fields at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

func required(errs ValidationErrors, field, value, message string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: message})
	}
	return errs
}

// ValidateCheckout checks presence only; email and phone formats are not inspected.
func ValidateCheckout(form domain.CheckoutForm) error {
	var errs ValidationErrors
	errs = required(errs, "customer_name", form.CustomerName, "name is required")
	errs = required(errs, "customer_phone", form.CustomerPhone, "phone is required")
	errs = required(errs, "customer_email", form.CustomerEmail, "email is required")

	switch form.OrderType {
	case domain.Delivery:
		errs = required(errs, "delivery_address", form.DeliveryAddress, "delivery address is required for delivery orders")
	case domain.Pickup:
	default:
		errs = append(errs, ValidationError{Field: "order_type", Message: "order type must be pickup or delivery"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func IsCheckoutValid(form domain.CheckoutForm) bool {
	return ValidateCheckout(form) == nil
}

func ValidateReservation(req domain.Reservation) error {
	var errs ValidationErrors
	errs = required(errs, "name", req.Name, "name is required")
	errs = required(errs, "email", req.Email, "email is required")
	errs = required(errs, "phone_number", req.PhoneNumber, "phone number is required")
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func IsReservationValid(req domain.Reservation) bool {
	return ValidateReservation(req) == nil
}

func ClampPartySize(n int) int {
	if n < MinPartySize {
		return MinPartySize
	}
	if n > MaxPartySize {
		return MaxPartySize
	}
	return n
}

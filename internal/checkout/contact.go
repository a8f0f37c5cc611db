package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContactInfo is the customer data collected in the first checkout step.
type ContactInfo struct {
	Name    string `validate:"required"`
	Phone   string `validate:"required"`
	Email   string `validate:"omitempty,email"`
	Address string `validate:"required"`
	Notes   string
}

// FieldError is a single inline validation message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries per-field messages for the info-collection form.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

var validate = validator.New()

// validateContact trims the required fields and returns a *ValidationError
// listing every failing field, or nil when the info is complete.
func validateContact(info ContactInfo) error {
	info.Name = strings.TrimSpace(info.Name)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Address = strings.TrimSpace(info.Address)

	err := validate.Struct(info)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out.Fields = append(out.Fields, FieldError{Field: field, Message: fmt.Sprintf("please enter your %s", field)})
		case "email":
			out.Fields = append(out.Fields, FieldError{Field: field, Message: "please enter a valid email"})
		default:
			out.Fields = append(out.Fields, FieldError{Field: field, Message: fmt.Sprintf("%s is invalid", field)})
		}
	}
	return out
}

// Package validators turns struct tag rules into the field-level messages the
// API reports. All rules for all fields run; nothing short-circuits.
package validators

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// labels maps struct field names to the wording used in messages.
var labels = map[string]string{
	"ProductName": "Product name",
	"Price":       "Price",
	"Description": "Description",
	"FullName":    "Full name",
	"Email":       "Email",
	"PhoneNumber": "Phone number",
	"DateOfBirth": "Date of birth",
	"Password":    "Password",
}

// Validate checks every tagged field of target and returns one message per
// violated rule. A nil slice means the target is valid.
func Validate(target any) []string {
	err := validate.Struct(target)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, message(fe))
	}
	return messages
}

func message(fe validator.FieldError) string {
	label, ok := labels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required", "gt":
		return fmt.Sprintf("%s cannot be empty", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s %s long", label, fe.Param(), plural(fe.Param(), "character"))
	case "max":
		return fmt.Sprintf("%s can contain at most %s %s", label, fe.Param(), plural(fe.Param(), "character"))
	case "email":
		return "Email is in wrong format"
	}
	return fmt.Sprintf("%s is not valid", label)
}

func plural(param, word string) string {
	if param == "1" {
		return word
	}
	return word + "s"
}

// PasswordPolicy checks the credential rules enforced at registration and
// returns one message per violated rule.
func PasswordPolicy(password string) []string {
	var messages []string

	if len(password) < 8 {
		messages = append(messages, "Passwords must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper {
		messages = append(messages, "Passwords must have at least one uppercase letter")
	}
	if !hasLower {
		messages = append(messages, "Passwords must have at least one lowercase letter")
	}
	if !hasDigit {
		messages = append(messages, "Passwords must have at least one digit")
	}
	if !hasSpecial {
		messages = append(messages, "Passwords must have at least one non-alphanumeric character")
	}

	return messages
}

package utils

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is assumed when a phone number carries no country code.
const DefaultPhoneRegion = "US"

// ErrInvalidPhone is reported for input that is not a valid phone number.
var ErrInvalidPhone = validation.NewError("validation_invalid_phone", "Invalid phone number")

// NormalizePhone parses a phone number and returns it in international
// format, e.g. "2015550123" becomes "+1 201-555-0123".
func NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), DefaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), nil
}

// isPhone is an ozzo rule accepting anything NormalizePhone accepts. Empty
// values are left to validation.Required.
var isPhone = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := NormalizePhone(s)
	return err
})

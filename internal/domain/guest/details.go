package guest

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName     = errors.New("name must contain at least 3 letters")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidPostal   = errors.New("postal code must be at most 10 digits")
	ErrRemarksTooLong  = errors.New("remarks must be at most 200 characters")
	ErrMissingRequired = errors.New("required guest field missing")
)

const MaxRemarksLength = 200

// Fixed per-field rules; the gate runs them locally before any network
// call is made.
var (
	namePattern   = regexp.MustCompile(`^[\p{L} ]{3,}$`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`)
	phonePattern  = regexp.MustCompile(`^[0-9()+\-. ]{8,}$`)
	postalPattern = regexp.MustCompile(`^[0-9]{0,10}$`)
)

// Details are the shared guest fields filled once on the guest-details step
// and then replicated across every line item at submission time.
type Details struct {
	name       string
	email      string
	phone      string
	address    string
	postalCode string
	remarks    string
}

func NewDetails(name, email, phone, address, postalCode, remarks string) Details {
	return Details{
		name:       strings.TrimSpace(name),
		email:      strings.TrimSpace(email),
		phone:      strings.TrimSpace(phone),
		address:    strings.TrimSpace(address),
		postalCode: strings.TrimSpace(postalCode),
		remarks:    strings.TrimSpace(remarks),
	}
}

func (d Details) Name() string       { return d.name }
func (d Details) Email() string      { return d.email }
func (d Details) Phone() string      { return d.phone }
func (d Details) Address() string    { return d.address }
func (d Details) PostalCode() string { return d.postalCode }
func (d Details) Remarks() string    { return d.remarks }

func (d Details) IsComplete() bool {
	return d.name != "" && d.email != "" && d.phone != ""
}

// FieldErrors maps a field name to its validation message. These are
// attached per field and never surfaced as a global notification.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return "guest validation failed: " + strings.Join(parts, "; ")
}

// Validate checks every field against its rule and reports all failures at
// once. A nil return means the details may proceed to submission.
func (d Details) Validate() FieldErrors {
	fe := FieldErrors{}

	if !namePattern.MatchString(d.name) {
		fe["name"] = ErrInvalidName.Error()
	}
	if !emailPattern.MatchString(d.email) {
		fe["email"] = ErrInvalidEmail.Error()
	}
	if !phonePattern.MatchString(d.phone) {
		fe["phone"] = ErrInvalidPhone.Error()
	}
	if !postalPattern.MatchString(d.postalCode) {
		fe["postal_code"] = ErrInvalidPostal.Error()
	}
	if utf8.RuneCountInString(d.remarks) > MaxRemarksLength {
		fe["remarks"] = ErrRemarksTooLong.Error()
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}

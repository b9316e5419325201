package kernel

import (
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrPhoneIsNotConstructed is returned when attempting to use an improperly
// initialized Phone. Phones must be created via NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"phone must be created via NewPhone constructor")

// Phone is an E.164 phone number value object. Bare local numbers are
// normalized by prepending a default country prefix, matching how the SMS
// collaborator expects destinations to be addressed.
//
// Example:
//
//	phone, err := kernel.NewPhone("9876543210", "+91")
//	// phone.E164() == "+919876543210"
type Phone struct { //nolint:recvcheck //using for validation
	number string
	guard  guard.ConstructorGuard
}

// NewPhone normalizes raw into an E.164 number. Surrounding whitespace is
// trimmed and, when the number does not already start with "+",
// defaultPrefix (e.g. "+91") is prepended. An empty number after trimming
// is rejected.
func NewPhone(raw, defaultPrefix string) (Phone, error) {
	phone := Phone{
		guard: guard.NewConstructorGuard(),
	}

	if err := phone.setNumber(raw, defaultPrefix); err != nil {
		return Phone{}, err
	}

	return phone, nil
}

// Validate checks that the Phone was created through the constructor.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// E164 returns the normalized number, including the leading "+".
func (p Phone) E164() string {
	return p.number
}

// String implements fmt.Stringer.
func (p Phone) String() string {
	return p.number
}

func (p *Phone) setNumber(raw, defaultPrefix string) error {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return errs.NewValueIsRequiredError("phone number")
	}

	if !strings.HasPrefix(clean, "+") {
		clean = defaultPrefix + clean
	}

	p.number = clean
	return nil
}

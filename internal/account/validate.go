package account

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phonekart/storefront/internal/session"
)

// ValidationError carries per-field messages from client-side form checks.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Credentials is the sign-in form.
type Credentials struct {
	UserID   string
	Password string
}

var signinUserIDRe = regexp.MustCompile(`^[A-Za-z\d]+$`)

// Validate applies the sign-in form rules. The user ID must mix letters and
// digits; the password only has to be present.
func (c Credentials) Validate() error {
	errs := make(map[string]string)

	switch {
	case c.UserID == "":
		errs["userId"] = "Username is required"
	case !signinUserIDRe.MatchString(c.UserID),
		!strings.ContainsAny(c.UserID, "0123456789"),
		strings.IndexFunc(c.UserID, isLetter) < 0:
		errs["userId"] = "Username must contain both letters and numbers"
	}
	if c.Password == "" {
		errs["userPassword"] = "Password is required"
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// RegistrationForm covers both customer and vendor sign-up. GST is only
// collected for vendors.
type RegistrationForm struct {
	UserID          string
	UserName        string
	Password        string
	ConfirmPassword string
	Email           string
	Phone           string
	Address         string
	Pincode         string
	PANNumber       string
	GSTNumber       string
	Role            session.Role
}

var (
	regUserIDRe = regexp.MustCompile(`^[A-Z0-9]+$`)
	emailRe     = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe     = regexp.MustCompile(`^\d{10}$`)
	pincodeRe   = regexp.MustCompile(`^\d{6}$`)
	panRe       = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	gstRe       = regexp.MustCompile(`^[A-Z0-9]{15}$`)
)

// Validate applies the registration field rules and returns a
// ValidationError listing every violated field.
func (f RegistrationForm) Validate() error {
	errs := make(map[string]string)

	switch {
	case f.UserID == "":
		errs["userId"] = "User ID cannot be null"
	case !regUserIDRe.MatchString(f.UserID):
		errs["userId"] = "User ID must contain only uppercase alphanumeric characters"
	}

	if f.UserName == "" {
		errs["userName"] = "Username cannot be null"
	}

	switch {
	case f.Password == "":
		errs["userPassword"] = "Password cannot be null"
	case len(f.Password) < 6:
		errs["userPassword"] = "Password must be at least 6 characters"
	}

	switch {
	case f.ConfirmPassword == "":
		errs["userConfirmPassword"] = "Confirm Password cannot be null"
	case f.ConfirmPassword != f.Password:
		errs["userConfirmPassword"] = "Passwords do not match"
	}

	switch {
	case f.Email == "":
		errs["userEmail"] = "Email cannot be null"
	case !emailRe.MatchString(f.Email):
		errs["userEmail"] = "Invalid email format"
	}

	switch {
	case f.Phone == "":
		errs["userNumber"] = "Phone number cannot be null"
	case !phoneRe.MatchString(f.Phone):
		errs["userNumber"] = "Phone number must be 10 digits"
	}

	if f.Address == "" {
		errs["userAddress"] = "Address cannot be null"
	}

	switch {
	case f.Pincode == "":
		errs["userPincode"] = "Pincode cannot be null"
	case !pincodeRe.MatchString(f.Pincode):
		errs["userPincode"] = "Pincode must be 6 digits"
	}

	switch {
	case f.PANNumber == "":
		errs["userPanNumber"] = "PAN Number cannot be null"
	case len(f.PANNumber) != 10:
		errs["userPanNumber"] = "PAN Number must be exactly 10 characters"
	case !panRe.MatchString(f.PANNumber):
		errs["userPanNumber"] = "PAN Number must contain only uppercase alphabets and numbers"
	}

	if f.Role == session.RoleVendor {
		switch {
		case f.GSTNumber == "":
			errs["userGstNumber"] = "GST Number cannot be null"
		case !gstRe.MatchString(f.GSTNumber):
			errs["userGstNumber"] = "GST Number must be 15 uppercase alphanumeric characters"
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

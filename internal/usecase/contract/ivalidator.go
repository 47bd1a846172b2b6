package contract

// IValidator validates raw input before it reaches persistence.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}

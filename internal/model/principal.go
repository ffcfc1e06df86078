package model

// Principal is the read-side view shared by both account variants. The
// account lifecycle (OTP issuance, login, password reset) operates on this
// view; only signup needs the concrete type.
type Principal interface {
	// Identity returns the natural key: roll number for students, email for
	// recruiters.
	Identity() string
	// ContactEmail returns the verified email address.
	ContactEmail() string
	// PasswordHash returns the bcrypt hash of the account password.
	PasswordHash() string
	// IsVerified reports whether OTP-gated signup completed for this account.
	IsVerified() bool
}

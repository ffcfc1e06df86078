package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"careervector/internal/auth"
	apperrors "careervector/internal/errors"
	"careervector/internal/mailer"
	"careervector/internal/model"
	"careervector/internal/repository"
)

const bcryptCost = 10

// Messages holds the variant-specific framing of verification emails.
type Messages struct {
	Subject      string
	SignupPrefix string
	ResetPrefix  string
}

// loginDummyHash is compared against when the identifier resolves to no
// account, so the miss path costs one bcrypt comparison either way.
var loginDummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)

// accountLifecycle implements the OTP-gated account flows shared by both
// principal variants. It owns no state: existence lives in the repository,
// pending codes in the OTP store.
type accountLifecycle struct {
	principals repository.PrincipalRepository
	codes      auth.OTPStoreInterface
	mail       mailer.Mailer
	msg        Messages
}

// SendSignupOTP issues a verification code for a not-yet-registered email.
// The existence check runs strictly before any side effect.
func (s *accountLifecycle) SendSignupOTP(ctx context.Context, email string) error {
	_, err := s.principals.FindByEmail(ctx, email)
	if err == nil {
		return apperrors.ErrAlreadyRegistered
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check account existence: %w", err)
	}
	return s.issueCode(ctx, email, s.msg.SignupPrefix)
}

// SendResetOTP issues a verification code for an existing account's email.
func (s *accountLifecycle) SendResetOTP(ctx context.Context, email string) error {
	if _, err := s.principals.FindByEmail(ctx, email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("look up account: %w", err)
	}
	return s.issueCode(ctx, email, s.msg.ResetPrefix)
}

// issueCode stores a fresh code, overwriting any pending one, then sends it.
// When the send fails the stored code is left in place: it stays redeemable
// for its TTL, so the client can retry verification without a new request.
func (s *accountLifecycle) issueCode(ctx context.Context, email, prefix string) error {
	code := auth.GenerateCode()
	if err := s.codes.Issue(ctx, email, code); err != nil {
		return err
	}

	body := prefix + code + "\n\nThis code expires in 5 minutes."
	if err := s.mail.Send(ctx, email, s.msg.Subject, body); err != nil {
		log.Printf("send verification email to %s: %v", email, err)
		return apperrors.ErrNotificationFailed
	}
	return nil
}

// ResetPassword consumes a verification code and overwrites the stored hash
// in place. Every other field is untouched.
func (s *accountLifecycle) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	ok, err := s.codes.Verify(ctx, email, otp)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrInvalidOTP
	}

	if _, err := s.principals.FindByEmail(ctx, email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("look up account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.principals.UpdatePassword(ctx, email, string(hash)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Login resolves the identifier against email or username and checks the
// password. The credential check runs before the verified gate so the
// response timing does not reveal which one failed.
func (s *accountLifecycle) Login(ctx context.Context, identifier, password string) (model.Principal, error) {
	principal, err := s.principals.FindByIdentifier(ctx, identifier)
	if err != nil {
		bcrypt.CompareHashAndPassword(loginDummyHash, []byte(password))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash()), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !principal.IsVerified() {
		return nil, apperrors.ErrNotVerified
	}
	return principal, nil
}

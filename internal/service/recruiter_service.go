package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"careervector/internal/auth"
	apperrors "careervector/internal/errors"
	"careervector/internal/mailer"
	"careervector/internal/model"
	"careervector/internal/repository"
	"careervector/internal/storage"
)

var recruiterMessages = Messages{
	Subject:      "CareerVector Verification",
	SignupPrefix: "Welcome Recruiter! Your verification code is: ",
	ResetPrefix:  "Password Reset Request. Your verification code is: ",
}

// RecruiterSignupInput carries the multipart text fields of a recruiter signup.
type RecruiterSignupInput struct {
	Email       string
	FullName    string
	Username    string
	Mobile      string
	CompanyName string
	Role        string
	Password    string
	OTP         string
}

// RecruiterService exposes the recruiter account lifecycle.
type RecruiterService interface {
	SendSignupOTP(ctx context.Context, email string) error
	SendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	Login(ctx context.Context, identifier, password string) (model.Principal, error)
	CompleteSignup(ctx context.Context, in RecruiterSignupInput, image *Upload) (*model.Recruiter, error)
}

type recruiterService struct {
	accountLifecycle
	recruiters repository.RecruiterRepository
	uploads    storage.Uploader
}

// NewRecruiterService builds the recruiter service over its collaborators.
func NewRecruiterService(recruiters repository.RecruiterRepository, codes auth.OTPStoreInterface, mail mailer.Mailer, uploads storage.Uploader) RecruiterService {
	return &recruiterService{
		accountLifecycle: accountLifecycle{
			principals: recruiters,
			codes:      codes,
			mail:       mail,
			msg:        recruiterMessages,
		},
		recruiters: recruiters,
		uploads:    uploads,
	}
}

// CompleteSignup consumes the pending verification code and creates the
// recruiter row with verified=true in one write.
func (s *recruiterService) CompleteSignup(ctx context.Context, in RecruiterSignupInput, image *Upload) (*model.Recruiter, error) {
	ok, err := s.codes.Verify(ctx, in.Email, in.OTP)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	recruiter := &model.Recruiter{
		Email:       in.Email,
		FullName:    in.FullName,
		UserName:    in.Username,
		Mobile:      in.Mobile,
		CompanyName: in.CompanyName,
		Role:        in.Role,
		Password:    string(hash),
		Verified:    true,
	}

	if image != nil {
		owner := in.Username
		if owner == "" {
			owner = "recruiter"
		}
		name := fmt.Sprintf("%s_avatar_%d.png", owner, time.Now().UnixMilli())
		url, err := s.uploads.Upload(ctx, image.Data, image.ContentType, "recruiter-images", name)
		if err != nil {
			return nil, apperrors.ErrUploadFailed
		}
		recruiter.ImageURL = url
	}

	if err := s.recruiters.Create(ctx, recruiter); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, apperrors.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("create recruiter: %w", err)
	}
	return recruiter, nil
}

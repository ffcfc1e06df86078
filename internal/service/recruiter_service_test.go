package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "careervector/internal/errors"
	"careervector/internal/model"
)

// MockRecruiterRepository is a mock implementation of repository.RecruiterRepository.
type MockRecruiterRepository struct {
	mock.Mock
}

func (m *MockRecruiterRepository) Create(ctx context.Context, recruiter *model.Recruiter) error {
	args := m.Called(ctx, recruiter)
	return args.Error(0)
}

func (m *MockRecruiterRepository) FindByEmail(ctx context.Context, email string) (model.Principal, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Principal), args.Error(1)
}

func (m *MockRecruiterRepository) FindByIdentifier(ctx context.Context, identifier string) (model.Principal, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Principal), args.Error(1)
}

func (m *MockRecruiterRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

func TestRecruiterService_CompleteSignup(t *testing.T) {
	input := RecruiterSignupInput{
		Email:       "hr@acme.com",
		FullName:    "Acme HR",
		CompanyName: "Acme Corp",
		Role:        "HR",
		Password:    "password123",
		OTP:         "654321",
	}

	t.Run("successful signup without username falls back for the image name", func(t *testing.T) {
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "hr@acme.com", "654321").Return(true, nil)

		uploads := new(MockUploader)
		uploads.On("Upload", mock.Anything, []byte("png-bytes"), "image/png", "recruiter-images", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "recruiter_avatar_") && strings.HasSuffix(name, ".png")
		})).Return("https://cdn.example.com/recruiter-images/avatar.png", nil)

		repo := new(MockRecruiterRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Recruiter")).Return(nil)

		svc := NewRecruiterService(repo, codes, new(MockMailer), uploads)
		recruiter, err := svc.CompleteSignup(context.Background(), input,
			&Upload{Data: []byte("png-bytes"), ContentType: "image/png"})

		assert.NoError(t, err)
		assert.NotNil(t, recruiter)
		assert.True(t, recruiter.Verified)
		assert.Equal(t, "https://cdn.example.com/recruiter-images/avatar.png", recruiter.ImageURL)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(recruiter.Password), []byte("password123")))
		repo.AssertExpectations(t)
		uploads.AssertExpectations(t)
	})

	t.Run("replayed code is rejected", func(t *testing.T) {
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "hr@acme.com", "654321").Return(false, nil)
		repo := new(MockRecruiterRepository)

		svc := NewRecruiterService(repo, codes, new(MockMailer), new(MockUploader))
		recruiter, err := svc.CompleteSignup(context.Background(), input, nil)

		assert.Equal(t, apperrors.ErrInvalidOTP, err)
		assert.Nil(t, recruiter)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email loses the insert race", func(t *testing.T) {
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "hr@acme.com", "654321").Return(true, nil)

		repo := new(MockRecruiterRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Recruiter")).Return(gorm.ErrDuplicatedKey)

		svc := NewRecruiterService(repo, codes, new(MockMailer), new(MockUploader))
		recruiter, err := svc.CompleteSignup(context.Background(), input, nil)

		assert.Equal(t, apperrors.ErrDuplicateIdentity, err)
		assert.Nil(t, recruiter)
	})
}

func TestRecruiterService_SendSignupOTP_UsesRecruiterFraming(t *testing.T) {
	repo := new(MockRecruiterRepository)
	codes := new(MockOTPStore)
	mail := new(MockMailer)

	repo.On("FindByEmail", mock.Anything, "hr@acme.com").Return(nil, gorm.ErrRecordNotFound)
	codes.On("Issue", mock.Anything, "hr@acme.com", mock.AnythingOfType("string")).Return(nil)
	mail.On("Send", mock.Anything, "hr@acme.com", "CareerVector Verification", mock.MatchedBy(func(body string) bool {
		return strings.HasPrefix(body, "Welcome Recruiter!")
	})).Return(nil)

	svc := NewRecruiterService(repo, codes, mail, new(MockUploader))
	assert.NoError(t, svc.SendSignupOTP(context.Background(), "hr@acme.com"))
	mail.AssertExpectations(t)
}

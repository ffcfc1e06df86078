package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "careervector/internal/errors"
	"careervector/internal/model"
)

// MockStudentRepository is a mock implementation of repository.StudentRepository.
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *model.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) FindByEmail(ctx context.Context, email string) (model.Principal, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Principal), args.Error(1)
}

func (m *MockStudentRepository) FindByIdentifier(ctx context.Context, identifier string) (model.Principal, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Principal), args.Error(1)
}

func (m *MockStudentRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

// MockOTPStore is a mock implementation of auth.OTPStoreInterface.
type MockOTPStore struct {
	mock.Mock
}

func (m *MockOTPStore) Issue(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockOTPStore) Verify(ctx context.Context, email, candidate string) (bool, error) {
	args := m.Called(ctx, email, candidate)
	return args.Bool(0), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// MockUploader is a mock implementation of storage.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, data []byte, contentType, bucket, name string) (string, error) {
	args := m.Called(ctx, data, contentType, bucket, name)
	return args.String(0), args.Error(1)
}

func TestStudentService_SendSignupOTP(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockStudentRepository, *MockOTPStore, *MockMailer)
		expectedError error
	}{
		{
			name:  "new email gets a code",
			email: "a@x.com",
			setupMock: func(repo *MockStudentRepository, codes *MockOTPStore, mail *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				codes.On("Issue", mock.Anything, "a@x.com", mock.AnythingOfType("string")).Return(nil)
				mail.On("Send", mock.Anything, "a@x.com", "CareerVector Verification Code", mock.AnythingOfType("string")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "already registered, no side effects",
			email: "taken@x.com",
			setupMock: func(repo *MockStudentRepository, codes *MockOTPStore, mail *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.Student{Email: "taken@x.com"}, nil)
			},
			expectedError: apperrors.ErrAlreadyRegistered,
		},
		{
			name:  "mailer failure after the code is stored",
			email: "a@x.com",
			setupMock: func(repo *MockStudentRepository, codes *MockOTPStore, mail *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				codes.On("Issue", mock.Anything, "a@x.com", mock.AnythingOfType("string")).Return(nil)
				mail.On("Send", mock.Anything, "a@x.com", mock.Anything, mock.Anything).Return(errors.New("brevo api status 500"))
			},
			expectedError: apperrors.ErrNotificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockStudentRepository)
			codes := new(MockOTPStore)
			mail := new(MockMailer)
			tt.setupMock(repo, codes, mail)

			svc := NewStudentService(repo, codes, mail, new(MockUploader))
			err := svc.SendSignupOTP(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			codes.AssertExpectations(t)
			mail.AssertExpectations(t)

			if tt.expectedError == apperrors.ErrAlreadyRegistered {
				codes.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
				mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestStudentService_SendSignupOTP_MailsTheStoredCode(t *testing.T) {
	repo := new(MockStudentRepository)
	codes := new(MockOTPStore)
	mail := new(MockMailer)

	var issued string
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	codes.On("Issue", mock.Anything, "a@x.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { issued = args.String(2) }).Return(nil)
	mail.On("Send", mock.Anything, "a@x.com", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	svc := NewStudentService(repo, codes, mail, new(MockUploader))
	assert.NoError(t, svc.SendSignupOTP(context.Background(), "a@x.com"))

	assert.Len(t, issued, 6)
	body := mail.Calls[0].Arguments.String(3)
	assert.Contains(t, body, issued)
	assert.True(t, strings.HasPrefix(body, "Welcome to CareerVector!"))
}

func TestStudentService_SendSignupOTP_LogsMailerFailure(t *testing.T) {
	repo := new(MockStudentRepository)
	codes := new(MockOTPStore)
	mail := new(MockMailer)

	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	codes.On("Issue", mock.Anything, "a@x.com", mock.AnythingOfType("string")).Return(nil)
	mail.On("Send", mock.Anything, "a@x.com", mock.Anything, mock.AnythingOfType("string")).
		Return(errors.New("brevo: status 503"))

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	svc := NewStudentService(repo, codes, mail, new(MockUploader))
	err := svc.SendSignupOTP(context.Background(), "a@x.com")

	assert.Equal(t, apperrors.ErrNotificationFailed, err)
	assert.Contains(t, buf.String(), "brevo: status 503")
	assert.Contains(t, buf.String(), "a@x.com")
}

func TestStudentService_SendResetOTP(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockStudentRepository, *MockOTPStore, *MockMailer)
		expectedError error
	}{
		{
			name:  "registered email gets a reset code",
			email: "a@x.com",
			setupMock: func(repo *MockStudentRepository, codes *MockOTPStore, mail *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.Student{Email: "a@x.com"}, nil)
				codes.On("Issue", mock.Anything, "a@x.com", mock.AnythingOfType("string")).Return(nil)
				mail.On("Send", mock.Anything, "a@x.com", mock.Anything, mock.MatchedBy(func(body string) bool {
					return strings.HasPrefix(body, "CareerVector Password Reset.")
				})).Return(nil)
			},
		},
		{
			name:  "unknown email",
			email: "who@x.com",
			setupMock: func(repo *MockStudentRepository, codes *MockOTPStore, mail *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "who@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockStudentRepository)
			codes := new(MockOTPStore)
			mail := new(MockMailer)
			tt.setupMock(repo, codes, mail)

			svc := NewStudentService(repo, codes, mail, new(MockUploader))
			err := svc.SendResetOTP(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			codes.AssertExpectations(t)
			mail.AssertExpectations(t)
		})
	}
}

func TestStudentService_ResetPassword(t *testing.T) {
	t.Run("invalid code", func(t *testing.T) {
		repo := new(MockStudentRepository)
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "a@x.com", "000000").Return(false, nil)

		svc := NewStudentService(repo, codes, new(MockMailer), new(MockUploader))
		err := svc.ResetPassword(context.Background(), "a@x.com", "000000", "newpass123")

		assert.Equal(t, apperrors.ErrInvalidOTP, err)
		repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid code overwrites the hash", func(t *testing.T) {
		repo := new(MockStudentRepository)
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "a@x.com", "123456").Return(true, nil)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.Student{Email: "a@x.com"}, nil)

		var storedHash string
		repo.On("UpdatePassword", mock.Anything, "a@x.com", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).Return(nil)

		svc := NewStudentService(repo, codes, new(MockMailer), new(MockUploader))
		err := svc.ResetPassword(context.Background(), "a@x.com", "123456", "newpass123")

		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("newpass123")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("oldpass123")))
	})

	t.Run("account deleted after the code was issued", func(t *testing.T) {
		repo := new(MockStudentRepository)
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "gone@x.com", "123456").Return(true, nil)
		repo.On("FindByEmail", mock.Anything, "gone@x.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewStudentService(repo, codes, new(MockMailer), new(MockUploader))
		err := svc.ResetPassword(context.Background(), "gone@x.com", "123456", "newpass123")

		assert.Equal(t, apperrors.ErrNotFound, err)
	})
}

func TestStudentService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		identifier    string
		password      string
		setupMock     func(*MockStudentRepository)
		expectedError error
	}{
		{
			name:       "login by email",
			identifier: "a@x.com",
			password:   "password123",
			setupMock: func(repo *MockStudentRepository) {
				repo.On("FindByIdentifier", mock.Anything, "a@x.com").Return(&model.Student{
					RollNumber: "21CS001",
					Email:      "a@x.com",
					Password:   string(hash),
					Verified:   true,
				}, nil)
			},
		},
		{
			name:       "login by username",
			identifier: "someuser",
			password:   "password123",
			setupMock: func(repo *MockStudentRepository) {
				repo.On("FindByIdentifier", mock.Anything, "someuser").Return(&model.Student{
					RollNumber: "21CS001",
					Email:      "a@x.com",
					UserName:   "someuser",
					Password:   string(hash),
					Verified:   true,
				}, nil)
			},
		},
		{
			name:       "wrong password",
			identifier: "a@x.com",
			password:   "nope",
			setupMock: func(repo *MockStudentRepository) {
				repo.On("FindByIdentifier", mock.Anything, "a@x.com").Return(&model.Student{
					Email:    "a@x.com",
					Password: string(hash),
					Verified: true,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:       "unknown identifier",
			identifier: "nobody",
			password:   "password123",
			setupMock: func(repo *MockStudentRepository) {
				repo.On("FindByIdentifier", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:       "correct password but unverified",
			identifier: "a@x.com",
			password:   "password123",
			setupMock: func(repo *MockStudentRepository) {
				repo.On("FindByIdentifier", mock.Anything, "a@x.com").Return(&model.Student{
					Email:    "a@x.com",
					Password: string(hash),
					Verified: false,
				}, nil)
			},
			expectedError: apperrors.ErrNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockStudentRepository)
			tt.setupMock(repo)

			svc := NewStudentService(repo, new(MockOTPStore), new(MockMailer), new(MockUploader))
			principal, err := svc.Login(context.Background(), tt.identifier, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, principal)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, principal)
				assert.True(t, principal.IsVerified())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestStudentService_CompleteSignup(t *testing.T) {
	input := StudentSignupInput{
		Roll:         "21CS001",
		FullName:     "Test Student",
		Email:        "a@x.com",
		Password:     "password123",
		Username:     "tstudent",
		Semester:     "6",
		Year:         "3",
		SemesterGPAs: `{"sem1": 8.4, "sem2": "7.9", "sem3": "oops"}`,
		OTP:          "123456",
	}

	t.Run("invalid code rejects the whole payload", func(t *testing.T) {
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "a@x.com", "123456").Return(false, nil)
		repo := new(MockStudentRepository)

		svc := NewStudentService(repo, codes, new(MockMailer), new(MockUploader))
		student, err := svc.CompleteSignup(context.Background(), input, nil, nil)

		assert.Equal(t, apperrors.ErrInvalidOTP, err)
		assert.Nil(t, student)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("successful signup with files", func(t *testing.T) {
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "a@x.com", "123456").Return(true, nil)

		uploads := new(MockUploader)
		uploads.On("Upload", mock.Anything, []byte("png-bytes"), "image/png", "images", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "21CS001_avatar_") && strings.HasSuffix(name, ".png")
		})).Return("https://cdn.example.com/images/avatar.png", nil)
		uploads.On("Upload", mock.Anything, []byte("pdf-bytes"), "application/pdf", "resumes", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "21CS001_resume_") && strings.HasSuffix(name, ".pdf")
		})).Return("https://cdn.example.com/resumes/resume.pdf", nil)

		repo := new(MockStudentRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Student")).Return(nil)

		svc := NewStudentService(repo, codes, new(MockMailer), uploads)
		student, err := svc.CompleteSignup(context.Background(), input,
			&Upload{Data: []byte("png-bytes"), ContentType: "image/png"},
			&Upload{Data: []byte("pdf-bytes"), ContentType: "application/pdf"})

		assert.NoError(t, err)
		assert.NotNil(t, student)
		assert.True(t, student.Verified)
		assert.Equal(t, "https://cdn.example.com/images/avatar.png", student.ProfileImageURL)
		assert.Equal(t, "https://cdn.example.com/resumes/resume.pdf", student.ResumeURL)
		assert.Equal(t, 6, student.Semester)
		assert.Equal(t, 8.4, student.GPASem1)
		assert.Equal(t, 7.9, student.GPASem2)
		assert.Equal(t, 0.0, student.GPASem3)
		assert.NotEqual(t, "password123", student.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.Password), []byte("password123")))
		repo.AssertExpectations(t)
		uploads.AssertExpectations(t)
	})

	t.Run("uniqueness race surfaces as duplicate identity", func(t *testing.T) {
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "a@x.com", "123456").Return(true, nil)

		repo := new(MockStudentRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Student")).Return(gorm.ErrDuplicatedKey)

		svc := NewStudentService(repo, codes, new(MockMailer), new(MockUploader))
		student, err := svc.CompleteSignup(context.Background(), input, nil, nil)

		assert.Equal(t, apperrors.ErrDuplicateIdentity, err)
		assert.Nil(t, student)
	})

	t.Run("upload failure aborts before the insert", func(t *testing.T) {
		codes := new(MockOTPStore)
		codes.On("Verify", mock.Anything, "a@x.com", "123456").Return(true, nil)

		uploads := new(MockUploader)
		uploads.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("storage api status 500"))

		repo := new(MockStudentRepository)

		svc := NewStudentService(repo, codes, new(MockMailer), uploads)
		student, err := svc.CompleteSignup(context.Background(), input,
			&Upload{Data: []byte("png-bytes"), ContentType: "image/png"}, nil)

		assert.Equal(t, apperrors.ErrUploadFailed, err)
		assert.Nil(t, student)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestParseGPAs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]float64
	}{
		{
			name:     "empty input",
			raw:      "",
			expected: map[string]float64{},
		},
		{
			name:     "malformed json defaults everything",
			raw:      "{not json",
			expected: map[string]float64{},
		},
		{
			name: "numbers and numeric strings",
			raw:  `{"sem1": 8.4, "sem2": "9.1", "sem3": "n/a", "sem4": null}`,
			expected: map[string]float64{
				"sem1": 8.4,
				"sem2": 9.1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGPAs(tt.raw)
			for key, want := range tt.expected {
				assert.Equal(t, want, got[key])
			}
			assert.Equal(t, 0.0, got["sem8"])
		})
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
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

var studentMessages = Messages{
	Subject:      "CareerVector Verification Code",
	SignupPrefix: "Welcome to CareerVector! Your Verification Code is: ",
	ResetPrefix:  "CareerVector Password Reset. Your Verification Code is: ",
}

// Upload is one file attached to a signup request, already read into memory.
type Upload struct {
	Data        []byte
	ContentType string
}

// StudentSignupInput carries the multipart text fields of a student signup.
// Numeric fields arrive as raw strings and are parsed defensively.
type StudentSignupInput struct {
	Roll         string
	FullName     string
	Email        string
	Password     string
	Username     string
	Dept         string
	Branch       string
	Mobile       string
	Semester     string
	Year         string
	SemesterGPAs string // JSON object: {"sem1": 8.4, ...}
	Leetcode     string
	Github       string
	OTP          string
}

// StudentService exposes the student account lifecycle.
type StudentService interface {
	SendSignupOTP(ctx context.Context, email string) error
	SendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	Login(ctx context.Context, identifier, password string) (model.Principal, error)
	CompleteSignup(ctx context.Context, in StudentSignupInput, profilePic, resume *Upload) (*model.Student, error)
}

type studentService struct {
	accountLifecycle
	students repository.StudentRepository
	uploads  storage.Uploader
}

// NewStudentService builds the student service over its collaborators.
func NewStudentService(students repository.StudentRepository, codes auth.OTPStoreInterface, mail mailer.Mailer, uploads storage.Uploader) StudentService {
	return &studentService{
		accountLifecycle: accountLifecycle{
			principals: students,
			codes:      codes,
			mail:       mail,
			msg:        studentMessages,
		},
		students: students,
		uploads:  uploads,
	}
}

// CompleteSignup consumes the pending verification code and creates the
// student row with verified=true in one write. The insert's uniqueness
// constraint is the final arbiter against concurrent signups.
func (s *studentService) CompleteSignup(ctx context.Context, in StudentSignupInput, profilePic, resume *Upload) (*model.Student, error) {
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

	student := &model.Student{
		RollNumber:   in.Roll,
		FullName:     in.FullName,
		Email:        in.Email,
		Password:     string(hash),
		UserName:     in.Username,
		Dept:         in.Dept,
		Branch:       in.Branch,
		MobileNumber: in.Mobile,
		Semester:     intOrZero(in.Semester),
		Year:         intOrZero(in.Year),
		LeetcodeURL:  in.Leetcode,
		GithubURL:    in.Github,
		Verified:     true,
	}

	gpas := parseGPAs(in.SemesterGPAs)
	student.GPASem1 = gpas["sem1"]
	student.GPASem2 = gpas["sem2"]
	student.GPASem3 = gpas["sem3"]
	student.GPASem4 = gpas["sem4"]
	student.GPASem5 = gpas["sem5"]
	student.GPASem6 = gpas["sem6"]
	student.GPASem7 = gpas["sem7"]
	student.GPASem8 = gpas["sem8"]

	if profilePic != nil {
		name := fmt.Sprintf("%s_avatar_%d.png", in.Roll, time.Now().UnixMilli())
		url, err := s.uploads.Upload(ctx, profilePic.Data, profilePic.ContentType, "images", name)
		if err != nil {
			return nil, apperrors.ErrUploadFailed
		}
		student.ProfileImageURL = url
	}
	if resume != nil {
		name := fmt.Sprintf("%s_resume_%d.pdf", in.Roll, time.Now().UnixMilli())
		url, err := s.uploads.Upload(ctx, resume.Data, resume.ContentType, "resumes", name)
		if err != nil {
			return nil, apperrors.ErrUploadFailed
		}
		student.ResumeURL = url
	}

	if err := s.students.Create(ctx, student); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, apperrors.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

// parseGPAs reads the per-semester GPA JSON. Absent keys, unparsable values,
// and malformed JSON all default to 0.0 rather than failing the signup.
func parseGPAs(raw string) map[string]float64 {
	out := make(map[string]float64, 8)
	if raw == "" {
		return out
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return out
	}

	for key, value := range parsed {
		switch v := value.(type) {
		case float64:
			out[key] = v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				out[key] = f
			}
		}
	}
	return out
}

func intOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"careervector/internal/auth"
	apperrors "careervector/internal/errors"
	"careervector/internal/service"
)

// StudentHandler handles student account endpoints.
type StudentHandler struct {
	students   service.StudentService
	jwtService *auth.JWTService
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(students service.StudentService, jwtService *auth.JWTService) *StudentHandler {
	return &StudentHandler{students: students, jwtService: jwtService}
}

// SendOTPRequest carries the email an OTP should be issued for.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries an OTP-gated password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// LoginRequest carries login credentials. The identifier may be an email or
// a username; the legacy "email" field is accepted as a fallback.
type LoginRequest struct {
	Identifier string `json:"emailOrUsername"`
	Email      string `json:"email"`
	Password   string `json:"password" validate:"required"`
}

func (r *LoginRequest) identifier() string {
	if id := strings.TrimSpace(r.Identifier); id != "" {
		return id
	}
	return strings.TrimSpace(r.Email)
}

// AuthResponse carries a logged-in principal and its access token.
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// SendOTP godoc
// @Summary Request a signup verification code
// @Tags student
// @Accept json
// @Produce plain
// @Param request body SendOTPRequest true "Email to verify"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /student/send-otp [post]
func (h *StudentHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email := strings.TrimSpace(req.Email)
	if err := h.students.SendSignupOTP(c.Request().Context(), email); err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "OTP sent successfully to "+email)
}

// ForgotPassword godoc
// @Summary Request a password reset verification code
// @Tags student
// @Accept json
// @Produce plain
// @Param request body SendOTPRequest true "Registered email"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /student/forgot-password [post]
func (h *StudentHandler) ForgotPassword(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.students.SendResetOTP(c.Request().Context(), strings.TrimSpace(req.Email)); err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "OTP sent for password reset.")
}

// ResetPassword godoc
// @Summary Reset the password with a verification code
// @Tags student
// @Accept json
// @Produce plain
// @Param request body ResetPasswordRequest true "Reset payload"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /student/reset-password [post]
func (h *StudentHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.students.ResetPassword(c.Request().Context(),
		strings.TrimSpace(req.Email), strings.TrimSpace(req.OTP), req.NewPassword)
	if err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "Password updated successfully. Please login.")
}

// Signup godoc
// @Summary Complete an OTP-gated student signup
// @Tags student
// @Accept mpfd
// @Produce json
// @Param email formData string true "Email the OTP was issued for"
// @Param otp formData string true "Verification code"
// @Param roll formData string true "Roll number"
// @Param password formData string true "Password"
// @Param profilePic formData file false "Profile picture"
// @Param resume formData file false "Resume PDF"
// @Success 201 {object} model.Student
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /student/signup [post]
func (h *StudentHandler) Signup(c echo.Context) error {
	in := service.StudentSignupInput{
		Roll:         strings.TrimSpace(c.FormValue("roll")),
		FullName:     c.FormValue("fullName"),
		Email:        strings.TrimSpace(c.FormValue("email")),
		Password:     c.FormValue("password"),
		Username:     c.FormValue("username"),
		Dept:         c.FormValue("dept"),
		Branch:       c.FormValue("branch"),
		Mobile:       c.FormValue("mobile"),
		Semester:     c.FormValue("sem"),
		Year:         c.FormValue("year"),
		SemesterGPAs: c.FormValue("semesterGPAs"),
		Leetcode:     c.FormValue("leetcode"),
		Github:       c.FormValue("github"),
		OTP:          strings.TrimSpace(c.FormValue("otp")),
	}
	if in.Email == "" || in.OTP == "" || in.Roll == "" || in.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email, otp, roll and password are required")
	}

	profilePic, err := readFormFile(c, "profilePic")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read profile picture: "+err.Error())
	}
	resume, err := readFormFile(c, "resume")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read resume: "+err.Error())
	}

	student, err := h.students.CompleteSignup(c.Request().Context(), in, profilePic, resume)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, student)
}

// Login godoc
// @Summary Log in with email or username
// @Tags student
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /student/login [post]
func (h *StudentHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identifier := req.identifier()
	if identifier == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email or username is required")
	}

	student, err := h.students.Login(c.Request().Context(), identifier, req.Password)
	if err != nil {
		return httpError(err)
	}

	token, err := h.jwtService.GenerateAccessToken(student.Identity(), student.ContactEmail())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: student})
}

// httpError maps a service error onto the transport representation.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

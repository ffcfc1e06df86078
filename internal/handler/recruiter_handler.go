package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"careervector/internal/auth"
	"careervector/internal/service"
)

// RecruiterHandler handles recruiter account endpoints.
type RecruiterHandler struct {
	recruiters service.RecruiterService
	jwtService *auth.JWTService
}

// NewRecruiterHandler creates a new recruiter handler.
func NewRecruiterHandler(recruiters service.RecruiterService, jwtService *auth.JWTService) *RecruiterHandler {
	return &RecruiterHandler{recruiters: recruiters, jwtService: jwtService}
}

// SendOTP godoc
// @Summary Request a signup verification code
// @Tags recruiter
// @Accept json
// @Produce plain
// @Param request body SendOTPRequest true "Email to verify"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /recruiter/send-otp [post]
func (h *RecruiterHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email := strings.TrimSpace(req.Email)
	if err := h.recruiters.SendSignupOTP(c.Request().Context(), email); err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "OTP sent successfully to "+email)
}

// ForgotPassword godoc
// @Summary Request a password reset verification code
// @Tags recruiter
// @Accept json
// @Produce plain
// @Param request body SendOTPRequest true "Registered email"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /recruiter/forgot-password [post]
func (h *RecruiterHandler) ForgotPassword(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.recruiters.SendResetOTP(c.Request().Context(), strings.TrimSpace(req.Email)); err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "OTP sent successfully for password reset.")
}

// ResetPassword godoc
// @Summary Reset the password with a verification code
// @Tags recruiter
// @Accept json
// @Produce plain
// @Param request body ResetPasswordRequest true "Reset payload"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recruiter/reset-password [post]
func (h *RecruiterHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.recruiters.ResetPassword(c.Request().Context(),
		strings.TrimSpace(req.Email), strings.TrimSpace(req.OTP), req.NewPassword)
	if err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, "Password updated successfully. Please login.")
}

// Signup godoc
// @Summary Complete an OTP-gated recruiter signup
// @Tags recruiter
// @Accept mpfd
// @Produce json
// @Param email formData string true "Email the OTP was issued for"
// @Param otp formData string true "Verification code"
// @Param password formData string true "Password"
// @Param image formData file false "Profile image"
// @Success 201 {object} model.Recruiter
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /recruiter/signup [post]
func (h *RecruiterHandler) Signup(c echo.Context) error {
	in := service.RecruiterSignupInput{
		Email:       strings.TrimSpace(c.FormValue("email")),
		FullName:    c.FormValue("fullName"),
		Username:    c.FormValue("username"),
		Mobile:      c.FormValue("mobile"),
		CompanyName: c.FormValue("companyName"),
		Role:        c.FormValue("role"),
		Password:    c.FormValue("password"),
		OTP:         strings.TrimSpace(c.FormValue("otp")),
	}
	if in.Email == "" || in.OTP == "" || in.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email, otp and password are required")
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read image: "+err.Error())
	}

	recruiter, err := h.recruiters.CompleteSignup(c.Request().Context(), in, image)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, recruiter)
}

// Login godoc
// @Summary Log in with email or username
// @Tags recruiter
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recruiter/login [post]
func (h *RecruiterHandler) Login(c echo.Context) error {
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

	recruiter, err := h.recruiters.Login(c.Request().Context(), identifier, req.Password)
	if err != nil {
		return httpError(err)
	}

	token, err := h.jwtService.GenerateAccessToken(recruiter.Identity(), recruiter.ContactEmail())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: recruiter})
}

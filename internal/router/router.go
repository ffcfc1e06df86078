package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"careervector/internal/config"
	"careervector/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	studentHandler *handler.StudentHandler,
	recruiterHandler *handler.RecruiterHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	student := api.Group("/student")
	student.POST("/send-otp", studentHandler.SendOTP)
	student.POST("/forgot-password", studentHandler.ForgotPassword)
	student.POST("/reset-password", studentHandler.ResetPassword)
	student.POST("/signup", studentHandler.Signup)
	student.POST("/login", studentHandler.Login)

	recruiter := api.Group("/recruiter")
	recruiter.POST("/send-otp", recruiterHandler.SendOTP)
	recruiter.POST("/forgot-password", recruiterHandler.ForgotPassword)
	recruiter.POST("/reset-password", recruiterHandler.ResetPassword)
	recruiter.POST("/signup", recruiterHandler.Signup)
	recruiter.POST("/login", recruiterHandler.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

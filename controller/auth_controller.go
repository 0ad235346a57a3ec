package controller

import (
	"net/http"

	"github.com/sahradeniz/Astrologi-Ai-sub000/middleware"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/service"
	"github.com/sahradeniz/Astrologi-Ai-sub000/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	userService  service.UserService
	isProduction bool
}

func NewAuthController(us service.UserService, isProduction bool) *AuthController {
	return &AuthController{userService: us, isProduction: isProduction}
}

func (ctrl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/register", ctrl.Register)

		protected := authGroup.Group("/")
		protected.Use(middleware.AuthMiddleware(ctrl.isProduction))
		{
			protected.POST("/logout", ctrl.Logout)
			protected.GET("/me", ctrl.GetMe)
		}
	}
}

// Login godoc
// @Summary      User Login
// @Description  Forwards credentials to the remote user service and opens a cookie session.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      model.LoginDto  true  "Login Credentials"
// @Success      200    {object}  model.Response{data=model.UserProfile}
// @Failure      401    {object}  model.Response
// @Router       /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req model.LoginDto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	credValidation := zog.Struct(validator.CredentialsShape)
	if err := credValidation.Validate(&req); err != nil {
		log.Printf("Validation error %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	profile, sessionToken, err := ctrl.userService.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, "Login failed", err)
		return
	}

	ctrl.setAuthCookie(c, sessionToken, 1800)
	handleSuccess(c, "Giriş başarılı", profile)
}

// Register godoc
// @Summary      User Registration
// @Description  Forwards the registration form to the remote user service and opens a cookie session.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      model.RegisterDto  true  "Registration form"
// @Success      200       {object}  model.Response{data=model.UserProfile}
// @Failure      400       {object}  model.Response
// @Router       /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req model.RegisterDto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	regValidation := zog.Struct(validator.CredentialsShape).Extend(validator.RegisterShape)
	if err := regValidation.Validate(&req); err != nil {
		log.Printf("Validation error %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration form"})
		return
	}

	profile, sessionToken, err := ctrl.userService.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, "Registration failed", err)
		return
	}

	ctrl.setAuthCookie(c, sessionToken, 1800)
	handleSuccess(c, "Kayıt başarılı", profile)
}

// Logout godoc
// @Summary      User Logout
// @Description  Clears the session cookie and every persisted session key, including the saved chart.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  model.Response
// @Router       /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.userService.Logout(c.Request.Context()); err != nil {
		handleError(c, "Logout failed", err)
		return
	}

	ctrl.setAuthCookie(c, "", -1)
	handleSuccess(c, "Çıkış yapıldı", nil)
}

// GetMe godoc
// @Summary      Get Current User
// @Description  Returns the stored profile of the authenticated session.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  model.Response{data=model.UserProfile}
// @Failure      401  {object}  model.Response
// @Router       /auth/me [get]
func (ctrl *AuthController) GetMe(c *gin.Context) {
	if _, ok := middleware.GetUser(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := ctrl.userService.Profile(c.Request.Context())
	if err != nil {
		handleError(c, "Profile not found", err)
		return
	}

	handleSuccess(c, "Fetch Success", profile)
}

func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie("auth_token", token, maxAge, "/", "", ctrl.isProduction, true)
}

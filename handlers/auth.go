package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/store"
	"github.com/kxxnxr13/web-inmobiliaria/utils"
)

var validate = validator.New()

type AuthController struct {
	admins    *store.Admins
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthController(admins *store.Admins, jwtSecret string, jwtExpiry time.Duration) *AuthController {
	return &AuthController{
		admins:    admins,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
	}

	user, err := ac.admins.Authenticate(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	token, err := utils.GenerateJWT(ac.jwtSecret, user.ID, user.Email, user.Role, user.Name, ac.jwtExpiry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	ac.admins.SaveSession(user)

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user,
	})
}

func (ac *AuthController) Logout(c echo.Context) error {
	ac.admins.ClearSession()
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (ac *AuthController) ListAdmins(c echo.Context) error {
	admins := ac.admins.List()
	for i := range admins {
		admins[i].Password = ""
	}
	return c.JSON(http.StatusOK, admins)
}

func (ac *AuthController) CreateAdmin(c echo.Context) error {
	var req models.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email, name and a password of at least 6 characters are required"})
	}

	admin, err := ac.admins.Create(req)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Admin with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create admin"})
	}

	admin.Password = ""
	return c.JSON(http.StatusCreated, admin)
}

func (ac *AuthController) ToggleAdmin(c echo.Context) error {
	admin, ok := ac.admins.Toggle(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Admin not found"})
	}
	admin.Password = ""
	return c.JSON(http.StatusOK, admin)
}

func (ac *AuthController) DeleteAdmin(c echo.Context) error {
	ac.admins.Delete(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{"message": "Admin deleted successfully"})
}

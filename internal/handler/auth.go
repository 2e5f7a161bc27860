package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/muhammadlatif13/movieapp/internal/config"
	"github.com/muhammadlatif13/movieapp/internal/repository"
	"github.com/muhammadlatif13/movieapp/internal/utils"
)

// UserStore is the persistence surface the auth endpoints need.  It is
// implemented by repository.UserRepo and mocked in tests.
type UserStore interface {
	Create(ctx context.Context, username, password string, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (repository.User, error)
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// Register: create user and return its generated id.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrUsernameTaken {
			return c.JSON(http.StatusConflict, echo.Map{"message": "username already taken"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "registration successful",
		"userId":  uid,
	})
}

// Login: verify credentials and return the user with a signed access token.
// The password hash is never echoed back.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid username or password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue access token failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "login successful",
		"user":    userPart{ID: u.ID, Username: u.Username},
		"token":   access.Token,
	})
}

// Me: simple protected endpoint echoing the authenticated identity.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"username": c.Get("username"),
	})
}

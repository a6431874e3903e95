package users

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/sovann/postboard/internal/apierr"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type registerDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailDTO struct {
	Email string `json:"email"`
}

// UserResponse is the sanitized view returned to clients. Password
// material and internal fields are never echoed back.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func (h *Handler) Register(c *gin.Context) {
	var body registerDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		apierr.Respond(c, apierr.Invalid("invalid request body"))
		return
	}

	username := strings.ToLower(strings.TrimSpace(body.Username))
	email := NormalizeEmail(body.Email)
	if username == "" || email == "" || body.Password == "" {
		apierr.Respond(c, apierr.Invalid("all fields are required"))
		return
	}
	if len(username) > 30 {
		apierr.Respond(c, apierr.Invalid("username must be at most 30 characters"))
		return
	}
	if len(body.Password) < 6 || len(body.Password) > 50 {
		apierr.Respond(c, apierr.Invalid("password must be between 6 and 50 characters"))
		return
	}

	if _, err := h.store.FindByEmail(c.Request.Context(), email); err == nil {
		apierr.Respond(c, apierr.Conflict("user already exists"))
		return
	} else if !errors.Is(err, ErrNotFound) {
		apierr.Respond(c, apierr.Internal(err))
		return
	}

	hashed, err := HashPassword(body.Password)
	if err != nil {
		apierr.Respond(c, apierr.Internal(err))
		return
	}

	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		LoggedIn:     false,
	}
	if err := h.store.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			// the pre-check lost a race with a concurrent registration
			apierr.Respond(c, apierr.Conflict("user already exists"))
			return
		}
		apierr.Respond(c, apierr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var body credentialsDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		apierr.Respond(c, apierr.Invalid("invalid request body"))
		return
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		apierr.Respond(c, apierr.Invalid("all fields are required"))
		return
	}

	u, err := h.store.FindByEmail(c.Request.Context(), body.Email)
	if errors.Is(err, ErrNotFound) {
		// same response as a wrong password so callers cannot probe
		// which emails are registered
		apierr.Respond(c, apierr.Auth("invalid credentials"))
		return
	}
	if err != nil {
		apierr.Respond(c, apierr.Internal(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)); err != nil {
		apierr.Respond(c, apierr.Auth("invalid credentials"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "login successful",
		"id":       u.ID,
		"email":    u.Email,
		"username": u.Username,
	})
}

// Logout confirms the account exists. No server-side session state is
// mutated; sessions are out of scope.
func (h *Handler) Logout(c *gin.Context) {
	var body emailDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		apierr.Respond(c, apierr.Invalid("invalid request body"))
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		apierr.Respond(c, apierr.Invalid("email is required"))
		return
	}

	if _, err := h.store.FindByEmail(c.Request.Context(), body.Email); err != nil {
		if errors.Is(err, ErrNotFound) {
			apierr.Respond(c, apierr.NotFound("user not found"))
			return
		}
		apierr.Respond(c, apierr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) Get(c *gin.Context) {
	u, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			apierr.Respond(c, apierr.NotFound("user not found"))
			return
		}
		apierr.Respond(c, apierr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, toResponse(u))
}

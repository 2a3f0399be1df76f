package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/model"
	authutil "github.com/skillpath/institute-api/utils/auth"
	"github.com/skillpath/institute-api/utils/response"
	"github.com/skillpath/institute-api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles admin panel authentication
type AuthHandler struct {
	db         *gorm.DB
	jwtManager *authutil.JWTManager
	validator  *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager) *AuthHandler {
	return &AuthHandler{
		db:         db,
		jwtManager: jwtManager,
		validator:  validation.NewValidator(),
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	// Parse request body
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	// Find user by email
	var user model.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to look up user")
	}

	// Verify password
	if err := authutil.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return response.Unauthorized(c, "Invalid email or password")
	}

	// Generate access token
	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	return response.Success(c, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Profile handles GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*model.User)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	return response.Success(c, user)
}

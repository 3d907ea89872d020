package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"gantavya-backend/dto"
	"gantavya-backend/internal/repository"
)

// Login godoc
// @Summary Admin login
// @Description Exchange admin credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func Login(secret string, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "email and password are required"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		admin, err := repository.GetAdminByEmail(ctx, req.Email)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return c.Status(fiber.StatusUnauthorized).
					JSON(dto.ErrorResponse{Error: "Invalid credentials"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Database query failed"})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Invalid credentials"})
		}

		if secret == "" {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Missing JWT_SECRET"})
		}

		claims := jwt.MapClaims{
			"uid": admin.ID.Hex(),
			"sub": admin.Email,
			"exp": time.Now().Add(time.Hour * 72).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		t, err := token.SignedString([]byte(secret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Could not sign token"})
		}

		return c.JSON(dto.LoginResponse{AccessToken: t})
	}
}

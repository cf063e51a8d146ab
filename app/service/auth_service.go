package service

import (
	"github.com/gofiber/fiber/v2"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/helper"
)

type AuthService struct {
	repo repo.UserRepository
}

func NewAuthService(repo repo.UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// /api/v1/auth/login
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	// The same message covers every failure path so login probes learn
	// nothing about which accounts exist.
	user, err := s.repo.FindByName(req.Name)
	if err != nil || !user.IsActive || !helper.CheckPIN(req.PIN, user.PINHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	token, err := helper.GenerateToken(*user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(model.LoginSuccessResponse{
		Success: true,
		Message: "Login successful",
		Data: model.LoginResponse{
			User: model.LoginUser{
				ID:          user.ID.String(),
				Name:        user.Name,
				Role:        user.Role,
				Permissions: user.PermissionList(),
			},
			Token: token,
		},
	})
}

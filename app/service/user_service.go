package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/helper"
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(repo repo.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func toPermissionMap(perms map[string]bool) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for key, granted := range perms {
		out[key] = granted
	}
	return out
}

// /api/v1/users
func (s *UserService) List(c *fiber.Ctx) error {
	users, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load users",
		})
	}
	return c.JSON(model.SuccessResponse[[]model.User]{Success: true, Data: users})
}

// /api/v1/users
func (s *UserService) Create(c *fiber.Ctx) error {
	var req model.CreateUserRequest
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

	hash, err := helper.HashPIN(req.PIN)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to hash PIN",
		})
	}

	perms := req.Permissions
	if perms == nil {
		perms = model.DefaultPermissions(req.Role)
	}

	user := model.User{
		Name:        req.Name,
		PINHash:     hash,
		Role:        req.Role,
		Permissions: toPermissionMap(perms),
		IsActive:    true,
	}
	if err := s.repo.Create(&user); err != nil {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to create user; the name may already be taken",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.User]{
		Success: true,
		Message: "User created",
		Data:    user,
	})
}

// /api/v1/users/:id
func (s *UserService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid user id",
		})
	}

	var req model.UpdateUserRequest
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

	user, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Permissions != nil {
		user.Permissions = toPermissionMap(*req.Permissions)
	}
	if req.PIN != nil {
		hash, err := helper.HashPIN(*req.PIN)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
				Success: false,
				Message: "Failed to hash PIN",
			})
		}
		user.PINHash = hash
	}

	if err := s.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update user",
		})
	}

	return c.JSON(model.SuccessResponse[model.User]{
		Success: true,
		Message: "User updated",
		Data:    *user,
	})
}

// /api/v1/users/:id
func (s *UserService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid user id",
		})
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to delete user",
		})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "User deleted"})
}

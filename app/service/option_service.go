package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/helper"
)

type OptionService struct {
	repo repo.OptionRepository
}

func NewOptionService(repo repo.OptionRepository) *OptionService {
	return &OptionService{repo: repo}
}

// /api/v1/options
func (s *OptionService) Get(c *fiber.Ctx) error {
	opts, err := s.repo.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load options",
		})
	}
	return c.JSON(model.SuccessResponse[model.DropdownOptions]{Success: true, Data: *opts})
}

// /api/v1/options/add
func (s *OptionService) Add(c *fiber.Ctx) error {
	return s.update(c, s.repo.AddValue, "Option added")
}

// /api/v1/options/remove
func (s *OptionService) Remove(c *fiber.Ctx) error {
	return s.update(c, s.repo.RemoveValue, "Option removed")
}

func (s *OptionService) update(c *fiber.Ctx, apply func(context.Context, string, string) error, message string) error {
	var req model.UpdateOptionRequest
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

	if err := apply(c.Context(), req.Field, req.Value); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update options",
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: message})
}

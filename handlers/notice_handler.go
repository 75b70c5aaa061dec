package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-management-backend/models"
	"school-management-backend/pkg/paseto"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
)

type NoticeHandler struct {
	repo *repository.NoticeRepository
}

func NewNoticeHandler(repo *repository.NoticeRepository) *NoticeHandler {
	return &NoticeHandler{repo: repo}
}

func (h *NoticeHandler) CreateNotice(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	var payload models.NoticeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	notice := &models.Notice{
		Title:    payload.Title,
		Body:     payload.Body,
		Audience: payload.Audience,
		Date:     payload.Date,
		PostedBy: claims.UserID,
	}

	if _, err := h.repo.Create(c.Context(), notice); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create notice"})
	}

	return c.Status(fiber.StatusCreated).JSON(notice)
}

// GetNotices lists the notices visible to the caller's role.
func (h *NoticeHandler) GetNotices(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	notices, err := h.repo.FindForAudience(c.Context(), claims.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load notices"})
	}

	return c.Status(fiber.StatusOK).JSON(notices)
}

func (h *NoticeHandler) UpdateNotice(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notice id"})
	}

	var payload models.NoticeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	result, err := h.repo.UpdateByID(c.Context(), id, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update notice"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "notice not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notice updated successfully", "notice_id": id.Hex()})
}

func (h *NoticeHandler) DeleteNotice(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notice id"})
	}

	result, err := h.repo.DeleteByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete notice"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "notice not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notice deleted successfully", "notice_id": id.Hex()})
}

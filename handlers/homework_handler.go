package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-management-backend/models"
	"school-management-backend/pkg/paseto"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
)

type HomeworkHandler struct {
	repo     *repository.HomeworkRepository
	userRepo *repository.UserRepository
}

func NewHomeworkHandler(repo *repository.HomeworkRepository, userRepo *repository.UserRepository) *HomeworkHandler {
	return &HomeworkHandler{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (h *HomeworkHandler) CreateHomework(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	var payload models.HomeworkCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	homework := &models.Homework{
		ClassName:   payload.ClassName,
		Subject:     payload.Subject,
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     payload.DueDate,
		AssignedBy:  claims.UserID,
	}

	if _, err := h.repo.Create(c.Context(), homework); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create homework"})
	}

	return c.Status(fiber.StatusCreated).JSON(homework)
}

// GetHomeworkForClass lists a class's homework. Students are pinned to their
// own class regardless of the path parameter.
func (h *HomeworkHandler) GetHomeworkForClass(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	className := c.Params("className")
	if claims.Role == "student" {
		user, err := h.userRepo.FindUserByID(c.Context(), claims.UserID)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
		}
		className = user.ClassName
	}
	if className == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "class name is required"})
	}

	homeworks, err := h.repo.FindByClass(c.Context(), className, c.Query("due_after"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load homework"})
	}

	return c.Status(fiber.StatusOK).JSON(homeworks)
}

func (h *HomeworkHandler) UpdateHomework(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid homework id"})
	}

	var payload models.HomeworkUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	result, err := h.repo.UpdateByID(c.Context(), id, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update homework"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "homework not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Homework updated successfully", "homework_id": id.Hex()})
}

func (h *HomeworkHandler) DeleteHomework(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid homework id"})
	}

	result, err := h.repo.DeleteByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete homework"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "homework not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Homework deleted successfully", "homework_id": id.Hex()})
}

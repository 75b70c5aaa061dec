package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-management-backend/models"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
)

type ClassHandler struct {
	repo repository.ClassRepository
}

func NewClassHandler(repo repository.ClassRepository) *ClassHandler {
	return &ClassHandler{repo: repo}
}

func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var payload models.SchoolClassCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	class := &models.SchoolClass{
		Name:    payload.Name,
		Grade:   payload.Grade,
		Section: payload.Section,
	}
	if payload.TeacherID != "" {
		teacherID, err := primitive.ObjectIDFromHex(payload.TeacherID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid teacher id"})
		}
		class.TeacherID = teacherID
	}

	if _, err := h.repo.CreateClass(c.Context(), class); err != nil {
		if err.Error() == "class name already exists" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create class"})
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

func (h *ClassHandler) GetAllClasses(c *fiber.Ctx) error {
	classes, err := h.repo.GetAllClasses(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load classes"})
	}
	return c.Status(fiber.StatusOK).JSON(classes)
}

func (h *ClassHandler) GetClassByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid class id"})
	}

	class, err := h.repo.GetClassByID(c.Context(), id)
	if err != nil {
		if err.Error() == "class not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load class"})
	}

	return c.Status(fiber.StatusOK).JSON(class)
}

func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid class id"})
	}

	var payload models.SchoolClassUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Grade != 0 {
		updateData["grade"] = payload.Grade
	}
	if payload.Section != "" {
		updateData["section"] = payload.Section
	}
	if payload.TeacherID != "" {
		teacherID, err := primitive.ObjectIDFromHex(payload.TeacherID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid teacher id"})
		}
		updateData["teacher_id"] = teacherID
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nothing to update"})
	}

	result, err := h.repo.UpdateClass(c.Context(), id, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update class"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "class not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Class updated successfully", "class_id": id.Hex()})
}

func (h *ClassHandler) DeleteClass(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid class id"})
	}

	result, err := h.repo.DeleteClass(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete class"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "class not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Class deleted successfully", "class_id": id.Hex()})
}

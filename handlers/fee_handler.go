package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-management-backend/models"
	"school-management-backend/pkg/paseto"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
)

type FeeHandler struct {
	repo     *repository.FeeRepository
	userRepo *repository.UserRepository
}

func NewFeeHandler(repo *repository.FeeRepository, userRepo *repository.UserRepository) *FeeHandler {
	return &FeeHandler{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (h *FeeHandler) CreateFee(c *fiber.Ctx) error {
	var payload models.FeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	studentID, err := primitive.ObjectIDFromHex(payload.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid student id"})
	}

	student, err := h.userRepo.FindUserByID(c.Context(), studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to look up student"})
	}
	if student == nil || student.Role != "student" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "student not found"})
	}

	fee := &models.Fee{
		StudentID: studentID,
		Term:      payload.Term,
		Amount:    payload.Amount,
		DueDate:   payload.DueDate,
		Remarks:   payload.Remarks,
	}

	if _, err := h.repo.Create(c.Context(), fee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create fee"})
	}

	return c.Status(fiber.StatusCreated).JSON(fee)
}

// GetFeesForStudent lists a student's fees. Students only see their own.
func (h *FeeHandler) GetFeesForStudent(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	studentID, err := primitive.ObjectIDFromHex(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid student id"})
	}

	if claims.Role == "student" && claims.UserID != studentID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "students can only view their own fees"})
	}

	fees, err := h.repo.FindByStudent(c.Context(), studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load fees"})
	}

	return c.Status(fiber.StatusOK).JSON(fees)
}

func (h *FeeHandler) GetMyFees(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	fees, err := h.repo.FindByStudent(c.Context(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load fees"})
	}

	return c.Status(fiber.StatusOK).JSON(fees)
}

// PayFee records a payment against an unpaid fee. Paying an already-paid fee
// is reported as a conflict rather than silently overwriting the original
// payment.
func (h *FeeHandler) PayFee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid fee id"})
	}

	var payload models.FeePaymentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	result, err := h.repo.MarkPaid(c.Context(), id, payload.Method, payload.Remarks)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record payment"})
	}
	if result.MatchedCount == 0 {
		fee, findErr := h.repo.FindByID(c.Context(), id)
		if findErr == nil && fee != nil && fee.Status == models.FeeStatusPaid {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "fee is already paid"})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "fee not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Payment recorded successfully", "fee_id": id.Hex()})
}

func (h *FeeHandler) DeleteFee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid fee id"})
	}

	result, err := h.repo.DeleteByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete fee"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "fee not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Fee deleted successfully", "fee_id": id.Hex()})
}

package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"trs-service/internal/apperrors"
	"trs-service/internal/middleware"
	"trs-service/internal/models"
	"trs-service/internal/services"
)

type ChargeHandler struct {
	chargeService *services.ChargeService
}

func NewChargeHandler(chargeService *services.ChargeService) *ChargeHandler {
	return &ChargeHandler{chargeService: chargeService}
}

// GetCharges returns the caller's charges
// @Summary List charges
// @Description Get the authenticated user's charges, optionally within a date range
// @Tags charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date_range body models.GetChargesRequest false "Optional date range"
// @Success 200 {object} map[string]interface{} "Charges"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Router /charges/ [get]
func (h *ChargeHandler) GetCharges(c *fiber.Ctx) error {
	// The date range rides in an optional JSON body, so an absent or empty
	// body means "all charges".
	var req models.GetChargesRequest
	if len(bytes.TrimSpace(c.Body())) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("Invalid request format")
		}
	}

	charges, err := h.chargeService.GetCharges(middleware.UserID(c), req.DateRange)
	if err != nil {
		return err
	}
	if charges == nil {
		charges = []models.Charge{}
	}
	return c.JSON(fiber.Map{"charges": charges})
}

// CreateCharges inserts a batch of charges
// @Summary Create charges
// @Description Validate and atomically insert a batch of charges against owned projects
// @Tags charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param charges body models.CreateChargesRequest true "Proposed charges"
// @Success 201 {object} map[string]interface{} "Inserted charges"
// @Failure 400 {object} map[string]interface{} "Invalid charge data or occupied slot"
// @Failure 403 {object} map[string]interface{} "Project owned by another user"
// @Failure 404 {object} map[string]interface{} "Referenced project not found"
// @Router /charges/create [post]
func (h *ChargeHandler) CreateCharges(c *fiber.Ctx) error {
	var req models.CreateChargesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request format")
	}

	charges, err := h.chargeService.CreateCharges(middleware.UserID(c), req.Charges)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Charges created successfully.",
		"charges": charges,
	})
}

// UpdateCharges sets new hour values on a batch of charges
// @Summary Update charges
// @Description Atomically update the hours of a batch of owned charges
// @Tags charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param charges body models.UpdateChargesRequest true "Charge updates"
// @Success 200 {object} map[string]interface{} "Updated charges"
// @Failure 400 {object} map[string]interface{} "Invalid update data"
// @Failure 403 {object} map[string]interface{} "Charge owned by another user"
// @Failure 404 {object} map[string]interface{} "Charge not found"
// @Router /charges/update [put]
func (h *ChargeHandler) UpdateCharges(c *fiber.Ctx) error {
	var req models.UpdateChargesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request format")
	}

	charges, err := h.chargeService.UpdateCharges(middleware.UserID(c), req.Charges)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Charges updated successfully.",
		"charges": charges,
	})
}

// DeleteCharges removes a batch of charges
// @Summary Delete charges
// @Description Atomically delete a batch of owned charges by ID
// @Tags charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body models.DeleteChargesRequest true "Charge IDs"
// @Success 200 {object} map[string]interface{} "Deletion count"
// @Failure 400 {object} map[string]interface{} "No charges provided"
// @Failure 403 {object} map[string]interface{} "Charge owned by another user"
// @Failure 404 {object} map[string]interface{} "Charge not found"
// @Router /charges/delete [delete]
func (h *ChargeHandler) DeleteCharges(c *fiber.Ctx) error {
	var req models.DeleteChargesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request format")
	}

	deleted, err := h.chargeService.DeleteCharges(middleware.UserID(c), req.IDs)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Charges deleted successfully.",
		"deleted": deleted,
	})
}

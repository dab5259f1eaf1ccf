package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/civicgrid/complaints-platform/internal/api/dto"
	"github.com/civicgrid/complaints-platform/internal/service"
	apperrors "github.com/civicgrid/complaints-platform/pkg/util"
)

// ComplaintsHandler manages complaint intake endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Create POST /complaint.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(apperrors.MessageMissingFields)
	}

	complaint, err := h.service.Submit(c.UserContext(), service.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "Reclamo registrado",
		"complaintId": complaint.ComplaintID,
	})
}

// Get GET /complaint/:id.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	complaint, err := h.service.GetByComplaintID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewComplaintResponse(complaint))
}

// List GET /complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	limit := parseQueryInt(c.Query("limit"), 20)
	offset := parseQueryInt(c.Query("offset"), 0)

	complaints, err := h.service.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, dto.NewComplaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseQueryInt(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

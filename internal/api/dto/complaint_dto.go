package dto

import (
	"time"

	"github.com/civicgrid/complaints-platform/internal/domain"
)

// CreateComplaintRequest is the intake submission payload.
type CreateComplaintRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// ComplaintResponse is the public representation of a stored complaint.
type ComplaintResponse struct {
	ComplaintID string    `json:"complaintId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewComplaintResponse maps a domain complaint to its response form.
func NewComplaintResponse(complaint *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ComplaintID: complaint.ComplaintID,
		Name:        complaint.Name,
		Email:       complaint.Email,
		Description: complaint.Description,
		Department:  string(complaint.Department),
		Status:      string(complaint.Status),
		CreatedAt:   complaint.CreatedAt,
	}
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicgrid/complaints-platform/internal/classify"
	"github.com/civicgrid/complaints-platform/internal/domain"
	"github.com/civicgrid/complaints-platform/internal/mailer"
	"github.com/civicgrid/complaints-platform/internal/repository"
	apperrors "github.com/civicgrid/complaints-platform/pkg/util"
)

// ComplaintService coordinates the complaint intake workflow.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	mailer     mailer.Mailer
	logger     *zap.Logger
}

// ComplaintDependencies bundles collaborators for the service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Mailer        mailer.Mailer
	Logger        *zap.Logger
}

// SubmitInput describes a complaint submission payload.
type SubmitInput struct {
	Name        string
	Email       string
	Description string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		mailer:     deps.Mailer,
		logger:     deps.Logger,
	}
}

// Submit validates, classifies, persists and confirms a complaint. The
// record is saved before the confirmation email goes out; a mail failure
// surfaces as an error but does not roll the write back.
func (s *ComplaintService) Submit(ctx context.Context, input SubmitInput) (*domain.Complaint, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError(apperrors.MessageMissingFields)
	}

	complaint := &domain.Complaint{
		ComplaintID: uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Description: input.Description,
		Department:  classify.Classify(input.Description),
		Status:      domain.StatusPendiente,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		s.logger.Error("complaint save failed", zap.Error(err))
		return nil, apperrors.NewPersistenceError(err)
	}

	subject := fmt.Sprintf("Reclamo %s recibido", complaint.ComplaintID)
	body := fmt.Sprintf("Su reclamo ha sido asignado al departamento %s. ID: %s",
		complaint.Department, complaint.ComplaintID)
	if err := s.mailer.Send(complaint.Email, subject, body); err != nil {
		s.logger.Error("confirmation email failed",
			zap.String("complaint_id", complaint.ComplaintID),
			zap.Error(err))
		return nil, apperrors.NewNotificationError(err)
	}

	s.logger.Info("complaint registered",
		zap.String("complaint_id", complaint.ComplaintID),
		zap.String("department", string(complaint.Department)))
	return complaint, nil
}

// GetByComplaintID fetches a single complaint by its public identifier.
func (s *ComplaintService) GetByComplaintID(ctx context.Context, complaintID string) (*domain.Complaint, error) {
	if strings.TrimSpace(complaintID) == "" {
		return nil, apperrors.NewValidationError(apperrors.MessageMissingFields)
	}
	return s.complaints.GetByComplaintID(ctx, complaintID)
}

// List returns complaints newest first.
func (s *ComplaintService) List(ctx context.Context, limit, offset int64) ([]domain.Complaint, error) {
	return s.complaints.List(ctx, limit, offset)
}

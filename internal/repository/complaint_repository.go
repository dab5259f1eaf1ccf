package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civicgrid/complaints-platform/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByComplaintID(ctx context.Context, complaintID string) (*domain.Complaint, error)
	List(ctx context.Context, limit, offset int64) ([]domain.Complaint, error)
}

type complaintRepository struct {
	collection *mongo.Collection
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(collection *mongo.Collection) ComplaintRepository {
	return &complaintRepository{collection: collection}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	_, err := r.collection.InsertOne(ctx, complaint)
	return err
}

func (r *complaintRepository) GetByComplaintID(ctx context.Context, complaintID string) (*domain.Complaint, error) {
	var complaint domain.Complaint
	err := r.collection.FindOne(ctx, bson.M{"complaintId": complaintID}).Decode(&complaint)
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) List(ctx context.Context, limit, offset int64) ([]domain.Complaint, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	complaints := []domain.Complaint{}
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

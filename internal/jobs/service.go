package jobs

import (
	"context"

	"github.com/google/uuid"
)

// Service wraps job record business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new record for the given owner. Status defaults to pending.
func (s *Service) Create(ctx context.Context, userID string, req CreateJobRequest) (*Job, error) {
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	job := &Job{
		ID:        uuid.NewString(),
		Company:   req.Company,
		Position:  req.Position,
		Status:    status,
		CreatedBy: userID,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// List returns all records owned by userID.
func (s *Service) List(ctx context.Context, userID string) ([]Job, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns one record owned by userID.
func (s *Service) Get(ctx context.Context, userID, id string) (*Job, error) {
	return s.repo.Get(ctx, userID, id)
}

// Update applies the non-nil fields of req to a record owned by userID.
func (s *Service) Update(ctx context.Context, userID, id string, req UpdateJobRequest) (*Job, error) {
	job, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a record owned by userID.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

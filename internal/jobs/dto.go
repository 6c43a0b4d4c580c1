package jobs

// CreateJobRequest is the POST /jobs body.
type CreateJobRequest struct {
	Company  string `json:"company" validate:"required,max=50"`
	Position string `json:"position" validate:"required,max=100"`
	Status   Status `json:"status,omitempty" validate:"omitempty,oneof=pending interview declined"`
}

// UpdateJobRequest is the PATCH /jobs/{id} body. Nil fields are left as-is.
type UpdateJobRequest struct {
	Company  *string `json:"company,omitempty" validate:"omitempty,min=1,max=50"`
	Position *string `json:"position,omitempty" validate:"omitempty,min=1,max=100"`
	Status   *Status `json:"status,omitempty" validate:"omitempty,oneof=pending interview declined"`
}

// ListJobsResponse is the GET /jobs body.
type ListJobsResponse struct {
	Jobs  []Job `json:"jobs"`
	Count int   `json:"count"`
}

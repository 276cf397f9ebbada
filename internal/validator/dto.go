package validator

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateStreamRequest is the payload for PUT /api/user/stream.
type UpdateStreamRequest struct {
	Stream string `json:"stream" validate:"required,stream"`
}

// ProgressUpdateRequest is the payload for POST /api/progress. StepID is
// deliberately not checked against the roadmap's step list.
type ProgressUpdateRequest struct {
	CareerID  string `json:"career_id" validate:"required"`
	StepID    string `json:"step_id" validate:"required"`
	Completed bool   `json:"completed"`
}

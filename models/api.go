package models

// HealthCheckResponse returns the health check response, obviously
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// TokenResponse is returned by the anonymous sign-in endpoint
type TokenResponse struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
}

// CreateCaseRequest opens a new case with the creator seated in the chosen role
type CreateCaseRequest struct {
	Role string `json:"role"`
}

// ClaimRoleRequest seats the caller in an unclaimed role
type ClaimRoleRequest struct {
	Role string `json:"role"`
}

// StatementRequest carries a side's one-shot written statement
type StatementRequest struct {
	Content string `json:"content"`
}

// ObjectionRequest carries the one-time supplementary statement
type ObjectionRequest struct {
	Content string `json:"content"`
}

// FeedbackRequest records a like or dislike on the verdict
type FeedbackRequest struct {
	Like bool `json:"like"`
}

// CaseResponse wraps a case snapshot with the caller's derived lifecycle state
type CaseResponse struct {
	Case        *Case  `json:"case"`
	ViewerState string `json:"viewer_state,omitempty"`
}

// StatsResponse is the public satisfaction tally
type StatsResponse struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Rate     int   `json:"rate"`
}

package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// CountResponse represents a row count for admin dashboards
type CountResponse struct {
	Count int64 `json:"count"`
}

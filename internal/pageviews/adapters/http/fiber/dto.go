package fiber

// SinglePageViewRequest represents a single page view
// @Description Single page view DTO
type SinglePageViewRequest struct {
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
}

// MultiPageViewRequest maps page -> timestamp -> view count. Timestamps may
// use "_" instead of "T" as the date/time separator.
type MultiPageViewRequest map[string]map[string]int64

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_page_view"`
	Message string `json:"message" example:"invalid timestamp format"`
}

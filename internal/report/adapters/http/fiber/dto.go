package fiber

type ReportPointResponse struct {
	Hour  int   `json:"hour"`
	Views int64 `json:"views"`
}

type ReportResponse struct {
	Page  string                `json:"page"`
	Start string                `json:"start"`
	End   string                `json:"end"`
	Data  []ReportPointResponse `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_report_query"`
	Message string `json:"message" example:"page is required"`
}

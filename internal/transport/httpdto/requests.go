package httpdto

// CreateUserRequest is used for POST /api/users. Both form-encoded and JSON
// bodies are accepted.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// LogExerciseRequest is used for POST /api/users/:id/exercises. Date is an
// optional free-form string, validated downstream.
type LogExerciseRequest struct {
	Description string  `form:"description" json:"description"`
	Duration    float64 `form:"duration" json:"duration"`
	Date        string  `form:"date" json:"date"`
}

// FetchLogRequest holds query parameters for GET /api/users/:id/logs.
type FetchLogRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit int64  `form:"limit"`
}

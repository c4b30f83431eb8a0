package dto

// ListParams defines limit/offset query parameters shared by list endpoints.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

package dto

import "net/http"

// Result is the envelope every endpoint answers with. HTTP status mirrors Code.
type Result struct {
	Code    int         `json:"code" example:"200"`
	Message string      `json:"message" example:"Success"`
	Data    interface{} `json:"data"`
}

// Success wraps data in a 200 envelope.
func Success(data interface{}) Result {
	return Result{Code: http.StatusOK, Message: "Success", Data: data}
}

// Created wraps data in a 201 envelope.
func Created(data interface{}) Result {
	return Result{Code: http.StatusCreated, Message: "Created Success", Data: data}
}

// Error builds an envelope without data.
func Error(code int, message string) Result {
	return Result{Code: code, Message: message, Data: nil}
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

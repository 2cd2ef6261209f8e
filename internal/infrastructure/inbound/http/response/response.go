package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
)

const (
	MsgResourceNotFound = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternal         = "Internal server error"
	MsgBodyRequired     = "Request body is required"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgPostNotFound     = "Post not found"
	MsgCommentNotFound  = "Comment not found"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Pagination *model.Pagination `json:"pagination,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

func SuccessMessage(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func Page(w http.ResponseWriter, data any, pagination model.Pagination) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: &pagination})
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Error: message})
}

// Error maps a service error onto a status and a client-safe message.
// Anything unrecognised is logged in full and reported as a generic 500.
func Error(w http.ResponseWriter, log ports.Logger, err error) {
	var validationErr *custom_errors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		Fail(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, custom_errors.ErrInvalidBody):
		Fail(w, http.StatusBadRequest, MsgBodyRequired)
	case errors.Is(err, custom_errors.ErrInvalidJSON):
		Fail(w, http.StatusBadRequest, MsgInvalidJSON)
	case errors.Is(err, custom_errors.ErrPostNotFound):
		Fail(w, http.StatusNotFound, MsgPostNotFound)
	case errors.Is(err, custom_errors.ErrCommentNotFound):
		Fail(w, http.StatusNotFound, MsgCommentNotFound)
	default:
		log.Error("Unexpected error handling request", slog.String("error", err.Error()))
		Fail(w, http.StatusInternalServerError, MsgInternal)
	}
}

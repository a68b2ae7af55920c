// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every endpoint answers with an envelope: a JSON object carrying a
// "status" field plus one of "data", "message" or "notes". Each envelope
// shape has its own type below so handlers cannot misspell a key.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/studentinfo-api/internal/types"
)

// Status values carried by every envelope.
const (
	StatusOK      = "ok"
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ErrorResponse is the envelope of every non-2xx response.
//
//	{ "status": "error", "message": "Database error: ..." }
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageResponse is a success envelope whose data is a plain sentence.
//
//	{ "status": "success", "data": "Student added successfully.." }
type MessageResponse struct {
	Status string `json:"status"`
	Data   string `json:"data"`
}

// ListResponse is returned by GET /api/studentlist.
type ListResponse struct {
	Status string                  `json:"status"`
	Count  int                     `json:"count"`
	Notes  []types.StudentResponse `json:"notes"`
}

// NoteResponse is returned by GET /api/getbyid/{id}.
//
//	{ "status": "success", "data": { "note": { ... } } }
type NoteResponse struct {
	Status string   `json:"status"`
	Data   NoteData `json:"data"`
}

type NoteData struct {
	Note types.StudentResponse `json:"note"`
}

// WriteJSON writes data as JSON with the given HTTP status code.
// Header() → WriteHeader() → body, in that order: headers are locked
// once the status line is written.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func Success(data string) MessageResponse {
	return MessageResponse{Status: StatusSuccess, Data: data}
}

func Error(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}

func Fail(message string) ErrorResponse {
	return ErrorResponse{Status: StatusFail, Message: message}
}

// GeneralError wraps any Go error into an error envelope.
func GeneralError(err error) ErrorResponse {
	return Error(err.Error())
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts the field errors reported by go-playground/validator
// into a single human-readable envelope, e.g.
//
//	{ "status": "error", "message": "field name is required, field age is invalid" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "gte":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at least %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Error(strings.Join(errMessages, ", "))
}

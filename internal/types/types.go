// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"
)

// Student is a row of the studentinfo table.
//
// IsActive is stored as a small integer flag (0/1) and the two timestamps
// are filled in by the database, so they are nil only on a value that has
// not been read back from storage.
type Student struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Class     string     `json:"class"`
	IsActive  int8       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Age       int        `json:"age"`
}

// StudentResponse is the shape a student takes on the wire.
type StudentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Class     string    `json:"class"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Age       int       `json:"age"`
}

// ErrMissingTimestamp is returned by ToResponse for a record that never
// went through storage.
var ErrMissingTimestamp = errors.New("student record has no timestamps")

// ToResponse converts a stored record into its wire form.
func (s Student) ToResponse() (StudentResponse, error) {
	if s.CreatedAt == nil || s.UpdatedAt == nil {
		return StudentResponse{}, fmt.Errorf("student %d: %w", s.ID, ErrMissingTimestamp)
	}

	return StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Class:     s.Class,
		IsActive:  s.IsActive != 0,
		CreatedAt: *s.CreatedAt,
		UpdatedAt: *s.UpdatedAt,
		Age:       s.Age,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Request bodies
//
// validate:"..." tags are checked by go-playground/validator in the
// handlers. Fields are pointers so "required" only demands that the key is
// present: "" and 0 are accepted, a missing key is not.
// ─────────────────────────────────────────────────────────────────────────────

// AddStudentRequest is the body of POST /api/addstudent.
type AddStudentRequest struct {
	Name  *string `json:"name"  validate:"required"`
	Class *string `json:"class" validate:"required"`
	Age   *int    `json:"age"   validate:"required,gte=0"`
}

// EditStudentRequest is the body of PATCH /api/update/{id}.
type EditStudentRequest struct {
	Name     *string    `json:"name"  validate:"required"`
	Class    *string    `json:"class" validate:"required"`
	IsActive ActiveFlag `json:"is_active"`
}

// ActiveFlag is the is_active column as sent by clients. It accepts both
// JSON booleans and the 0/1 integers the column stores.
type ActiveFlag int8

func (f *ActiveFlag) UnmarshalJSON(b []byte) error {
	switch s := string(bytes.TrimSpace(b)); s {
	case "true", "1":
		*f = 1
	case "false", "0", "null":
		*f = 0
	default:
		return fmt.Errorf("is_active must be true, false, 0 or 1, got %s", s)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Pagination
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// FilterOptions are the query parameters of GET /api/studentlist.
type FilterOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize clamps the options into a usable range: page is at least 1 and
// limit falls back to DefaultLimit when unset and is capped at MaxLimit.
func (o FilterOptions) Normalize() FilterOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	// (Page-1)*Limit must fit in an int; a huge page is just past the end.
	if o.Page-1 > math.MaxInt/o.Limit {
		o.Page = math.MaxInt/o.Limit + 1
	}
	return o
}

// Offset is the number of rows skipped before the requested page.
func (o FilterOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

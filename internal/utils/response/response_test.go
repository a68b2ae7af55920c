package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteJSON(rec, http.StatusNotFound, Fail("Student with ID: 3 not found")); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "fail" || body["message"] != "Student with ID: 3 not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGeneralError(t *testing.T) {
	got := GeneralError(errors.New("boom"))
	if got.Status != StatusError || got.Message != "boom" {
		t.Fatalf("unexpected envelope: %+v", got)
	}
}

func TestValidationError(t *testing.T) {
	type body struct {
		Name string `validate:"required"`
		Age  int    `validate:"gte=0"`
		Code string `validate:"len=2"`
	}

	err := validator.New().Struct(body{Age: -1, Code: "abc"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}

	got := ValidationError(verrs)
	want := "field Name is required, field Age must be at least 0, field Code is invalid"
	if got.Status != StatusError || got.Message != want {
		t.Fatalf("got %+v, want message %q", got, want)
	}
}

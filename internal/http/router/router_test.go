package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aanand-mishra/studentinfo-api/internal/types"
)

// nopStorage answers every call with an empty result; the tests here only
// care about which requests reach a handler.
type nopStorage struct{}

func (nopStorage) ListStudents(context.Context, int, int) ([]types.Student, error) {
	return []types.Student{}, nil
}
func (nopStorage) InsertStudent(context.Context, string, string, int) error { return nil }
func (nopStorage) GetStudentByID(context.Context, int64) (types.Student, error) {
	return types.Student{}, nil
}
func (nopStorage) UpdateStudent(context.Context, int64, string, string, int8) (int64, error) {
	return 0, nil
}
func (nopStorage) DeleteStudent(context.Context, int64) (int64, error) { return 0, nil }

func TestRouter_Dispatch(t *testing.T) {
	h := New(nopStorage{}, []string{"*"})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/studentlist", "", http.StatusOK},
		{http.MethodPost, "/api/addstudent", `{"name":"Ann","class":"5A","age":10}`, http.StatusOK},
		{http.MethodPatch, "/api/update/1", `{"name":"Ann","class":"5A"}`, http.StatusNotFound}, // handler: zero rows
		{http.MethodDelete, "/api/delete/1", "", http.StatusNotFound},                          // handler: zero rows
		{http.MethodGet, "/api/getbyid/abc", "", http.StatusBadRequest},
		{http.MethodPost, "/api/addstudent", "", http.StatusBadRequest}, // handler: empty body
		{http.MethodPost, "/api/studentlist", "", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/update/1", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/students", "", http.StatusNotFound},
		{http.MethodGet, "/api/getbyid", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
		if rec.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	h := New(nopStorage{}, []string{"*"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/studentlist", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

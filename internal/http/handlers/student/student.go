// Package student contains all HTTP handlers related to the Student resource.
//
// Every handler is built by a factory that receives its dependencies
// (storage) and returns the http.HandlerFunc the router needs:
//
//	r.HandleFunc("/api/addstudent", student.New(store))
//
// New(store) runs once at startup; the returned closure runs on every
// request.
package student

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/aanand-mishra/studentinfo-api/internal/storage"
	"github.com/aanand-mishra/studentinfo-api/internal/types"
	"github.com/aanand-mishra/studentinfo-api/internal/utils/response"
)

const (
	msgAdded   = "Student added successfully.."
	msgUpdated = "Student details updated successfully."
	msgRemoved = "Student details removed successfully."
)

// validate reports fields by their JSON name so messages match the body
// the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles GET /api/studentlist?page=&limit=
//
// Success response (200 OK):
//
//	{ "status": "ok", "count": 2, "notes": [ { "id": 1, ... }, { "id": 2, ... } ] }
//
// Error responses:
//
//	400 Bad Request  — page or limit is not an integer
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func List(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseFilterOptions(r.URL.Query())
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		opts = opts.Normalize()

		slog.Info("listing students",
			slog.Int("page", opts.Page),
			slog.Int("limit", opts.Limit))

		students, err := store.ListStudents(r.Context(), opts.Limit, opts.Offset())
		if err != nil {
			slog.Error("error listing students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Error(fmt.Sprintf("Database error: %s", err)))
			return
		}

		notes := make([]types.StudentResponse, 0, len(students))
		for _, s := range students {
			note, err := s.ToResponse()
			if err != nil {
				slog.Error("error converting student", slog.String("error", err.Error()))
				response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
				return
			}
			notes = append(notes, note)
		}

		response.WriteJSON(w, http.StatusOK, response.ListResponse{
			Status: response.StatusOK,
			Count:  len(notes),
			Notes:  notes,
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/addstudent
//
// Request body (JSON):
//
//	{ "name": "Ann", "class": "5A", "age": 10 }
//
// Success response (200 OK):
//
//	{ "status": "success", "data": "Student added successfully.." }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var req types.AddStudentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := store.InsertStudent(r.Context(), *req.Name, *req.Class, *req.Age); err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Error(fmt.Sprintf("Database error: %s", err)))
			return
		}

		slog.Info("student created", slog.String("name", *req.Name))
		response.WriteJSON(w, http.StatusOK, response.Success(msgAdded))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/getbyid/{id}
//
// Success response (200 OK):
//
//	{ "status": "success", "data": { "note": { "id": 1, "name": "Ann", ... } } }
//
// Error responses:
//
//	400 Bad Request  — id is not a valid integer
//	404 Not Found    — { "status": "fail", ... }
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, err := store.GetStudentByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.Fail(fmt.Sprintf("Student with ID: %d not found", id)))
				return
			}
			slog.Error("error getting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		note, err := student.ToResponse()
		if err != nil {
			slog.Error("error converting student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.NoteResponse{
			Status: response.StatusSuccess,
			Data:   response.NoteData{Note: note},
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PATCH /api/update/{id}
// Changes name, class and is_active of an existing student.
//
// Request body (JSON), is_active may be a boolean or 0/1:
//
//	{ "name": "Ann B", "class": "5B", "is_active": true }
//
// The row is read first so a missing student is reported before any write.
// The read and the write are not one transaction: a delete that lands in
// between shows up as zero rows affected and is answered with 404 too.
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("updating a student", slog.Int64("id", id))

		var req types.EditStudentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if _, err := store.GetStudentByID(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.Error(fmt.Sprintf("Student with ID: %d not found", id)))
				return
			}
			slog.Error("error getting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		affected, err := store.UpdateStudent(r.Context(), id, *req.Name, *req.Class, int8(req.IsActive))
		if err != nil {
			slog.Error("error updating student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		if affected == 0 {
			response.WriteJSON(w, http.StatusNotFound,
				response.Error(fmt.Sprintf("Note with ID: %d not found", id)))
			return
		}

		slog.Info("student updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, response.Success(msgUpdated))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/delete/{id}
// Permanently removes a student record from the database.
// ─────────────────────────────────────────────────────────────────────────────
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		affected, err := store.DeleteStudent(r.Context(), id)
		if err != nil {
			slog.Error("error deleting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		if affected == 0 {
			response.WriteJSON(w, http.StatusNotFound,
				response.Error(fmt.Sprintf("Note with ID: %d not found", id)))
			return
		}

		slog.Info("student deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, response.Success(msgRemoved))
	}
}

// pathID parses the {id} route variable, answering 400 itself when it is
// not an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.Error("invalid id: must be an integer"))
		return 0, false
	}
	return id, true
}

// decodeBody decodes and validates a JSON request body into dst, answering
// 400 itself on failure. The body must hold exactly one JSON value.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest, response.Error("request body is empty"))
		return false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.Error("request body must contain a single JSON object"))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verrs))
			return false
		}
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	return true
}

// parseFilterOptions reads page and limit; absent values stay zero and are
// filled in by FilterOptions.Normalize.
func parseFilterOptions(q url.Values) (types.FilterOptions, error) {
	var opts types.FilterOptions

	for _, p := range []struct {
		key string
		dst *int
	}{
		{"page", &opts.Page},
		{"limit", &opts.Limit},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return types.FilterOptions{}, fmt.Errorf("invalid %s: must be an integer", p.key)
		}
		*p.dst = n
	}

	return opts, nil
}

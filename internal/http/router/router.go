// Package router maps method+path to the student handlers.
//
// Route table:
//
//	POST   /api/addstudent    → add a student
//	GET    /api/studentlist   → list students, paginated by ?page=&limit=
//	GET    /api/getbyid/{id}  → get one student
//	PATCH  /api/update/{id}   → change name, class and is_active
//	DELETE /api/delete/{id}   → remove a student
//
// An unknown path gets mux's default 404, a known path with the wrong
// method its default 405.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aanand-mishra/studentinfo-api/internal/http/handlers/student"
	"github.com/aanand-mishra/studentinfo-api/internal/http/middleware"
	"github.com/aanand-mishra/studentinfo-api/internal/storage"
)

// New builds the application handler: the route table wrapped in request
// logging and CORS.
func New(store storage.Storage, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/addstudent", student.New(store)).Methods(http.MethodPost)
	r.HandleFunc("/api/studentlist", student.List(store)).Methods(http.MethodGet)
	r.HandleFunc("/api/getbyid/{id}", student.GetByID(store)).Methods(http.MethodGet)
	r.HandleFunc("/api/update/{id}", student.Update(store)).Methods(http.MethodPatch)
	r.HandleFunc("/api/delete/{id}", student.Delete(store)).Methods(http.MethodDelete)

	// CORS is outermost so preflight requests never reach the route table.
	return middleware.CORS(allowedOrigins)(middleware.RequestLogger(r))
}

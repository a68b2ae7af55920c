// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// Handlers depend only on this interface, so the SQLite and MySQL
// backends are interchangeable and tests can pass a fake.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/studentinfo-api/internal/types"
)

// ErrNotFound is returned when no student row matches the requested id.
var ErrNotFound = errors.New("student not found")

// Storage is the database contract for the studentinfo table.
type Storage interface {
	// ListStudents returns at most limit rows, ordered by id, after
	// skipping offset rows. An empty page is an empty slice, not an error.
	ListStudents(ctx context.Context, limit, offset int) ([]types.Student, error)

	// InsertStudent adds a row. is_active and both timestamps are left
	// to the column defaults.
	InsertStudent(ctx context.Context, name, class string, age int) error

	// GetStudentByID returns ErrNotFound if the row does not exist.
	GetStudentByID(ctx context.Context, id int64) (types.Student, error)

	// UpdateStudent sets name, class and is_active and reports how many
	// rows were affected.
	UpdateStudent(ctx context.Context, id int64, name, class string, isActive int8) (int64, error)

	// DeleteStudent reports how many rows were removed.
	DeleteStudent(ctx context.Context, id int64) (int64, error)
}

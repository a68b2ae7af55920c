// Package sqlstore implements storage.Storage on top of database/sql.
//
// The queries use positional ? placeholders, which both the SQLite and the
// MySQL drivers understand, so one Store serves every backend. The backend
// packages only differ in how they open the pool and which migrations they
// apply.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/studentinfo-api/internal/storage"
	"github.com/aanand-mishra/studentinfo-api/internal/types"
)

const studentColumns = "id, name, class, is_active, created_at, updated_at, age"

// Store holds the *sql.DB connection pool. A single *sql.DB is safe for
// concurrent use by multiple goroutines.
type Store struct {
	Db *sql.DB
}

var _ storage.Storage = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{Db: db}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// ListStudents returns one page of students in ascending id order.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) ListStudents(ctx context.Context, limit, offset int) ([]types.Student, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT "+studentColumns+" FROM studentinfo ORDER BY id LIMIT ? OFFSET ?",
	)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: query: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty page encodes as [] rather than null.
	students := make([]types.Student, 0)

	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("ListStudents: scan row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudents: rows iteration: %w", err)
	}

	return students, nil
}

// InsertStudent adds a new row. The generated id is not read back.
func (s *Store) InsertStudent(ctx context.Context, name, class string, age int) error {
	stmt, err := s.Db.PrepareContext(ctx,
		"INSERT INTO studentinfo (name, class, age) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("InsertStudent: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, name, class, age); err != nil {
		return fmt.Errorf("InsertStudent: exec: %w", err)
	}

	return nil
}

// GetStudentByID fetches exactly one student row matched by primary key.
// A missing row is reported as storage.ErrNotFound so handlers can tell it
// apart from a database failure with errors.Is.
func (s *Store) GetStudentByID(ctx context.Context, id int64) (types.Student, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT "+studentColumns+" FROM studentinfo WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	student, err := scanStudent(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("GetStudentByID %d: %w", id, storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// UpdateStudent changes name, class and is_active of one row and touches
// updated_at. The returned count is 0 when the row does not exist.
func (s *Store) UpdateStudent(ctx context.Context, id int64, name, class string, isActive int8) (int64, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"UPDATE studentinfo SET name = ?, class = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
	)
	if err != nil {
		return 0, fmt.Errorf("UpdateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	// Argument order matches the ? order: name, class, is_active, id
	result, err := stmt.ExecContext(ctx, name, class, isActive, id)
	if err != nil {
		return 0, fmt.Errorf("UpdateStudent: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("UpdateStudent: rows affected: %w", err)
	}

	return affected, nil
}

// DeleteStudent removes a student row by primary key.
func (s *Store) DeleteStudent(ctx context.Context, id int64) (int64, error) {
	stmt, err := s.Db.PrepareContext(ctx, "DELETE FROM studentinfo WHERE id = ?")
	if err != nil {
		return 0, fmt.Errorf("DeleteStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("DeleteStudent: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteStudent: rows affected: %w", err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent reads the columns listed in studentColumns, in that order.
func scanStudent(row rowScanner) (types.Student, error) {
	var (
		student            types.Student
		createdAt, updated sql.NullTime
	)

	if err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Class,
		&student.IsActive,
		&createdAt,
		&updated,
		&student.Age,
	); err != nil {
		return types.Student{}, err
	}

	if createdAt.Valid {
		student.CreatedAt = &createdAt.Time
	}
	if updated.Valid {
		student.UpdatedAt = &updated.Time
	}

	return student, nil
}

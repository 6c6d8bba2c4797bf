package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libbook/seat-reservation/internal/model"
)

const userColumns = "id, name, email, password, role, student_id, department, year_section, mobile, is_blocked"

// UserRepo provides methods to work with users in the database.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// List returns every user record, in no particular order.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role,
			&u.StudentID, &u.Department, &u.YearSection, &u.Mobile, &u.IsBlocked); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindByID fetches a user by id, or ErrUserNotFound.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role,
			&u.StudentID, &u.Department, &u.YearSection, &u.Mobile, &u.IsBlocked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Upsert inserts the user or replaces all fields of an existing row
// with the same id.  The statement is atomic per key.
func (r *UserRepo) Upsert(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (` + userColumns + `)
	           VALUES (?,?,?,?,?,?,?,?,?,?)
	           ON DUPLICATE KEY UPDATE
	             name = VALUES(name), email = VALUES(email), password = VALUES(password),
	             role = VALUES(role), student_id = VALUES(student_id), department = VALUES(department),
	             year_section = VALUES(year_section), mobile = VALUES(mobile), is_blocked = VALUES(is_blocked)`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email, u.Password, u.Role,
		u.StudentID, u.Department, u.YearSection, u.Mobile, u.IsBlocked)
	return err
}

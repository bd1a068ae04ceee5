package sqlite

import (
	"context"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const userCols = `id, username, password, email, name, bio, location, phone, github, linkedin, website, created_at, updated_at`

// userPatchCols deliberately carries no password entry: the generic patch
// path must never change a stored password.
var userPatchCols = map[string]string{
	"username": "username",
	"email":    "email",
	"name":     "name",
	"bio":      "bio",
	"location": "location",
	"phone":    "phone",
	"github":   "github",
	"linkedin": "linkedin",
	"website":  "website",
}

func scanUser(s rowScanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Name, &u.Bio, &u.Location, &u.Phone, &u.Github, &u.Linkedin, &u.Website, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *SQLiteRepo) CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error) {
	if in == nil {
		return nil, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (username, password, email, name, bio, location, phone, github, linkedin, website) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Username, in.Password, in.Email, in.Name, in.Bio, in.Location, in.Phone, in.Github, in.Linkedin, in.Website)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetUser(ctx, id)
}

func (r *SQLiteRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return getRow(ctx, r.conn, `SELECT `+userCols+` FROM users WHERE id = ?`, scanUser, id)
}

func (r *SQLiteRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return getRow(ctx, r.conn, `SELECT `+userCols+` FROM users WHERE username = ?`, scanUser, username)
}

func (r *SQLiteRepo) PatchUser(ctx context.Context, id int64, fields map[string]any) (*models.User, error) {
	if err := r.patchRow(ctx, "users", id, fields, userPatchCols); err != nil {
		return nil, err
	}
	return r.GetUser(ctx, id)
}

func (r *SQLiteRepo) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "users", id)
}

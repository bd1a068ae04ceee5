package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const projectCols = `id, user_id, name, description, technologies, github_url, demo_url, image, is_featured, created_at, updated_at`

var projectPatchCols = map[string]string{
	"name":         "name",
	"description":  "description",
	"technologies": "technologies",
	"githubUrl":    "github_url",
	"demoUrl":      "demo_url",
	"image":        "image",
	"isFeatured":   "is_featured",
}

func scanProject(s rowScanner) (models.Project, error) {
	var p models.Project
	var featured int64
	var tech string
	if err := s.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &tech, &p.GithubURL, &p.DemoURL, &p.Image, &featured, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	p.IsFeatured = featured != 0
	if err := json.Unmarshal([]byte(tech), &p.Technologies); err != nil {
		return p, fmt.Errorf("decode project technologies: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepo) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	return listRows(ctx, r.conn, `SELECT `+projectCols+` FROM projects WHERE user_id = ?`, scanProject, userID)
}

// ListFeaturedProjects filters in the store, not as a post-filter.
func (r *SQLiteRepo) ListFeaturedProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	return listRows(ctx, r.conn, `SELECT `+projectCols+` FROM projects WHERE user_id = ? AND is_featured = 1`, scanProject, userID)
}

func (r *SQLiteRepo) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return getRow(ctx, r.conn, `SELECT `+projectCols+` FROM projects WHERE id = ?`, scanProject, id)
}

func (r *SQLiteRepo) CreateProject(ctx context.Context, in *models.InsertProject) (*models.Project, error) {
	if in == nil {
		return nil, fmt.Errorf("project is nil")
	}

	tech := "[]"
	if in.Technologies != nil {
		b, err := json.Marshal(in.Technologies)
		if err != nil {
			return nil, fmt.Errorf("encode project technologies: %w", err)
		}
		tech = string(b)
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO projects (user_id, name, description, technologies, github_url, demo_url, image, is_featured) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Name, in.Description, tech, in.GithubURL, in.DemoURL, in.Image, b2i(in.IsFeatured))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetProject(ctx, id)
}

func (r *SQLiteRepo) PatchProject(ctx context.Context, id int64, fields map[string]any) (*models.Project, error) {
	if err := r.patchRow(ctx, "projects", id, fields, projectPatchCols); err != nil {
		return nil, err
	}
	return r.GetProject(ctx, id)
}

func (r *SQLiteRepo) DeleteProject(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "projects", id)
}

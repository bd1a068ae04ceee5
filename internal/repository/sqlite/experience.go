package sqlite

import (
	"context"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const experienceCols = `id, user_id, company, role, start_date, end_date, is_current, description, created_at, updated_at`

var experiencePatchCols = map[string]string{
	"company":     "company",
	"role":        "role",
	"startDate":   "start_date",
	"endDate":     "end_date",
	"isCurrent":   "is_current",
	"description": "description",
}

func scanExperience(s rowScanner) (models.Experience, error) {
	var e models.Experience
	var current int64
	if err := s.Scan(&e.ID, &e.UserID, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &current, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return e, err
	}
	e.IsCurrent = current != 0
	return e, nil
}

func (r *SQLiteRepo) ListExperiences(ctx context.Context, userID int64) ([]models.Experience, error) {
	return listRows(ctx, r.conn, `SELECT `+experienceCols+` FROM experiences WHERE user_id = ?`, scanExperience, userID)
}

func (r *SQLiteRepo) GetExperience(ctx context.Context, id int64) (*models.Experience, error) {
	return getRow(ctx, r.conn, `SELECT `+experienceCols+` FROM experiences WHERE id = ?`, scanExperience, id)
}

func (r *SQLiteRepo) CreateExperience(ctx context.Context, in *models.InsertExperience) (*models.Experience, error) {
	if in == nil {
		return nil, fmt.Errorf("experience is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO experiences (user_id, company, role, start_date, end_date, is_current, description) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Company, in.Role, in.StartDate, in.EndDate, b2i(in.IsCurrent), in.Description)
	if err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetExperience(ctx, id)
}

func (r *SQLiteRepo) PatchExperience(ctx context.Context, id int64, fields map[string]any) (*models.Experience, error) {
	if err := r.patchRow(ctx, "experiences", id, fields, experiencePatchCols); err != nil {
		return nil, err
	}
	return r.GetExperience(ctx, id)
}

func (r *SQLiteRepo) DeleteExperience(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "experiences", id)
}

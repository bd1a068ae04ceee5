package sqlite

import (
	"context"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const skillCols = `id, user_id, name, category, level, created_at, updated_at`

var skillPatchCols = map[string]string{
	"name":     "name",
	"category": "category",
	"level":    "level",
}

func scanSkill(s rowScanner) (models.Skill, error) {
	var sk models.Skill
	err := s.Scan(&sk.ID, &sk.UserID, &sk.Name, &sk.Category, &sk.Level, &sk.CreatedAt, &sk.UpdatedAt)
	return sk, err
}

func (r *SQLiteRepo) ListSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return listRows(ctx, r.conn, `SELECT `+skillCols+` FROM skills WHERE user_id = ?`, scanSkill, userID)
}

func (r *SQLiteRepo) GetSkill(ctx context.Context, id int64) (*models.Skill, error) {
	return getRow(ctx, r.conn, `SELECT `+skillCols+` FROM skills WHERE id = ?`, scanSkill, id)
}

func (r *SQLiteRepo) CreateSkill(ctx context.Context, in *models.InsertSkill) (*models.Skill, error) {
	if in == nil {
		return nil, fmt.Errorf("skill is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO skills (user_id, name, category, level) VALUES (?, ?, ?, ?)`,
		in.UserID, in.Name, in.Category, in.Level)
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetSkill(ctx, id)
}

func (r *SQLiteRepo) PatchSkill(ctx context.Context, id int64, fields map[string]any) (*models.Skill, error) {
	if err := r.patchRow(ctx, "skills", id, fields, skillPatchCols); err != nil {
		return nil, err
	}
	return r.GetSkill(ctx, id)
}

func (r *SQLiteRepo) DeleteSkill(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "skills", id)
}

package sqlite

import (
	"context"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const educationCols = `id, user_id, institution, degree, field_of_study, start_date, end_date, is_current, description, created_at, updated_at`

var educationPatchCols = map[string]string{
	"institution":  "institution",
	"degree":       "degree",
	"fieldOfStudy": "field_of_study",
	"startDate":    "start_date",
	"endDate":      "end_date",
	"isCurrent":    "is_current",
	"description":  "description",
}

func scanEducation(s rowScanner) (models.Education, error) {
	var e models.Education
	var current int64
	if err := s.Scan(&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate, &current, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return e, err
	}
	e.IsCurrent = current != 0
	return e, nil
}

func (r *SQLiteRepo) ListEducations(ctx context.Context, userID int64) ([]models.Education, error) {
	return listRows(ctx, r.conn, `SELECT `+educationCols+` FROM educations WHERE user_id = ?`, scanEducation, userID)
}

func (r *SQLiteRepo) GetEducation(ctx context.Context, id int64) (*models.Education, error) {
	return getRow(ctx, r.conn, `SELECT `+educationCols+` FROM educations WHERE id = ?`, scanEducation, id)
}

func (r *SQLiteRepo) CreateEducation(ctx context.Context, in *models.InsertEducation) (*models.Education, error) {
	if in == nil {
		return nil, fmt.Errorf("education is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO educations (user_id, institution, degree, field_of_study, start_date, end_date, is_current, description) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Institution, in.Degree, in.FieldOfStudy, in.StartDate, in.EndDate, b2i(in.IsCurrent), in.Description)
	if err != nil {
		return nil, fmt.Errorf("create education: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetEducation(ctx, id)
}

func (r *SQLiteRepo) PatchEducation(ctx context.Context, id int64, fields map[string]any) (*models.Education, error) {
	if err := r.patchRow(ctx, "educations", id, fields, educationPatchCols); err != nil {
		return nil, err
	}
	return r.GetEducation(ctx, id)
}

func (r *SQLiteRepo) DeleteEducation(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "educations", id)
}

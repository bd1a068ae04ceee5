package sqlite

import (
	"context"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const certificationCols = `id, user_id, name, issuer, issue_date, category, description, created_at, updated_at`

var certificationPatchCols = map[string]string{
	"name":        "name",
	"issuer":      "issuer",
	"issueDate":   "issue_date",
	"category":    "category",
	"description": "description",
}

func scanCertification(s rowScanner) (models.Certification, error) {
	var c models.Certification
	err := s.Scan(&c.ID, &c.UserID, &c.Name, &c.Issuer, &c.IssueDate, &c.Category, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *SQLiteRepo) ListCertifications(ctx context.Context, userID int64) ([]models.Certification, error) {
	return listRows(ctx, r.conn, `SELECT `+certificationCols+` FROM certifications WHERE user_id = ?`, scanCertification, userID)
}

func (r *SQLiteRepo) GetCertification(ctx context.Context, id int64) (*models.Certification, error) {
	return getRow(ctx, r.conn, `SELECT `+certificationCols+` FROM certifications WHERE id = ?`, scanCertification, id)
}

func (r *SQLiteRepo) CreateCertification(ctx context.Context, in *models.InsertCertification) (*models.Certification, error) {
	if in == nil {
		return nil, fmt.Errorf("certification is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO certifications (user_id, name, issuer, issue_date, category, description) VALUES (?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Name, in.Issuer, in.IssueDate, in.Category, in.Description)
	if err != nil {
		return nil, fmt.Errorf("create certification: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetCertification(ctx, id)
}

func (r *SQLiteRepo) PatchCertification(ctx context.Context, id int64, fields map[string]any) (*models.Certification, error) {
	if err := r.patchRow(ctx, "certifications", id, fields, certificationPatchCols); err != nil {
		return nil, err
	}
	return r.GetCertification(ctx, id)
}

func (r *SQLiteRepo) DeleteCertification(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "certifications", id)
}

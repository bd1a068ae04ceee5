package sqlite

import (
	"context"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const portfolioCols = `id, user_id, title, description, is_public, created_at, updated_at`

var portfolioPatchCols = map[string]string{
	"title":       "title",
	"description": "description",
	"isPublic":    "is_public",
}

func scanPortfolio(s rowScanner) (models.Portfolio, error) {
	var p models.Portfolio
	var public int64
	if err := s.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &public, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	p.IsPublic = public != 0
	return p, nil
}

func (r *SQLiteRepo) ListPortfolios(ctx context.Context, userID int64) ([]models.Portfolio, error) {
	return listRows(ctx, r.conn, `SELECT `+portfolioCols+` FROM portfolios WHERE user_id = ? ORDER BY updated_at DESC`, scanPortfolio, userID)
}

func (r *SQLiteRepo) GetPortfolio(ctx context.Context, id int64) (*models.Portfolio, error) {
	return getRow(ctx, r.conn, `SELECT `+portfolioCols+` FROM portfolios WHERE id = ?`, scanPortfolio, id)
}

func (r *SQLiteRepo) CreatePortfolio(ctx context.Context, in *models.InsertPortfolio) (*models.Portfolio, error) {
	if in == nil {
		return nil, fmt.Errorf("portfolio is nil")
	}

	// isPublic defaults to true when the client leaves it out
	public := int64(1)
	if in.IsPublic != nil {
		public = b2i(*in.IsPublic)
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO portfolios (user_id, title, description, is_public) VALUES (?, ?, ?, ?)`,
		in.UserID, in.Title, in.Description, public)
	if err != nil {
		return nil, fmt.Errorf("create portfolio: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetPortfolio(ctx, id)
}

func (r *SQLiteRepo) PatchPortfolio(ctx context.Context, id int64, fields map[string]any) (*models.Portfolio, error) {
	if err := r.patchRow(ctx, "portfolios", id, fields, portfolioPatchCols); err != nil {
		return nil, err
	}
	return r.GetPortfolio(ctx, id)
}

func (r *SQLiteRepo) DeletePortfolio(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "portfolios", id)
}

package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/craftfolio/craftfolio/pkg/models"
)

const sectionCols = `id, portfolio_id, section_type, title, order_index, is_visible, settings, created_at, updated_at`

var sectionPatchCols = map[string]string{
	"sectionType": "section_type",
	"title":       "title",
	"orderIndex":  "order_index",
	"isVisible":   "is_visible",
	"settings":    "settings",
}

func scanSection(s rowScanner) (models.PortfolioSection, error) {
	var sec models.PortfolioSection
	var visible int64
	var settings string
	if err := s.Scan(&sec.ID, &sec.PortfolioID, &sec.SectionType, &sec.Title, &sec.OrderIndex, &visible, &settings, &sec.CreatedAt, &sec.UpdatedAt); err != nil {
		return sec, err
	}
	sec.IsVisible = visible != 0
	if err := json.Unmarshal([]byte(settings), &sec.Settings); err != nil {
		return sec, fmt.Errorf("decode section settings: %w", err)
	}
	return sec, nil
}

func (r *SQLiteRepo) ListSections(ctx context.Context, portfolioID int64) ([]models.PortfolioSection, error) {
	return listRows(ctx, r.conn, `SELECT `+sectionCols+` FROM portfolio_sections WHERE portfolio_id = ? ORDER BY order_index`, scanSection, portfolioID)
}

func (r *SQLiteRepo) GetSection(ctx context.Context, id int64) (*models.PortfolioSection, error) {
	return getRow(ctx, r.conn, `SELECT `+sectionCols+` FROM portfolio_sections WHERE id = ?`, scanSection, id)
}

func (r *SQLiteRepo) CreateSection(ctx context.Context, in *models.InsertPortfolioSection) (*models.PortfolioSection, error) {
	if in == nil {
		return nil, fmt.Errorf("section is nil")
	}

	visible := int64(1)
	if in.IsVisible != nil {
		visible = b2i(*in.IsVisible)
	}
	settings := "{}"
	if in.Settings != nil {
		b, err := json.Marshal(in.Settings)
		if err != nil {
			return nil, fmt.Errorf("encode section settings: %w", err)
		}
		settings = string(b)
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO portfolio_sections (portfolio_id, section_type, title, order_index, is_visible, settings) VALUES (?, ?, ?, ?, ?, ?)`,
		in.PortfolioID, in.SectionType, in.Title, in.OrderIndex, visible, settings)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetSection(ctx, id)
}

func (r *SQLiteRepo) PatchSection(ctx context.Context, id int64, fields map[string]any) (*models.PortfolioSection, error) {
	if err := r.patchRow(ctx, "portfolio_sections", id, fields, sectionPatchCols); err != nil {
		return nil, err
	}
	return r.GetSection(ctx, id)
}

func (r *SQLiteRepo) DeleteSection(ctx context.Context, id int64) (bool, error) {
	return r.deleteFrom(ctx, "portfolio_sections", id)
}

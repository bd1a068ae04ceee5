package sqlite

import (
	"io"

	"log/slog"

	"github.com/craftfolio/craftfolio/internal/db"
	"github.com/craftfolio/craftfolio/pkg/repository"
)

// SQLiteRepo implements the repository interfaces using the internal DB
// wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.PortfolioRepo = (*SQLiteRepo)(nil)
var _ repository.SectionRepo = (*SQLiteRepo)(nil)
var _ repository.SkillRepo = (*SQLiteRepo)(nil)
var _ repository.ProjectRepo = (*SQLiteRepo)(nil)
var _ repository.ExperienceRepo = (*SQLiteRepo)(nil)
var _ repository.EducationRepo = (*SQLiteRepo)(nil)
var _ repository.CertificationRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

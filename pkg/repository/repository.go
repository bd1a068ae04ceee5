package repository

import (
	"context"

	"github.com/craftfolio/craftfolio/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Conventions shared by every implementation:
//   - "absent" is (nil, nil): a lookup that matched no row is not an error.
//   - store failures are returned as non-nil errors; callers decide how to
//     surface them (the route layer maps them to 503).
//   - Patch applies a partial set of fields keyed by JSON field name; unknown
//     or non-patchable fields are ignored.
//   - Delete reports whether a row was removed. Deleting an id that does not
//     exist returns (false, nil).

type UserRepo interface {
	CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	PatchUser(ctx context.Context, id int64, fields map[string]any) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

type PortfolioRepo interface {
	ListPortfolios(ctx context.Context, userID int64) ([]models.Portfolio, error)
	GetPortfolio(ctx context.Context, id int64) (*models.Portfolio, error)
	CreatePortfolio(ctx context.Context, in *models.InsertPortfolio) (*models.Portfolio, error)
	PatchPortfolio(ctx context.Context, id int64, fields map[string]any) (*models.Portfolio, error)
	DeletePortfolio(ctx context.Context, id int64) (bool, error)
}

type SectionRepo interface {
	ListSections(ctx context.Context, portfolioID int64) ([]models.PortfolioSection, error)
	GetSection(ctx context.Context, id int64) (*models.PortfolioSection, error)
	CreateSection(ctx context.Context, in *models.InsertPortfolioSection) (*models.PortfolioSection, error)
	PatchSection(ctx context.Context, id int64, fields map[string]any) (*models.PortfolioSection, error)
	DeleteSection(ctx context.Context, id int64) (bool, error)
}

type SkillRepo interface {
	ListSkills(ctx context.Context, userID int64) ([]models.Skill, error)
	GetSkill(ctx context.Context, id int64) (*models.Skill, error)
	CreateSkill(ctx context.Context, in *models.InsertSkill) (*models.Skill, error)
	PatchSkill(ctx context.Context, id int64, fields map[string]any) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id int64) (bool, error)
}

type ProjectRepo interface {
	ListProjects(ctx context.Context, userID int64) ([]models.Project, error)
	ListFeaturedProjects(ctx context.Context, userID int64) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, in *models.InsertProject) (*models.Project, error)
	PatchProject(ctx context.Context, id int64, fields map[string]any) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)
}

type ExperienceRepo interface {
	ListExperiences(ctx context.Context, userID int64) ([]models.Experience, error)
	GetExperience(ctx context.Context, id int64) (*models.Experience, error)
	CreateExperience(ctx context.Context, in *models.InsertExperience) (*models.Experience, error)
	PatchExperience(ctx context.Context, id int64, fields map[string]any) (*models.Experience, error)
	DeleteExperience(ctx context.Context, id int64) (bool, error)
}

type EducationRepo interface {
	ListEducations(ctx context.Context, userID int64) ([]models.Education, error)
	GetEducation(ctx context.Context, id int64) (*models.Education, error)
	CreateEducation(ctx context.Context, in *models.InsertEducation) (*models.Education, error)
	PatchEducation(ctx context.Context, id int64, fields map[string]any) (*models.Education, error)
	DeleteEducation(ctx context.Context, id int64) (bool, error)
}

type CertificationRepo interface {
	ListCertifications(ctx context.Context, userID int64) ([]models.Certification, error)
	GetCertification(ctx context.Context, id int64) (*models.Certification, error)
	CreateCertification(ctx context.Context, in *models.InsertCertification) (*models.Certification, error)
	PatchCertification(ctx context.Context, id int64, fields map[string]any) (*models.Certification, error)
	DeleteCertification(ctx context.Context, id int64) (bool, error)
}

// LegacyPortfolioRepo is the schema-less variant of the portfolio capability,
// kept for backward compatibility with the old client contract. Save stores
// the blob verbatim and echoes the input; Get returns the stored blob
// unchanged.
type LegacyPortfolioRepo interface {
	SavePortfolio(ctx context.Context, data models.PortfolioData) (models.PortfolioData, error)
	GetLegacyPortfolio(ctx context.Context, id int64) (models.PortfolioData, error)
}

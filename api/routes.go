package api

import (
	"github.com/craftfolio/craftfolio/internal/config"
	"github.com/craftfolio/craftfolio/internal/db"
	"github.com/craftfolio/craftfolio/internal/repository/sqlite"
	"github.com/craftfolio/craftfolio/internal/schema"
	"github.com/craftfolio/craftfolio/pkg/repository"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, d *db.DB, legacy repository.LegacyPortfolioRepo) (*mux.Router, error) {
	// Validation gateway
	schemas, err := schema.Load()
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(d, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	usersHandler := NewUsersHandler(repo, schemas)
	projectsHandler := NewProjectsHandler(repo, schemas)
	legacyHandler := NewLegacyHandler(legacy)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()

	// Auth endpoints
	apiRouter.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	apiRouter.HandleFunc("/auth/signin", authHandler.Signin).Methods("POST")
	authRouter := apiRouter.PathPrefix("/auth").Subrouter()
	authRouter.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	authRouter.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Users: the collection read is a username lookup, users have no owner
	apiRouter.HandleFunc("/users", usersHandler.Lookup).Methods("GET")
	apiRouter.HandleFunc("/users", usersHandler.Create).Methods("POST")
	apiRouter.HandleFunc("/users/{id}", usersHandler.Get).Methods("GET")
	apiRouter.HandleFunc("/users/{id}", usersHandler.Patch).Methods("PATCH")
	apiRouter.HandleFunc("/users/{id}", usersHandler.Delete).Methods("DELETE")

	// Owned entity collections
	mountResource(apiRouter, "/portfolios",
		newResource("portfolio", "userId", schemas, repo.ListPortfolios, repo.GetPortfolio, repo.CreatePortfolio, repo.PatchPortfolio, repo.DeletePortfolio))
	mountResource(apiRouter, "/sections",
		newResource("section", "portfolioId", schemas, repo.ListSections, repo.GetSection, repo.CreateSection, repo.PatchSection, repo.DeleteSection))
	mountResource(apiRouter, "/skills",
		newResource("skill", "userId", schemas, repo.ListSkills, repo.GetSkill, repo.CreateSkill, repo.PatchSkill, repo.DeleteSkill))
	mountResource(apiRouter, "/experiences",
		newResource("experience", "userId", schemas, repo.ListExperiences, repo.GetExperience, repo.CreateExperience, repo.PatchExperience, repo.DeleteExperience))
	mountResource(apiRouter, "/educations",
		newResource("education", "userId", schemas, repo.ListEducations, repo.GetEducation, repo.CreateEducation, repo.PatchEducation, repo.DeleteEducation))
	mountResource(apiRouter, "/certifications",
		newResource("certification", "userId", schemas, repo.ListCertifications, repo.GetCertification, repo.CreateCertification, repo.PatchCertification, repo.DeleteCertification))

	// Projects carry the ?featured=true filter and its cache
	apiRouter.HandleFunc("/projects", projectsHandler.List).Methods("GET")
	apiRouter.HandleFunc("/projects", projectsHandler.Create).Methods("POST")
	apiRouter.HandleFunc("/projects/{id}", projectsHandler.Get).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", projectsHandler.Patch).Methods("PATCH")
	apiRouter.HandleFunc("/projects/{id}", projectsHandler.Delete).Methods("DELETE")

	// Legacy compatibility endpoints
	apiRouter.HandleFunc("/portfolio", legacyHandler.Save).Methods("POST")
	apiRouter.HandleFunc("/portfolio/{id}", legacyHandler.Get).Methods("GET")

	return r, nil
}

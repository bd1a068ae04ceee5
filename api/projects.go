package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/craftfolio/craftfolio/internal/schema"
	"github.com/craftfolio/craftfolio/pkg/models"
	"github.com/craftfolio/craftfolio/pkg/repository"
	"github.com/patrickmn/go-cache"
)

// ProjectsHandler extends the uniform resource with the ?featured=true
// filter. Featured listings sit behind a short-lived read-through cache;
// any project write flushes it.
type ProjectsHandler struct {
	repo  repository.ProjectRepo
	res   *resource[models.Project, models.InsertProject]
	cache *cache.Cache
}

func NewProjectsHandler(repo repository.ProjectRepo, schemas *schema.Registry) *ProjectsHandler {
	return &ProjectsHandler{
		repo:  repo,
		res:   newResource("project", "userId", schemas, repo.ListProjects, repo.GetProject, repo.CreateProject, repo.PatchProject, repo.DeleteProject),
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("featured") != "true" {
		h.res.List(w, r)
		return
	}

	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := "featured:" + strconv.FormatInt(userID, 10)
	if v, found := h.cache.Get(key); found {
		writeData(w, v, http.StatusOK)
		return
	}

	rows, err := h.repo.ListFeaturedProjects(r.Context(), userID)
	if err != nil {
		storeError(w, "project", "list featured", err)
		return
	}
	if rows == nil {
		rows = []models.Project{}
	}

	h.cache.Set(key, rows, cache.DefaultExpiration)
	writeData(w, rows, http.StatusOK)
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) { h.res.Get(w, r) }

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.res.Create(w, r)
	h.cache.Flush()
}

func (h *ProjectsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.res.Patch(w, r)
	h.cache.Flush()
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.res.Delete(w, r)
	h.cache.Flush()
}

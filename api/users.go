package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/craftfolio/craftfolio/internal/schema"
	"github.com/craftfolio/craftfolio/pkg/models"
	"github.com/craftfolio/craftfolio/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsersHandler covers the user resource. Users differ from the owned
// entities in three ways: passwords are hashed on the way in and never
// appear in responses, patch payloads have any password field stripped, and
// the read-many operation is a username lookup instead of an owner scan.
type UsersHandler struct {
	repo repository.UserRepo
	res  *resource[models.User, models.InsertUser]
}

func NewUsersHandler(repo repository.UserRepo, schemas *schema.Registry) *UsersHandler {
	h := &UsersHandler{repo: repo}

	create := func(ctx context.Context, in *models.InsertUser) (*models.User, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		in.Password = string(hash)
		return repo.CreateUser(ctx, in)
	}

	h.res = newResource("user", "userId", schemas, nil, repo.GetUser, create, repo.PatchUser, repo.DeleteUser)
	h.res.stripPatch = []string{"password"}

	return h
}

// Lookup handles GET /api/users?username=... Users have no owning user, so
// the collection read is a uniqueness-oriented username lookup.
func (h *UsersHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, "username is required", http.StatusBadRequest)
		return
	}

	u, err := h.repo.GetUserByUsername(r.Context(), username)
	if err != nil {
		storeError(w, "user", "lookup", err)
		return
	}
	if u == nil {
		writeError(w, "user not found", http.StatusNotFound)
		return
	}

	writeData(w, u, http.StatusOK)
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) { h.res.Create(w, r) }
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request)    { h.res.Get(w, r) }
func (h *UsersHandler) Patch(w http.ResponseWriter, r *http.Request)  { h.res.Patch(w, r) }
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) { h.res.Delete(w, r) }

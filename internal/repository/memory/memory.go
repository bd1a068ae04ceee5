// Package memory holds the legacy, schema-less store kept for backward
// compatibility with the old client contract. All data lives in process
// memory for the process lifetime: initialized empty at start, discarded at
// exit, never persisted.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/craftfolio/craftfolio/pkg/models"
	"github.com/craftfolio/craftfolio/pkg/repository"
)

var _ repository.LegacyPortfolioRepo = (*Store)(nil)

// Store keeps two maps keyed by monotonically incrementing counters. No
// eviction, no size bound.
type Store struct {
	mu              sync.Mutex
	users           map[int64]models.User
	portfolios      map[int64]models.PortfolioData
	nextUserID      int64
	nextPortfolioID int64
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int64]models.User),
		portfolios: make(map[int64]models.PortfolioData),
	}
}

// SavePortfolio stores the blob verbatim and echoes the input unchanged. A
// payload carrying an id overwrites that entry; otherwise the store assigns
// the next counter value to its copy.
func (s *Store) SavePortfolio(ctx context.Context, data models.PortfolioData) (models.PortfolioData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := data.ID()
	if !ok {
		s.nextPortfolioID++
		id = s.nextPortfolioID
	} else if id > s.nextPortfolioID {
		s.nextPortfolioID = id
	}

	stored := make(models.PortfolioData, len(data)+1)
	maps.Copy(stored, data)
	stored["id"] = id
	s.portfolios[id] = stored

	return data, nil
}

// GetLegacyPortfolio returns the stored blob unchanged, or (nil, nil) when
// the id is unknown.
func (s *Store) GetLegacyPortfolio(ctx context.Context, id int64) (models.PortfolioData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.portfolios[id]
	if !ok {
		return nil, nil
	}
	return data, nil
}

// CreateUser satisfies the old unvalidated user contract. Passwords are
// stored as given; the legacy path never hashed them.
func (s *Store) CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	now := time.Now().Unix()
	u := models.User{
		ID:        s.nextUserID,
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = u

	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

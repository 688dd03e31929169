package users

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/server/models"
)

// MemoryRepository keeps users in process memory for Mock mode.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[int64]models.User)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (r *MemoryRepository) Create(ctx context.Context, name, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	u := models.User{ID: r.nextID, Name: name, Email: email}
	r.users[u.ID] = u

	return &u, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, name, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return nil, common.ErrNotFound
	}
	u := models.User{ID: id, Name: name, Email: email}
	r.users[id] = u

	return &u, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)

	return true, nil
}

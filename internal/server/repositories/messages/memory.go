package messages

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/croissant/internal/server/models"
)

// MemoryRepository keeps messages in process memory for Mock mode.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	msgs   map[int64]models.Message
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{msgs: make(map[int64]models.Message), now: time.Now}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := make([]models.Message, 0, len(r.msgs))
	for _, m := range r.msgs {
		msgs = append(msgs, m)
	}
	sort.Slice(msgs, func(i, j int) bool {
		if !msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
		}
		return msgs[i].ID > msgs[j].ID
	})

	return msgs, nil
}

func (r *MemoryRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m := *msg
	m.ID = r.nextID
	m.CreatedAt = r.now().UTC()
	r.msgs[m.ID] = m

	return &m, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.msgs[id]; !ok {
		return false, nil
	}
	delete(r.msgs, id)

	return true, nil
}

package repository

import (
	"fmt"
	"oldphonepad/internal/app"
	"sync"
)

var ErrNotFound = fmt.Errorf("%w: decoding not found", app.ErrBusinessLogic)

type History interface {
	Save(input string, res app.Result) (*app.Decoding, error)
	Load(id string) (*app.Decoding, error)
	Recent(limit int) ([]*app.Decoding, error)
}

// InMemoryHistory keeps the last size decodings, oldest are evicted first.
type InMemoryHistory struct {
	mu    sync.Mutex
	size  int
	items []*app.Decoding // от старых к новым
}

func NewInMemoryHistory(size int) *InMemoryHistory {
	if size < 1 {
		size = 1
	}
	return &InMemoryHistory{
		size:  size,
		items: make([]*app.Decoding, 0, size),
	}
}

func (h *InMemoryHistory) Save(input string, res app.Result) (*app.Decoding, error) {
	d := app.NewDecoding(input, res)

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.items) == h.size {
		copy(h.items, h.items[1:])
		h.items = h.items[:len(h.items)-1]
	}
	h.items = append(h.items, d)
	return d, nil
}

func (h *InMemoryHistory) Load(id string) (*app.Decoding, error) {
	uid, err := app.ParseID(id)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, d := range h.items {
		if d.ID == uid {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
}

// Recent returns up to limit decodings, newest first. limit <= 0 means all kept.
func (h *InMemoryHistory) Recent(limit int) ([]*app.Decoding, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if limit <= 0 || limit > len(h.items) {
		limit = len(h.items)
	}
	result := make([]*app.Decoding, 0, limit)
	for i := len(h.items) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, h.items[i])
	}
	return result, nil
}

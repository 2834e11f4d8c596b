package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Decoding is a decoded input as the service keeps and returns it.
type Decoding struct {
	ID        uuid.UUID `json:"id"`
	Input     string    `json:"input"`
	Text      string    `json:"text"`
	Presses   int       `json:"presses"`
	Deletes   int       `json:"deletes"`
	Ignored   int       `json:"ignored"`
	CreatedAt time.Time `json:"created_at"`
}

type DecodeRequest struct {
	Input *string `json:"input"`
}

func NewDecoding(input string, res Result) *Decoding {
	return &Decoding{
		ID:        uuid.New(),
		Input:     input,
		Text:      res.Text,
		Presses:   res.Presses,
		Deletes:   res.Deletes,
		Ignored:   res.Ignored,
		CreatedAt: time.Now().UTC(),
	}
}

// ParseID проверяет идентификатор записи; формат меняется только здесь
func ParseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return uid, nil
}

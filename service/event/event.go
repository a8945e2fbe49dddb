package event

import (
	"time"

	"github.com/flowenv/flowenv/internal/clock"
	"github.com/flowenv/flowenv/internal/idgen"
)

// TypePublished marks events emitted after a successful publish.
const TypePublished = "published"

// Context identifies what a registry event relates to.
type Context struct {
	Workflow  string `json:"workflow"`
	Version   string `json:"version"`
	EventType string `json:"eventType"`
}

// Event is a typed registry notification.
type Event[T any] struct {
	ID        string                 `json:"id"`
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		ID:        idgen.New(),
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}

package eventbus

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
)

// Типы событий, которые получают коллабораторы отрисовки
const (
	EventRegionUpdated = "region.updated"
	EventRegionCleared = "region.cleared"
	EventModeChanged   = "mode.changed"
	EventClickDenied   = "click.denied"
	EventBlockChanged  = "block.changed"
)

// Приоритеты событий
const (
	PriorityLow    = 0
	PriorityNormal = 3
	PriorityHigh   = 5 // Не отбрасывается при переполнении буфера
)

// SchemaVersion - версия схемы JSON-снимков
const SchemaVersion = 1

// NewEnvelope сериализует payload в JSON и заворачивает его в конверт
func NewEnvelope(source, eventType string, payload interface{}) (*Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("кодирование %s: %w", eventType, err)
	}
	return &Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    source,
		EventType: eventType,
		Version:   SchemaVersion,
		Priority:  PriorityNormal,
		Payload:   data,
		Metadata:  make(map[string]string),
	}, nil
}

// Decode разбирает JSON-снимок в v
func (e *Envelope) Decode(v interface{}) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("декодирование %s %s: %w", e.EventType, e.ID, err)
	}
	return nil
}

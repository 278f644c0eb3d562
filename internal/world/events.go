package world

import (
	"github.com/annel0/buildregion/internal/vec"
)

// EventType определяет тип события
type EventType uint8

const (
	EventTypeBlockPlace   EventType = iota // Установка блока игроком
	EventTypeBlockDestroy                  // Разрушение блока игроком
	EventTypeBlockSet                      // Прямая запись (генератор, скрипт)
)

func (t EventType) String() string {
	switch t {
	case EventTypeBlockPlace:
		return "place"
	case EventTypeBlockDestroy:
		return "destroy"
	default:
		return "set"
	}
}

// BlockEvent представляет изменение блока
type BlockEvent struct {
	EventType EventType
	Position  vec.Vec3 // Мировые координаты блока
	Old       Block
	New       Block
}

// BlockListener получает изменения блоков
type BlockListener func(BlockEvent)

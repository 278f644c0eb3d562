package world

import (
	"fmt"

	"github.com/annel0/buildregion/internal/world/block"
)

// Block представляет собой блок в игровом мире
type Block struct {
	ID   block.BlockID `json:"id"`             // Идентификатор типа блока
	Meta uint8         `json:"meta,omitempty"` // Метаданные блока (подтип, ориентация, содержимое)
}

// NewBlock создаёт блок с нулевыми метаданными
func NewBlock(id block.BlockID) Block {
	return Block{ID: id}
}

// IsSolid - на блоке можно стоять
func (b Block) IsSolid() bool {
	return block.IsSolid(b.ID)
}

// IsAir возвращает true для пустой клетки
func (b Block) IsAir() bool {
	return b.ID == block.AirBlockID
}

// Name возвращает имя типа блока
func (b Block) Name() string {
	return block.Name(b.ID)
}

func (b Block) String() string {
	if b.Meta != 0 {
		return fmt.Sprintf("%s:%d", b.Name(), b.Meta)
	}
	return b.Name()
}

package world

import (
	"github.com/annel0/buildregion/internal/vec"
)

// ChunkSize - длина ребра чанка в блоках
const ChunkSize = 16

// Chunk представляет участок мира размером 16x16x16 блоков
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в мире

	// Blocks[x][y][z], локальные координаты
	Blocks [ChunkSize][ChunkSize][ChunkSize]Block

	ChangeCounter int // Счетчик изменений
	nonAir        int
}

// NewChunk создаёт новый чанк с указанными координатами
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{Coords: coords}
}

// GetBlock возвращает блок по локальным координатам
func (c *Chunk) GetBlock(local vec.Vec3) Block {
	return c.Blocks[local.X][local.Y][local.Z]
}

// SetBlock устанавливает блок по локальным координатам и возвращает прежний
func (c *Chunk) SetBlock(local vec.Vec3, b Block) Block {
	old := c.Blocks[local.X][local.Y][local.Z]
	c.Blocks[local.X][local.Y][local.Z] = b
	if old.IsAir() && !b.IsAir() {
		c.nonAir++
	} else if !old.IsAir() && b.IsAir() {
		c.nonAir--
	}
	c.ChangeCounter++
	return old
}

// IsEmpty возвращает true, если в чанке только воздух
func (c *Chunk) IsEmpty() bool {
	return c.nonAir == 0
}

// ChunkCoords разбивает мировые координаты на координаты чанка и локальные.
// Для отрицательных координат используется деление с округлением вниз.
func ChunkCoords(pos vec.Vec3) (chunk, local vec.Vec3) {
	chunk = vec.Vec3{X: pos.X >> 4, Y: pos.Y >> 4, Z: pos.Z >> 4}
	local = vec.Vec3{X: pos.X & (ChunkSize - 1), Y: pos.Y & (ChunkSize - 1), Z: pos.Z & (ChunkSize - 1)}
	return chunk, local
}

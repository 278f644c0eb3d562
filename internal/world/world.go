package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/annel0/buildregion/internal/vec"
	"github.com/annel0/buildregion/internal/world/block"
)

// ErrNotPlaceable возвращается, если предмет в руке нельзя поставить как блок
var ErrNotPlaceable = errors.New("item cannot be placed as a block")

// Reader даёт доступ на чтение к блокам мира
type Reader interface {
	// GetBlock возвращает блок и его метаданные в мировых координатах
	GetBlock(pos vec.Vec3) Block
}

// WorldManager хранит блоки мира в памяти
type WorldManager struct {
	chunks    map[vec.Vec3]*Chunk // Загруженные чанки
	listeners []BlockListener
	mu        sync.RWMutex // Мьютекс для общего доступа
}

// NewWorldManager создаёт пустой мир
func NewWorldManager() *WorldManager {
	return &WorldManager{
		chunks: make(map[vec.Vec3]*Chunk),
	}
}

// OnBlockChange регистрирует слушателя изменений блоков
func (wm *WorldManager) OnBlockChange(listener BlockListener) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.listeners = append(wm.listeners, listener)
}

// GetBlock возвращает блок в указанной позиции. Незагруженные клетки - воздух.
func (wm *WorldManager) GetBlock(pos vec.Vec3) Block {
	chunkPos, local := ChunkCoords(pos)

	wm.mu.RLock()
	defer wm.mu.RUnlock()

	chunk, ok := wm.chunks[chunkPos]
	if !ok {
		return Block{}
	}
	return chunk.GetBlock(local)
}

// SetBlock записывает блок без игровых правил
func (wm *WorldManager) SetBlock(pos vec.Vec3, b Block) {
	wm.apply(EventTypeBlockSet, pos, b)
}

// Place ставит блок из предмета в руке в клетку pos. face - грань, по
// которой кликнул игрок; она определяет ориентацию полублока. Если в клетке
// лежит подходящий полублок, он превращается в двойной.
func (wm *WorldManager) Place(pos vec.Vec3, face int, held block.ItemStack) (Block, error) {
	blockID, ok := block.BlockForItem(held.ID)
	if !ok {
		return Block{}, fmt.Errorf("%w: %s", ErrNotPlaceable, held)
	}

	placed := NewBlock(blockID)
	if pair, isSlab := block.SlabForItem(held.ID); isSlab {
		current := wm.GetBlock(pos)
		if current.ID == pair.Half && block.SlabSubtype(current.Meta) == held.Damage {
			placed = Block{ID: pair.Full, Meta: block.SlabSubtype(current.Meta)}
		} else {
			// Клик по нижней грани соседнего блока ставит полублок к потолку
			placed.Meta = block.SlabMeta(held.Damage, face == 0)
		}
	}

	wm.apply(EventTypeBlockPlace, pos, placed)
	return placed, nil
}

// Destroy заменяет блок воздухом и возвращает прежний
func (wm *WorldManager) Destroy(pos vec.Vec3) Block {
	return wm.apply(EventTypeBlockDestroy, pos, Block{})
}

// HighestSolidY возвращает Y самого верхнего твёрдого блока в колонке,
// не выше maxY. Трава, снег и вода пропускаются.
// ok == false, если твёрдых блоков нет до minY.
func (wm *WorldManager) HighestSolidY(x, z, minY, maxY int) (int, bool) {
	for y := maxY; y >= minY; y-- {
		if wm.GetBlock(vec.Vec3{X: x, Y: y, Z: z}).IsSolid() {
			return y, true
		}
	}
	return 0, false
}

// ChunkCount возвращает количество загруженных чанков
func (wm *WorldManager) ChunkCount() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return len(wm.chunks)
}

func (wm *WorldManager) apply(eventType EventType, pos vec.Vec3, b Block) Block {
	chunkPos, local := ChunkCoords(pos)

	wm.mu.Lock()
	chunk, ok := wm.chunks[chunkPos]
	if !ok {
		if b.IsAir() {
			wm.mu.Unlock()
			return Block{}
		}
		chunk = NewChunk(chunkPos)
		wm.chunks[chunkPos] = chunk
	}
	old := chunk.SetBlock(local, b)
	if chunk.IsEmpty() {
		delete(wm.chunks, chunkPos)
	}
	listeners := wm.listeners
	wm.mu.Unlock()

	event := BlockEvent{EventType: eventType, Position: pos, Old: old, New: b}
	for _, listener := range listeners {
		listener(event)
	}
	return old
}

package block

import "fmt"

var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// Name возвращает имя блока или "block(N)" для незарегистрированных ID
func Name(id BlockID) string {
	if behavior, ok := registry[id]; ok {
		return behavior.Name()
	}
	return fmt.Sprintf("block(%d)", uint16(id))
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID   BlockID = iota // 0
	StoneBlockID                // 1
	GrassBlockID                // 2
	DirtBlockID                 // 3
	SandBlockID                 // 4
	WaterBlockID                // 5
	PlanksBlockID               // 6

	// Покрытие, сквозь которое можно пройти (начиная с 50)
	SnowLayerBlockID BlockID = 50 // Слой снега
	VineBlockID      BlockID = 51 // Лоза
	TallGrassBlockID BlockID = 52 // Высокая трава
	DeadBushBlockID  BlockID = 53 // Сухой куст

	// Декоративные блоки (начиная с 100)
	TorchBlockID  BlockID = 100 // Факел
	FlowerBlockID BlockID = 101 // Цветок

	// Интерактивные блоки (начиная с 200)
	AnvilBlockID             BlockID = 200
	BeaconBlockID            BlockID = 201
	BedBlockID               BlockID = 202
	BrewingStandBlockID      BlockID = 203
	CakeBlockID              BlockID = 204
	CauldronBlockID          BlockID = 205
	ChestBlockID             BlockID = 206
	CommandBlockID           BlockID = 207
	DispenserBlockID         BlockID = 208
	IronDoorBlockID          BlockID = 209
	WoodenDoorBlockID        BlockID = 210
	DragonEggBlockID         BlockID = 211
	EnchantingTableBlockID   BlockID = 212
	EnderChestBlockID        BlockID = 213
	FenceGateBlockID         BlockID = 214
	LeverBlockID             BlockID = 215
	NoteblockBlockID         BlockID = 216
	PoweredRepeaterBlockID   BlockID = 217
	UnpoweredRepeaterBlockID BlockID = 218
	StoneButtonBlockID       BlockID = 219
	LitFurnaceBlockID        BlockID = 220
	FurnaceBlockID           BlockID = 221
	TrapdoorBlockID          BlockID = 222
	WoodenButtonBlockID      BlockID = 223
	CraftingTableBlockID     BlockID = 224
	JukeboxBlockID           BlockID = 225 // Метаданные != 0 - внутри пластинка

	// Полублоки и их двойные варианты (начиная с 300)
	StoneSlabBlockID        BlockID = 300
	DoubleStoneSlabBlockID  BlockID = 301
	WoodenSlabBlockID       BlockID = 302
	DoubleWoodenSlabBlockID BlockID = 303
)

package block

// SlabPair связывает предмет-полублок с его половинным и двойным блоками
type SlabPair struct {
	Half BlockID
	Full BlockID
}

// Статическая таблица полублоков
var slabs = map[ItemID]SlabPair{
	ItemOf(StoneSlabBlockID):  {Half: StoneSlabBlockID, Full: DoubleStoneSlabBlockID},
	ItemOf(WoodenSlabBlockID): {Half: WoodenSlabBlockID, Full: DoubleWoodenSlabBlockID},
}

// Биты метаданных полублока
const (
	SlabSubtypeMask uint8 = 7 // Вид материала
	SlabTopFlag     uint8 = 8 // Полублок прижат к верху клетки
)

// SlabForItem возвращает пару блоков для предмета-полублока
func SlabForItem(id ItemID) (SlabPair, bool) {
	pair, ok := slabs[id]
	return pair, ok
}

// IsSlab возвращает true для половинных и двойных полублоков
func IsSlab(id BlockID) bool {
	for _, pair := range slabs {
		if pair.Half == id || pair.Full == id {
			return true
		}
	}
	return false
}

// SlabSubtype возвращает вид материала полублока
func SlabSubtype(meta uint8) uint8 {
	return meta & SlabSubtypeMask
}

// SlabUpsideDown - полублок занимает верхнюю половину клетки
func SlabUpsideDown(meta uint8) bool {
	return meta&SlabTopFlag != 0
}

// SlabMeta собирает метаданные полублока
func SlabMeta(subtype uint8, upsideDown bool) uint8 {
	meta := subtype & SlabSubtypeMask
	if upsideDown {
		meta |= SlabTopFlag
	}
	return meta
}

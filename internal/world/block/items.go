package block

import "fmt"

// ItemID - идентификатор предмета. Предметы-блоки используют тот же номер,
// что и блок; остальные предметы начинаются с FirstPlainItemID.
type ItemID uint16

// FirstPlainItemID - первый ID предмета, который не ставится как блок
const FirstPlainItemID ItemID = 2000

// Предметы, не являющиеся блоками
const (
	StickItemID      ItemID = FirstPlainItemID + iota // Палка
	HoeItemID                                         // Мотыга
	RecordCatItemID                                   // Пластинка "cat"
	Record13ItemID                                    // Пластинка "13"
	RecordWardItemID                                  // Пластинка "ward"
)

// ItemStack - предмет в руке игрока. Нулевое значение - пустая рука.
type ItemStack struct {
	ID     ItemID `json:"id" yaml:"id"`
	Damage uint8  `json:"damage,omitempty" yaml:"damage,omitempty"` // Подтип (для полублоков - вид материала)
	Count  int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// Empty возвращает пустую руку
func Empty() ItemStack {
	return ItemStack{}
}

// StackOf создаёт стек из одного предмета-блока
func StackOf(id BlockID, damage uint8) ItemStack {
	return ItemStack{ID: ItemOf(id), Damage: damage, Count: 1}
}

// IsEmpty - в руке ничего нет
func (s ItemStack) IsEmpty() bool {
	return s.ID == ItemOf(AirBlockID)
}

func (s ItemStack) String() string {
	if s.IsEmpty() {
		return "empty hand"
	}
	name := ItemName(s.ID)
	if s.Damage != 0 {
		return fmt.Sprintf("%s:%d", name, s.Damage)
	}
	return name
}

// ItemOf возвращает предмет, которым ставится блок
func ItemOf(id BlockID) ItemID {
	return ItemID(id)
}

// BlockForItem возвращает блок, который ставит предмет.
// ok == false для предметов, которые не являются блоками.
func BlockForItem(id ItemID) (BlockID, bool) {
	if id >= FirstPlainItemID {
		return AirBlockID, false
	}
	blockID := BlockID(id)
	if blockID == AirBlockID || !IsValidBlockID(blockID) {
		return AirBlockID, false
	}
	return blockID, true
}

var plainItems = map[ItemID]string{
	StickItemID:      "stick",
	HoeItemID:        "hoe",
	RecordCatItemID:  "record_cat",
	Record13ItemID:   "record_13",
	RecordWardItemID: "record_ward",
}

// IsRecord - предмет является музыкальной пластинкой
func IsRecord(id ItemID) bool {
	switch id {
	case RecordCatItemID, Record13ItemID, RecordWardItemID:
		return true
	}
	return false
}

// ItemName возвращает имя предмета
func ItemName(id ItemID) string {
	if blockID, ok := BlockForItem(id); ok {
		return Name(blockID)
	}
	if name, ok := plainItems[id]; ok {
		return name
	}
	return fmt.Sprintf("item(%d)", uint16(id))
}

// ParseItem ищет предмет по имени (блоки и обычные предметы)
func ParseItem(name string) (ItemID, error) {
	for id, n := range plainItems {
		if n == name {
			return id, nil
		}
	}
	for id, behavior := range registry {
		if behavior.Name() == name {
			return ItemOf(id), nil
		}
	}
	return 0, fmt.Errorf("неизвестный предмет %q", name)
}

// ParseBlock ищет блок по имени
func ParseBlock(name string) (BlockID, error) {
	for id, behavior := range registry {
		if behavior.Name() == name {
			return id, nil
		}
	}
	return AirBlockID, fmt.Errorf("неизвестный блок %q", name)
}

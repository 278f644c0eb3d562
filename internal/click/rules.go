package click

import (
	"github.com/annel0/buildregion/internal/world"
	"github.com/annel0/buildregion/internal/world/block"
)

// Блоки, разрушение которых никогда не блокируется
var destroyExcluded = map[block.BlockID]bool{
	block.TorchBlockID: true,
}

// Блоки, которые игрок ставит не задумываясь; с ними в руке клик не блокируется
var placeExcluded = map[block.BlockID]bool{
	block.TorchBlockID: true,
}

// Блоки, которые сами обрабатывают правый клик (открываются, переключаются)
var rightClickConsumers = map[block.BlockID]bool{
	block.AnvilBlockID:             true,
	block.BeaconBlockID:            true,
	block.BedBlockID:               true,
	block.BrewingStandBlockID:      true,
	block.CakeBlockID:              true,
	block.CauldronBlockID:          true,
	block.ChestBlockID:             true,
	block.CommandBlockID:           true,
	block.DispenserBlockID:         true,
	block.IronDoorBlockID:          true,
	block.WoodenDoorBlockID:        true,
	block.DragonEggBlockID:         true,
	block.EnchantingTableBlockID:   true,
	block.EnderChestBlockID:        true,
	block.FenceGateBlockID:         true,
	block.LeverBlockID:             true,
	block.NoteblockBlockID:         true,
	block.PoweredRepeaterBlockID:   true,
	block.UnpoweredRepeaterBlockID: true,
	block.StoneButtonBlockID:       true,
	block.LitFurnaceBlockID:        true,
	block.FurnaceBlockID:           true,
	block.TrapdoorBlockID:          true,
	block.WoodenButtonBlockID:      true,
	block.CraftingTableBlockID:     true,
}

// consumesRightClick - правый клик по блоку будет использованием, а не установкой.
// Проигрыватель реагирует, только если в нём есть пластинка или её держат в руке.
func consumesRightClick(target world.Block, held block.ItemStack) bool {
	if target.ID == block.JukeboxBlockID {
		return target.Meta != 0 || block.IsRecord(held.ID)
	}
	return rightClickConsumers[target.ID]
}

// heldExcluded - предмет в руке ставит блок из набора исключений
func heldExcluded(held block.ItemStack) bool {
	id, ok := block.BlockForItem(held.ID)
	return ok && placeExcluded[id]
}

// replacedInPlace - установка изменит саму клетку target, а не соседнюю:
// покрытие (снег, трава, лоза) заменяется, а подходящий полублок достраивается.
func replacedInPlace(target world.Block, face int, held block.ItemStack) bool {
	if block.IsReplaceable(target.ID) {
		return true
	}
	return mergesSlab(target, face, held)
}

// mergesSlab - клик полублоком по такому же полублоку с нужной стороны
// превращает его в двойной
func mergesSlab(target world.Block, face int, held block.ItemStack) bool {
	if !block.IsSlab(target.ID) {
		return false
	}
	pair, ok := block.SlabForItem(held.ID)
	if !ok || pair.Half != target.ID {
		return false
	}
	if block.SlabSubtype(target.Meta) != held.Damage {
		return false
	}
	upsideDown := block.SlabUpsideDown(target.Meta)
	return (face == 0 && upsideDown) || (face == 1 && !upsideDown)
}

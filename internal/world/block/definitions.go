package block

// Регистрируем все типы блоков при импорте пакета
func init() {
	solid := func(id BlockID, name string) {
		Register(id, &basicBehavior{id: id, name: name, solid: true})
	}
	cover := func(id BlockID, name string) {
		Register(id, &basicBehavior{id: id, name: name, replaceable: true})
	}
	thin := func(id BlockID, name string) {
		Register(id, &basicBehavior{id: id, name: name})
	}

	// Базовые блоки
	thin(AirBlockID, "air")
	solid(StoneBlockID, "stone")
	solid(GrassBlockID, "grass")
	solid(DirtBlockID, "dirt")
	solid(SandBlockID, "sand")
	thin(WaterBlockID, "water")
	solid(PlanksBlockID, "planks")

	// Покрытие
	cover(SnowLayerBlockID, "snow_layer")
	cover(VineBlockID, "vine")
	cover(TallGrassBlockID, "tallgrass")
	cover(DeadBushBlockID, "deadbush")

	// Декор
	thin(TorchBlockID, "torch")
	thin(FlowerBlockID, "flower")

	// Интерактивные
	solid(AnvilBlockID, "anvil")
	solid(BeaconBlockID, "beacon")
	thin(BedBlockID, "bed")
	thin(BrewingStandBlockID, "brewing_stand")
	thin(CakeBlockID, "cake")
	thin(CauldronBlockID, "cauldron")
	solid(ChestBlockID, "chest")
	solid(CommandBlockID, "command_block")
	solid(DispenserBlockID, "dispenser")
	thin(IronDoorBlockID, "iron_door")
	thin(WoodenDoorBlockID, "wooden_door")
	thin(DragonEggBlockID, "dragon_egg")
	thin(EnchantingTableBlockID, "enchanting_table")
	solid(EnderChestBlockID, "ender_chest")
	thin(FenceGateBlockID, "fence_gate")
	thin(LeverBlockID, "lever")
	solid(NoteblockBlockID, "noteblock")
	thin(PoweredRepeaterBlockID, "powered_repeater")
	thin(UnpoweredRepeaterBlockID, "unpowered_repeater")
	thin(StoneButtonBlockID, "stone_button")
	solid(LitFurnaceBlockID, "lit_furnace")
	solid(FurnaceBlockID, "furnace")
	thin(TrapdoorBlockID, "trapdoor")
	thin(WoodenButtonBlockID, "wooden_button")
	solid(CraftingTableBlockID, "crafting_table")
	solid(JukeboxBlockID, "jukebox")

	// Полублоки
	thin(StoneSlabBlockID, "stone_slab")
	solid(DoubleStoneSlabBlockID, "double_stone_slab")
	thin(WoodenSlabBlockID, "wooden_slab")
	solid(DoubleWoodenSlabBlockID, "double_wooden_slab")
}

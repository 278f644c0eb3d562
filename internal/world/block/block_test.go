package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	behavior, ok := Get(JukeboxBlockID)
	require.True(t, ok)
	assert.Equal(t, "jukebox", behavior.Name())
	assert.Equal(t, JukeboxBlockID, behavior.ID())

	assert.False(t, IsValidBlockID(BlockID(9999)))
	assert.Equal(t, "block(9999)", Name(BlockID(9999)))
}

func TestIsReplaceable(t *testing.T) {
	for _, id := range []BlockID{SnowLayerBlockID, VineBlockID, TallGrassBlockID, DeadBushBlockID} {
		assert.True(t, IsReplaceable(id), "%s должен быть заменяемым", Name(id))
	}
	for _, id := range []BlockID{AirBlockID, StoneBlockID, TorchBlockID, StoneSlabBlockID, BlockID(9999)} {
		assert.False(t, IsReplaceable(id), "%s не должен быть заменяемым", Name(id))
	}
}

func TestIsSolid(t *testing.T) {
	assert.True(t, IsSolid(StoneBlockID))
	assert.True(t, IsSolid(PlanksBlockID))
	assert.False(t, IsSolid(AirBlockID))
	assert.False(t, IsSolid(TallGrassBlockID), "заменяемое покрытие")
	assert.False(t, IsSolid(TorchBlockID))
	assert.False(t, IsSolid(BlockID(9999)), "незарегистрированный блок")
}

func TestItems(t *testing.T) {
	id, ok := BlockForItem(ItemOf(TorchBlockID))
	require.True(t, ok)
	assert.Equal(t, TorchBlockID, id)

	_, ok = BlockForItem(RecordCatItemID)
	assert.False(t, ok)
	_, ok = BlockForItem(ItemOf(AirBlockID))
	assert.False(t, ok)

	assert.True(t, IsRecord(Record13ItemID))
	assert.False(t, IsRecord(StickItemID))

	assert.True(t, Empty().IsEmpty())
	assert.Equal(t, "empty hand", Empty().String())
	assert.Equal(t, "stone_slab:3", StackOf(StoneSlabBlockID, 3).String())
	assert.Equal(t, "record_cat", ItemStack{ID: RecordCatItemID}.String())
}

func TestParseItemAndBlock(t *testing.T) {
	item, err := ParseItem("record_ward")
	require.NoError(t, err)
	assert.Equal(t, RecordWardItemID, item)

	item, err = ParseItem("wooden_slab")
	require.NoError(t, err)
	assert.Equal(t, ItemOf(WoodenSlabBlockID), item)

	_, err = ParseItem("diamond")
	assert.Error(t, err)

	b, err := ParseBlock("tallgrass")
	require.NoError(t, err)
	assert.Equal(t, TallGrassBlockID, b)
}

func TestSlabs(t *testing.T) {
	pair, ok := SlabForItem(ItemOf(StoneSlabBlockID))
	require.True(t, ok)
	assert.Equal(t, SlabPair{Half: StoneSlabBlockID, Full: DoubleStoneSlabBlockID}, pair)

	_, ok = SlabForItem(ItemOf(StoneBlockID))
	assert.False(t, ok)

	assert.True(t, IsSlab(DoubleWoodenSlabBlockID))
	assert.False(t, IsSlab(PlanksBlockID))

	meta := SlabMeta(3, true)
	assert.Equal(t, uint8(11), meta)
	assert.Equal(t, uint8(3), SlabSubtype(meta))
	assert.True(t, SlabUpsideDown(meta))
	assert.False(t, SlabUpsideDown(SlabMeta(3, false)))
}

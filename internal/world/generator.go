package world

import (
	"math/rand"

	"github.com/annel0/buildregion/internal/util"
	"github.com/annel0/buildregion/internal/vec"
	"github.com/annel0/buildregion/internal/world/block"
)

// BiomeType представляет тип биома
type BiomeType int

const (
	BiomePlains BiomeType = iota
	BiomeDesert
	BiomeMountains
)

// WorldGenerator генерирует ландшафт вокруг точки
type WorldGenerator struct {
	Seed       int64   // Сид для генерации шума
	NoiseScale float64 // Масштаб основного шума (высота)
	BiomeScale float64 // Масштаб шума биомов
	BaseHeight int     // Высота поверхности при нулевом шуме
	Amplitude  int     // Разброс высот
	SnowLine   int     // Выше этой высоты лежит снег

	noise *util.Noise
	biome *util.Noise
}

// NewWorldGenerator создаёт новый генератор мира
func NewWorldGenerator(seed int64) *WorldGenerator {
	return &WorldGenerator{
		Seed:       seed,
		NoiseScale: 0.05, // Настройка сглаженности ландшафта
		BiomeScale: 0.02, // Настройка размера биомов
		BaseHeight: 56,
		Amplitude:  16,
		SnowLine:   68,
		noise:      util.NewNoise(seed),
		biome:      util.NewNoise(seed + 42),
	}
}

// HeightAt возвращает высоту поверхности в колонке (x, z)
func (wg *WorldGenerator) HeightAt(x, z int) int {
	h := wg.noise.At2D(float64(x)*wg.NoiseScale, float64(z)*wg.NoiseScale)
	return wg.BaseHeight + int(h*float64(wg.Amplitude))
}

// Generate заполняет квадрат колонок радиуса radius вокруг center.
// Возвращает количество записанных блоков.
func (wg *WorldGenerator) Generate(wm *WorldManager, center vec.Vec3, radius int) int {
	// Локальный генератор случайных чисел для детерминированности
	rng := rand.New(rand.NewSource(wg.Seed + int64(center.X*31) + int64(center.Z*17)))
	written := 0

	for x := center.X - radius; x <= center.X+radius; x++ {
		for z := center.Z - radius; z <= center.Z+radius; z++ {
			height := wg.HeightAt(x, z)
			biome := wg.getBiomeType(height, wg.biome.At2D(float64(x)*wg.BiomeScale, float64(z)*wg.BiomeScale))
			surface, filler := wg.getBlocksForBiome(biome)

			for y := wg.BaseHeight - 4; y <= height; y++ {
				id := block.StoneBlockID
				switch {
				case y == height:
					id = surface
				case y >= height-3:
					id = filler
				}
				wm.SetBlock(vec.Vec3{X: x, Y: y, Z: z}, NewBlock(id))
				written++
			}

			if cover, ok := wg.decorate(biome, height, rng); ok {
				wm.SetBlock(vec.Vec3{X: x, Y: height + 1, Z: z}, NewBlock(cover))
				written++
			}
		}
	}
	return written
}

// getBiomeType определяет тип биома на основе высоты и шума биомов
func (wg *WorldGenerator) getBiomeType(height int, biomeValue float64) BiomeType {
	if height > wg.SnowLine {
		return BiomeMountains
	}
	if biomeValue < 0.35 {
		return BiomeDesert
	}
	return BiomePlains
}

// getBlocksForBiome возвращает блоки поверхности и подповерхностного слоя
func (wg *WorldGenerator) getBlocksForBiome(biome BiomeType) (surface, filler block.BlockID) {
	switch biome {
	case BiomeDesert:
		return block.SandBlockID, block.SandBlockID
	case BiomeMountains:
		return block.StoneBlockID, block.StoneBlockID
	default:
		return block.GrassBlockID, block.DirtBlockID
	}
}

// decorate выбирает покрытие над поверхностью: траву, кусты, снег или факел
func (wg *WorldGenerator) decorate(biome BiomeType, height int, rng *rand.Rand) (block.BlockID, bool) {
	roll := rng.Float64()
	switch biome {
	case BiomeMountains:
		if height > wg.SnowLine {
			return block.SnowLayerBlockID, true
		}
	case BiomeDesert:
		if roll < 0.03 {
			return block.DeadBushBlockID, true
		}
	default:
		switch {
		case roll < 0.15:
			return block.TallGrassBlockID, true
		case roll < 0.17:
			return block.FlowerBlockID, true
		case roll < 0.175:
			return block.TorchBlockID, true
		}
	}
	return block.AirBlockID, false
}

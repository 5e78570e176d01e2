package world

import (
	"math"

	"github.com/annel0/voxel-engine/internal/util"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Константы рельефа
const (
	SeaLevel      = 128 // Верх водяного столба
	BaseHeight    = 128 // Средняя высота рельефа
	HeightRange   = 20  // Амплитуда рельефа
	StoneBase     = 4.5 // Средняя глубина дерновой прослойки
	StoneDepthMin = 3
	StoneDepthMax = 10

	terrainNoiseScale = 0.1 / 16.0  // Частота шума рельефа (на блок)
	stoneNoiseScale   = 0.07 / 16.0 // Частота шума глубины камня
	stoneSeedOffset   = 11239       // Разводит поля по сидам
)

// WorldGenerator генерирует ландшафт мира.
// Генерация — чистая функция координат чанка и двух фиксированных
// полей шума: рельеф и глубина камня независимы друг от друга.
// Никакого глобального состояния, повторная генерация идемпотентна.
type WorldGenerator struct {
	Seed int64 // Сид для генерации шума

	terrain util.NoiseField2D
	stone   util.NoiseField2D
}

// NewWorldGenerator создаёт новый генератор мира
func NewWorldGenerator(seed int64) *WorldGenerator {
	return &WorldGenerator{
		Seed:    seed,
		terrain: util.NewPerlinField(seed, terrainNoiseScale),
		stone:   util.NewSimplexField(seed+stoneSeedOffset, stoneNoiseScale),
	}
}

// TerrainHeight возвращает высоту рельефа для столбца (global_x, global_z)
func (wg *WorldGenerator) TerrainHeight(gx, gz int) int {
	v := wg.terrain.At(float64(gx), float64(gz))*HeightRange + BaseHeight
	return int(math.Round(v))
}

// StoneDepth возвращает толщину слоя земли над камнем для столбца
func (wg *WorldGenerator) StoneDepth(gx, gz int) int {
	s := wg.stone.At(float64(gx), float64(gz))*HeightRange + StoneBase
	d := int(math.Round(s))
	if d < StoneDepthMin {
		d = StoneDepthMin
	}
	if d > StoneDepthMax {
		d = StoneDepthMax
	}
	return d
}

// GenerateChunk генерирует чанк по его координатам: снизу вверх
// коренная порода (только в чанке высоты 0), камень до шумовой
// глубины под рельефом, земля до высоты рельефа, травяной блок на
// рельефе и вода во всех оставшихся пустых ячейках ниже уровня моря.
func (wg *WorldGenerator) GenerateChunk(coords vec.Vec3) *Chunk {
	chunk := NewChunk(coords)
	base := chunk.Offset()

	for z := 0; z < vec.ChunkSize; z++ {
		for x := 0; x < vec.ChunkSize; x++ {
			gx := base.X + x
			gz := base.Z + z

			height := wg.TerrainHeight(gx, gz)
			depth := wg.StoneDepth(gx, gz)

			stoneMax := minInt(height-depth-base.Y, vec.ChunkSize)
			for y := 0; y < stoneMax; y++ {
				chunk.Blocks[vec.BlockIndex(x, y, z)] = block.StoneBlockID
			}

			dirtMax := minInt(height-base.Y, vec.ChunkSize)
			for y := maxInt(stoneMax, 0); y < dirtMax; y++ {
				chunk.Blocks[vec.BlockIndex(x, y, z)] = block.DirtBlockID
			}

			if dirtMax >= 0 && dirtMax < vec.ChunkSize {
				chunk.Blocks[vec.BlockIndex(x, dirtMax, z)] = block.GrassBlockID
			}

			if coords.Y == 0 {
				chunk.Blocks[vec.BlockIndex(x, 0, z)] = block.BedrockBlockID
			}

			// Чанки, целиком лежащие ниже уровня моря, заполняются водой
			if coords.Y < SeaLevel/vec.ChunkSize {
				for y := 0; y < vec.ChunkSize; y++ {
					idx := vec.BlockIndex(x, y, z)
					if chunk.Blocks[idx] == block.AirBlockID {
						chunk.Blocks[idx] = block.WaterBlockID
					}
				}
			}
		}
	}

	chunk.UpdateFullness()
	return chunk
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

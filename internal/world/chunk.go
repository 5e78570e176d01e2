package world

import (
	"sync"

	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Chunk представляет кубический участок мира со стороной vec.ChunkSize блоков.
//
// Сетка блоков хранится плоским массивом с раскладкой (y*S+z)*S+x —
// предсказуемая компоновка памяти и для мешинга, и для сериализации.
// Флаг Full поддерживается актуальным при мутациях через SetBlock;
// Geometry после мутации недействительна до пересборки.
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в мире

	Blocks [vec.ChunkVolume]block.BlockID

	// Full == true, когда в сетке нет ни одной пустой ячейки.
	// Используется для среза проверок соседних граней.
	Full bool

	// Geometry — готовые буферы рендера; nil, пока чанк не собран
	Geometry *mesh.Geometry

	Mu sync.RWMutex // Мьютекс для безопасного доступа
}

// NewChunk создаёт пустой чанк с указанными координатами
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{Coords: coords}
}

// BlockAt возвращает блок по локальным координатам без блокировки.
// Реализует mesh.BlockSource; вызывающий обязан держать Mu.
func (c *Chunk) BlockAt(x, y, z int) block.BlockID {
	if !vec.InChunkBounds(x, y, z) {
		return block.AirBlockID
	}
	return c.Blocks[vec.BlockIndex(x, y, z)]
}

// GetBlock возвращает блок по локальным координатам
func (c *Chunk) GetBlock(local vec.Vec3) block.BlockID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.BlockAt(local.X, local.Y, local.Z)
}

// SetBlock устанавливает блок по локальным координатам и поддерживает
// флаг Full в актуальном состоянии. Геометрия после мутации
// недействительна до пересборки.
func (c *Chunk) SetBlock(local vec.Vec3, id block.BlockID) {
	if !vec.InChunkBounds(local.X, local.Y, local.Z) {
		return
	}

	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Blocks[vec.BlockIndex(local.X, local.Y, local.Z)] = id
	if id == block.AirBlockID {
		c.Full = false
	} else {
		c.UpdateFullness()
	}
}

// Offset возвращает глобальное смещение чанка в блоках
func (c *Chunk) Offset() vec.Vec3 {
	return c.Coords.Mul(vec.ChunkSize)
}

// UpdateFullness пересчитывает флаг Full полным проходом по сетке.
// Вызывающий обязан держать Mu.
func (c *Chunk) UpdateFullness() {
	for i := range c.Blocks {
		if c.Blocks[i] == block.AirBlockID {
			c.Full = false
			return
		}
	}
	c.Full = true
}

// BlockCoordsToLocal переводит глобальные координаты блока в локальные
// координаты данного чанка; false, если блок лежит вне чанка.
func (c *Chunk) BlockCoordsToLocal(global vec.Vec3) (vec.Vec3, bool) {
	local := global.Sub(c.Offset())
	if !vec.InChunkBounds(local.X, local.Y, local.Z) {
		return vec.Vec3{}, false
	}
	return local, true
}

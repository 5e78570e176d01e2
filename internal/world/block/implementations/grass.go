package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// GrassBehavior реализует поведение травяного блока (верх рельефа)
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "Grass"
}

// IsTransparent возвращает false, трава непрозрачна
func (b *GrassBehavior) IsTransparent() bool {
	return false
}

// TextureIndex возвращает индекс текстуры в атласе
func (b *GrassBehavior) TextureIndex() int32 {
	return 4
}

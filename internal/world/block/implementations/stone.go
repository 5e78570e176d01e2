package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// IsTransparent возвращает false, камень непрозрачен
func (b *StoneBehavior) IsTransparent() bool {
	return false
}

// TextureIndex возвращает индекс текстуры в атласе
func (b *StoneBehavior) TextureIndex() int32 {
	return 2
}

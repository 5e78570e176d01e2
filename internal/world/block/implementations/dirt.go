package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает имя блока
func (b *DirtBehavior) Name() string {
	return "Dirt"
}

// IsTransparent возвращает false, земля непрозрачна
func (b *DirtBehavior) IsTransparent() bool {
	return false
}

// TextureIndex возвращает индекс текстуры в атласе
func (b *DirtBehavior) TextureIndex() int32 {
	return 3
}

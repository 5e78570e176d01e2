package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// CobblestoneBehavior реализует поведение булыжника (блок, который ставит игрок)
type CobblestoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *CobblestoneBehavior) ID() block.BlockID {
	return block.CobblestoneBlockID
}

// Name возвращает имя блока
func (b *CobblestoneBehavior) Name() string {
	return "Cobblestone"
}

// IsTransparent возвращает false, булыжник непрозрачен
func (b *CobblestoneBehavior) IsTransparent() bool {
	return false
}

// TextureIndex возвращает индекс текстуры в атласе
func (b *CobblestoneBehavior) TextureIndex() int32 {
	return 5
}

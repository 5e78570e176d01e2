package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// WaterBehavior реализует поведение блока воды.
// Вода — анимированный тип: шейдеру нужен отдельный примитив на
// каждый воксель, поэтому мешер никогда не объединяет ячейки воды.
type WaterBehavior struct{}

// ID возвращает идентификатор блока
func (b *WaterBehavior) ID() block.BlockID {
	return block.WaterBlockID
}

// Name возвращает имя блока
func (b *WaterBehavior) Name() string {
	return "Water"
}

// IsTransparent возвращает true: сквозь воду видно дно
func (b *WaterBehavior) IsTransparent() bool {
	return true
}

// TextureIndex возвращает индекс текстуры в атласе
func (b *WaterBehavior) TextureIndex() int32 {
	return 6
}

package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// AirBehavior реализует поведение пустой ячейки
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// IsTransparent возвращает true: воздух всегда прозрачен
func (b *AirBehavior) IsTransparent() bool {
	return true
}

// TextureIndex воздух не рисуется, текстуры нет
func (b *AirBehavior) TextureIndex() int32 {
	return 0
}

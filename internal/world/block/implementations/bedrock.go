package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// BedrockBehavior реализует поведение коренной породы (нижний слой мира)
type BedrockBehavior struct{}

// ID возвращает идентификатор блока
func (b *BedrockBehavior) ID() block.BlockID {
	return block.BedrockBlockID
}

// Name возвращает имя блока
func (b *BedrockBehavior) Name() string {
	return "Bedrock"
}

// IsTransparent возвращает false, порода непрозрачна
func (b *BedrockBehavior) IsTransparent() bool {
	return false
}

// TextureIndex возвращает индекс текстуры в атласе
func (b *BedrockBehavior) TextureIndex() int32 {
	return 1
}

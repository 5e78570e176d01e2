package implementations

import "github.com/annel0/voxel-engine/internal/world/block"

// Регистрируем все типы блоков при импорте пакета
func init() {
	block.Register(block.AirBlockID, &AirBehavior{})
	block.Register(block.BedrockBlockID, &BedrockBehavior{})
	block.Register(block.StoneBlockID, &StoneBehavior{})
	block.Register(block.DirtBlockID, &DirtBehavior{})
	block.Register(block.GrassBlockID, &GrassBehavior{})
	block.Register(block.CobblestoneBlockID, &CobblestoneBehavior{})
	block.Register(block.WaterBlockID, &WaterBehavior{})
}

package block

var registry = make(map[BlockID]Behavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior Behavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (Behavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// IsTransparent возвращает признак прозрачности блока.
// Незарегистрированный ID считается прозрачным (как пустая ячейка).
func IsTransparent(id BlockID) bool {
	if behavior, exists := registry[id]; exists {
		return behavior.IsTransparent()
	}
	return true
}

// TextureIndex возвращает индекс текстуры в атласе для блока
func TextureIndex(id BlockID) int32 {
	if behavior, exists := registry[id]; exists {
		return behavior.TextureIndex()
	}
	return 0
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков. AirBlockID — пустая ячейка сетки.
const (
	AirBlockID         BlockID = iota // 0
	BedrockBlockID                    // 1
	StoneBlockID                      // 2
	DirtBlockID                       // 3
	GrassBlockID                      // 4
	CobblestoneBlockID                // 5
	WaterBlockID                      // 6
)

package block

// Behavior определяет поведение типа блока.
// Блоки не имеют изменяемого состояния: вид блока полностью задаётся его ID.
type Behavior interface {
	ID() BlockID
	Name() string

	// IsTransparent — чистый предикат прозрачности. Граница между
	// блоками разной прозрачности (вода/камень, воздух/камень)
	// считается видимой поверхностью при отсечении граней.
	IsTransparent() bool

	// TextureIndex возвращает индекс текстуры блока в атласе
	TextureIndex() int32
}

package vec

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Размер чанка фиксирован: куб со стороной ChunkSize блоков.
const (
	ChunkShift  = 5                                 // log2 стороны чанка
	ChunkSize   = 1 << ChunkShift                   // 32
	ChunkMask   = ChunkSize - 1                     // 0x1F
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize // 32768
)

// Vec3 представляет трехмерный вектор с целочисленными координатами
type Vec3 struct {
	X int
	Y int
	Z int
}

// ToChunkCoords преобразует глобальные координаты блока в координаты чанка
func (v Vec3) ToChunkCoords() Vec3 {
	return Vec3{X: v.X >> ChunkShift, Y: v.Y >> ChunkShift, Z: v.Z >> ChunkShift}
}

// LocalInChunk возвращает локальные координаты блока внутри его чанка
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: v.X & ChunkMask, Y: v.Y & ChunkMask, Z: v.Z & ChunkMask}
}

// BlockIndex возвращает позицию локальных координат в плоском массиве чанка.
// Раскладка (y*S+z)*S+x: слои по Y, внутри слоя ряды по Z.
func BlockIndex(x, y, z int) int {
	return (y*ChunkSize+z)*ChunkSize + x
}

// InChunkBounds проверяет, что локальные координаты лежат внутри чанка
func InChunkBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub вычитает другой вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul умножает вектор на скаляр
func (v Vec3) Mul(s int) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ToFloat возвращает вектор с плавающими координатами
func (v Vec3) ToFloat() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// String возвращает строковое представление вектора
func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

package geo

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-engine/internal/vec"
)

// AABB — осеориентированный ограничивающий параллелепипед.
// Камера передаёт объём пирамиды видимости тоже как AABB, поэтому
// тест видимости чанка сводится к пересечению двух AABB.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB создаёт AABB по двум противоположным углам
func NewAABB(min, max mgl64.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// ChunkBounds возвращает AABB чанка: от его смещения до смещения + ChunkSize по каждой оси
func ChunkBounds(coords vec.Vec3) AABB {
	min := coords.Mul(vec.ChunkSize).ToFloat()
	return AABB{
		Min: min,
		Max: min.Add(mgl64.Vec3{vec.ChunkSize, vec.ChunkSize, vec.ChunkSize}),
	}
}

// Intersects проверяет пересечение с другим AABB (касание считается пересечением)
func (a AABB) Intersects(other AABB) bool {
	return a.Min.X() <= other.Max.X() && a.Max.X() >= other.Min.X() &&
		a.Min.Y() <= other.Max.Y() && a.Max.Y() >= other.Min.Y() &&
		a.Min.Z() <= other.Max.Z() && a.Max.Z() >= other.Min.Z()
}

// Contains проверяет, что точка лежит внутри AABB
func (a AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Center возвращает центр AABB
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// WithinDistanceXZ — плоская дистанционная отсечка: дешёвый префильтр
// перед тестом пирамиды видимости. Высота (Y) игнорируется.
func (a AABB) WithinDistanceXZ(from mgl64.Vec3, maxDistance float64) bool {
	c := a.Center()
	dx := c.X() - from.X()
	dz := c.Z() - from.Z()
	return dx*dx+dz*dz <= maxDistance*maxDistance
}

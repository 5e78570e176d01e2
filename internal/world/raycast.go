package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Границы трассировки: дистанция — предел выбора блока, счётчик
// шагов — жёсткий предохранитель на случай вырожденного направления.
const (
	RayCastMaxDistance = 64.0
	rayCastMaxSteps    = 512
)

// RayHit — результат трассировки: глобальная координата найденного
// блока и внешняя нормаль грани, через которую вошёл луч.
type RayHit struct {
	Pos    vec.Vec3
	Normal vec.Vec3
}

// RayCast выполняет пошаговый обход вокселей вдоль луча (схема
// Амантидеса–Ву) через GetBlock, прозрачно пересекая границы чанков.
// Любой непустой блок (включая воду) засчитывается как попадание.
// Превышение дистанции — не ошибка: возвращается nil.
func (w *World) RayCast(origin, direction mgl64.Vec3) *RayHit {
	if direction.Len() == 0 {
		return nil
	}
	d := direction.Normalize()

	x := int(math.Floor(origin.X()))
	y := int(math.Floor(origin.Y()))
	z := int(math.Floor(origin.Z()))

	stepX, tMaxX, tDeltaX := raySetup(origin.X(), d.X())
	stepY, tMaxY, tDeltaY := raySetup(origin.Y(), d.Y())
	stepZ, tMaxZ, tDeltaZ := raySetup(origin.Z(), d.Z())

	// Луч, начавшийся внутри блока, не имеет грани входа
	if w.GetBlock(vec.Vec3{X: x, Y: y, Z: z}) != block.AirBlockID {
		return &RayHit{Pos: vec.Vec3{X: x, Y: y, Z: z}}
	}

	var normal vec.Vec3
	for i := 0; i < rayCastMaxSteps; i++ {
		switch {
		case tMaxX < tMaxY && tMaxX < tMaxZ:
			if tMaxX > RayCastMaxDistance {
				return nil
			}
			x += stepX
			tMaxX += tDeltaX
			normal = vec.Vec3{X: -stepX}
		case tMaxY < tMaxZ:
			if tMaxY > RayCastMaxDistance {
				return nil
			}
			y += stepY
			tMaxY += tDeltaY
			normal = vec.Vec3{Y: -stepY}
		default:
			if tMaxZ > RayCastMaxDistance {
				return nil
			}
			z += stepZ
			tMaxZ += tDeltaZ
			normal = vec.Vec3{Z: -stepZ}
		}

		pos := vec.Vec3{X: x, Y: y, Z: z}
		if w.GetBlock(pos) != block.AirBlockID {
			return &RayHit{Pos: pos, Normal: normal}
		}
	}

	return nil
}

// raySetup возвращает знак шага, расстояние до первой границы
// вокселя и шаг расстояния между границами для одной оси.
func raySetup(o, d float64) (step int, tMax, tDelta float64) {
	switch {
	case d > 0:
		step = 1
		tDelta = 1 / d
		tMax = tDelta * (1 - (o - math.Floor(o)))
	case d < 0:
		step = -1
		tDelta = -1 / d
		tMax = tDelta * (o - math.Floor(o))
	default:
		step = 0
		tDelta = math.Inf(1)
		tMax = math.Inf(1)
	}
	return step, tMax, tDelta
}

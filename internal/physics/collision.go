package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// EyeHeight — смещение точки камеры над уровнем ног в блоках.
const EyeHeight = 1.62

// BlockGetter — минимальный доступ к миру, который нужен физике.
// Реализуется миром; незагруженный объём считается пустым.
type BlockGetter interface {
	GetBlock(global vec.Vec3) block.BlockID
}

// Collides сообщает, занята ли ячейка под ногами камеры. Столкновение
// точечное: проверяется единственный блок, содержащий точку ног.
func Collides(w BlockGetter, eye mgl64.Vec3) bool {
	feet := vec.Vec3{
		X: int(math.Floor(eye.X())),
		Y: int(math.Floor(eye.Y() - EyeHeight)),
		Z: int(math.Floor(eye.Z())),
	}
	return w.GetBlock(feet) != block.AirBlockID
}

// ResolveMove применяет смещения к позиции по очереди и откатывает
// каждое, приведшее к столкновению. Покомпонентное разрешение даёт
// скольжение вдоль стен: заблокированная ось не мешает остальным.
func ResolveMove(w BlockGetter, eye mgl64.Vec3, deltas ...mgl64.Vec3) mgl64.Vec3 {
	position := eye
	for _, delta := range deltas {
		next := position.Add(delta)
		if Collides(w, next) {
			continue
		}
		position = next
	}
	return position
}

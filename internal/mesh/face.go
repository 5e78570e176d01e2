package mesh

import "github.com/annel0/voxel-engine/internal/vec"

// FaceFlags — битовая маска видимых граней куба: по одному биту
// на каждую из шести граней (±X, ±Y, ±Z).
type FaceFlags uint8

const (
	FaceNone   FaceFlags = 0
	FaceLeft   FaceFlags = 1 << 0 // -X
	FaceRight  FaceFlags = 1 << 1 // +X
	FaceBottom FaceFlags = 1 << 2 // -Y
	FaceTop    FaceFlags = 1 << 3 // +Y
	FaceBack   FaceFlags = 1 << 4 // -Z
	FaceFront  FaceFlags = 1 << 5 // +Z

	FaceAll = FaceLeft | FaceRight | FaceBottom | FaceTop | FaceBack | FaceFront
)

// Has проверяет, установлен ли бит грани
func (f FaceFlags) Has(face FaceFlags) bool {
	return f&face != 0
}

// Count возвращает количество установленных граней
func (f FaceFlags) Count() int {
	n := 0
	for _, face := range AllFaces {
		if f.Has(face) {
			n++
		}
	}
	return n
}

// AllFaces перечисляет грани в порядке их битов
var AllFaces = [6]FaceFlags{FaceLeft, FaceRight, FaceBottom, FaceTop, FaceBack, FaceFront}

// FaceNormal возвращает внешнюю нормаль грани
func FaceNormal(face FaceFlags) vec.Vec3 {
	switch face {
	case FaceLeft:
		return vec.Vec3{X: -1}
	case FaceRight:
		return vec.Vec3{X: 1}
	case FaceBottom:
		return vec.Vec3{Y: -1}
	case FaceTop:
		return vec.Vec3{Y: 1}
	case FaceBack:
		return vec.Vec3{Z: -1}
	case FaceFront:
		return vec.Vec3{Z: 1}
	}
	return vec.Vec3{}
}

package mesh

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Quad — объединённый прямоугольный участок поверхности внутри одного
// слоя чанка: опорный блок в глобальных координатах, протяжённость по
// X и Z (обе >= 1, высота всегда один блок), OR-маска видимых граней
// и тип блока. Подсвеченный воксель несёт дополнительно нормаль
// грани, на которую смотрит игрок.
type Quad struct {
	Position     vec.Vec3
	DX, DZ       int
	VisibleFaces FaceFlags
	Block        block.BlockID

	Highlighted       bool
	HighlightedNormal vec.Vec3
}

// NewQuad создаёт квад с указанными опорной позицией и протяжённостью
func NewQuad(position vec.Vec3, dx, dz int) Quad {
	return Quad{Position: position, DX: dx, DZ: dz}
}

// AppendGeometry тесселирует квад: каждая установленная грань даёт
// четыре вершины и два треугольника (шесть индексов) с внешней
// нормалью. Позиции вершин — в глобальных координатах чанка.
func (q *Quad) AppendGeometry(g *Geometry) {
	x0 := float32(q.Position.X)
	y0 := float32(q.Position.Y)
	z0 := float32(q.Position.Z)
	x1 := x0 + float32(q.DX)
	y1 := y0 + 1
	z1 := z0 + float32(q.DZ)

	dx := float32(q.DX)
	dz := float32(q.DZ)

	for _, face := range AllFaces {
		if !q.VisibleFaces.Has(face) {
			continue
		}

		var corners [4][3]float32
		var u, v float32
		switch face {
		case FaceLeft:
			corners = [4][3]float32{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}
			u, v = dz, 1
		case FaceRight:
			corners = [4][3]float32{{x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}, {x1, y0, z1}}
			u, v = dz, 1
		case FaceBottom:
			corners = [4][3]float32{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}
			u, v = dx, dz
		case FaceTop:
			corners = [4][3]float32{{x0, y1, z0}, {x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}}
			u, v = dx, dz
		case FaceBack:
			corners = [4][3]float32{{x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}, {x1, y0, z0}}
			u, v = dx, 1
		case FaceFront:
			corners = [4][3]float32{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}
			u, v = dx, 1
		}

		q.appendFace(g, face, corners, u, v)
	}
}

func (q *Quad) appendFace(g *Geometry, face FaceFlags, corners [4][3]float32, u, v float32) {
	n := FaceNormal(face)
	normal := [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}

	// Подсвечивается только грань, на которую смотрит игрок
	highlighted := int32(0)
	if q.Highlighted && n.Equals(q.HighlightedNormal) {
		highlighted = 1
	}

	texCoords := [4][2]float32{{0, 0}, {u, 0}, {u, v}, {0, v}}
	textureID := block.TextureIndex(q.Block)

	base := uint32(len(g.Vertices))
	for i := 0; i < 4; i++ {
		g.Vertices = append(g.Vertices, BlockVertex{
			Position:    corners[i],
			TexCoords:   texCoords[i],
			Normal:      normal,
			Highlighted: highlighted,
			TextureID:   textureID,
		})
	}
	g.Indices = append(g.Indices, base, base+1, base+2, base+2, base+3, base)
}

package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

func TestRayCastStraightDown(t *testing.T) {
	w := NewWorld(1, nil, mesh.NewMesher(1))
	chunk := NewChunk(vec.Vec3{})
	chunk.SetBlock(vec.Vec3{X: 0, Y: 0, Z: 0}, block.StoneBlockID)
	insertChunk(w, chunk)

	hit := w.RayCast(mgl64.Vec3{0.5, 5.5, 0.5}, mgl64.Vec3{0, -1, 0})
	require.NotNil(t, hit)
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 0}, hit.Pos)
	assert.Equal(t, vec.Vec3{Y: 1}, hit.Normal, "луч сверху входит через верхнюю грань")
}

func TestRayCastEntryFaceNormal(t *testing.T) {
	w := NewWorld(1, nil, mesh.NewMesher(1))
	chunk := NewChunk(vec.Vec3{})
	chunk.SetBlock(vec.Vec3{X: 10, Y: 5, Z: 5}, block.StoneBlockID)
	insertChunk(w, chunk)

	// Горизонтальный луч вдоль +X входит через грань -X
	hit := w.RayCast(mgl64.Vec3{0.5, 5.5, 5.5}, mgl64.Vec3{1, 0, 0})
	require.NotNil(t, hit)
	assert.Equal(t, vec.Vec3{X: 10, Y: 5, Z: 5}, hit.Pos)
	assert.Equal(t, vec.Vec3{X: -1}, hit.Normal)

	// Обратный луч входит через грань +X
	hit = w.RayCast(mgl64.Vec3{20.5, 5.5, 5.5}, mgl64.Vec3{-1, 0, 0})
	require.NotNil(t, hit)
	assert.Equal(t, vec.Vec3{X: 1}, hit.Normal)
}

func TestRayCastCrossesChunkBoundary(t *testing.T) {
	w := NewWorld(1, nil, mesh.NewMesher(1))
	neighbor := NewChunk(vec.Vec3{X: 1, Y: 0, Z: 0})
	neighbor.SetBlock(vec.Vec3{X: 8, Y: 5, Z: 0}, block.StoneBlockID)
	insertChunk(w, neighbor)

	hit := w.RayCast(mgl64.Vec3{0.5, 5.5, 0.5}, mgl64.Vec3{1, 0, 0})
	require.NotNil(t, hit)
	assert.Equal(t, vec.Vec3{X: 40, Y: 5, Z: 0}, hit.Pos,
		"трассировка прозрачно пересекает границу чанков")
}

func TestRayCastMiss(t *testing.T) {
	w := NewWorld(1, nil, mesh.NewMesher(1))
	insertChunk(w, NewChunk(vec.Vec3{}))

	// Пустой мир: дистанция исчерпана без попадания
	assert.Nil(t, w.RayCast(mgl64.Vec3{0.5, 5.5, 0.5}, mgl64.Vec3{0, 1, 0}))

	// Блок дальше предельной дистанции не выбирается
	chunk := NewChunk(vec.Vec3{X: 3, Y: 0, Z: 0})
	chunk.SetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, block.StoneBlockID)
	insertChunk(w, chunk)
	assert.Nil(t, w.RayCast(mgl64.Vec3{0.5, 5.5, 0.5}, mgl64.Vec3{1, 0, 0}),
		"блок в 96 блоках лежит за пределом дистанции")

	// Нулевое направление — не паника, а промах
	assert.Nil(t, w.RayCast(mgl64.Vec3{0.5, 5.5, 0.5}, mgl64.Vec3{}))
}

func TestRayCastWaterIsSolidForSelection(t *testing.T) {
	w := NewWorld(1, nil, mesh.NewMesher(1))
	chunk := NewChunk(vec.Vec3{})
	chunk.SetBlock(vec.Vec3{X: 0, Y: 2, Z: 0}, block.WaterBlockID)
	insertChunk(w, chunk)

	hit := w.RayCast(mgl64.Vec3{0.5, 5.5, 0.5}, mgl64.Vec3{0, -1, 0})
	require.NotNil(t, hit)
	assert.Equal(t, block.WaterBlockID, w.GetBlock(hit.Pos))
}

func TestRayCastStartInsideBlock(t *testing.T) {
	w := NewWorld(1, nil, mesh.NewMesher(1))
	insertChunk(w, solidChunk(vec.Vec3{}, block.StoneBlockID))

	hit := w.RayCast(mgl64.Vec3{5.5, 5.5, 5.5}, mgl64.Vec3{0, -1, 0})
	require.NotNil(t, hit)
	assert.Equal(t, vec.Vec3{X: 5, Y: 5, Z: 5}, hit.Pos)
	assert.Equal(t, vec.Vec3{}, hit.Normal, "у луча изнутри блока нет грани входа")
}

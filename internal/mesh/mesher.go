package mesh

import (
	"runtime"
	"sync"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// BlockSource — снимок сетки блоков одного чанка для мешера.
// Доступ только на чтение и только по локальным координатам:
// соседние чанки при отсечении граней не опрашиваются, граница
// чанка всегда считается видимой.
type BlockSource interface {
	BlockAt(x, y, z int) block.BlockID
}

// HighlightedBlock — подсвеченный воксель в локальных координатах
// чанка и нормаль грани, на которую смотрит игрок.
type HighlightedBlock struct {
	Local  vec.Vec3
	Normal vec.Vec3
}

// Mesher строит геометрию чанка жадным слиянием поверхностей.
// Слои по Y независимы и обрабатываются пулом воркеров.
type Mesher struct {
	workers int
}

// NewMesher создаёт мешер с указанным числом воркеров.
// При workers <= 0 берётся число CPU.
func NewMesher(workers int) *Mesher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Mesher{workers: workers}
}

// blockFace — тип блока вместе с маской его видимых граней
type blockFace struct {
	id    block.BlockID
	faces FaceFlags
}

// BuildChunk строит геометрию чанка. offset — глобальное смещение
// чанка в блоках; highlighted — подсвеченный воксель, если он лежит
// в этом чанке. Возвращает геометрию и число эмитированных квадов.
//
// Слои раздаются воркерам через канал; каждый слой пишет только в
// свои ячейки layerGeometry/layerQuads, поэтому блокировки не нужны.
// Порядок завершения слоёв не важен, но результат склеивается по
// порядку Y, чтобы выходной поток был детерминированным.
func (m *Mesher) BuildChunk(src BlockSource, offset vec.Vec3, highlighted *HighlightedBlock) (*Geometry, int) {
	var layerGeometry [vec.ChunkSize]Geometry
	var layerQuads [vec.ChunkSize]int

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range jobs {
				culled, queue := cullLayer(src, y)
				quads := layerToQuads(y, offset, culled, queue, highlighted)
				for i := range quads {
					quads[i].AppendGeometry(&layerGeometry[y])
				}
				layerQuads[y] = len(quads)
			}
		}()
	}
	for y := 0; y < vec.ChunkSize; y++ {
		jobs <- y
	}
	close(jobs)
	wg.Wait()

	geometry := &Geometry{}
	quadCount := 0
	for y := 0; y < vec.ChunkSize; y++ {
		geometry.Append(&layerGeometry[y])
		quadCount += layerQuads[y]
	}
	return geometry, quadCount
}

// visibleFaces возвращает маску видимых граней ячейки. Грань видима,
// если сосед пуст либо его прозрачность отличается от прозрачности
// текущего блока (граница воздух/камень и вода/камень — поверхность).
// Сосед за пределами чанка не опрашивается: грань на границе чанка
// всегда помечается видимой.
func visibleFaces(src BlockSource, x, y, z int) FaceFlags {
	faces := FaceNone
	transparent := block.IsTransparent(src.BlockAt(x, y, z))

	if x == 0 || exposes(src, x-1, y, z, transparent) {
		faces |= FaceLeft
	}
	if x == vec.ChunkSize-1 || exposes(src, x+1, y, z, transparent) {
		faces |= FaceRight
	}
	if y == 0 || exposes(src, x, y-1, z, transparent) {
		faces |= FaceBottom
	}
	if y == vec.ChunkSize-1 || exposes(src, x, y+1, z, transparent) {
		faces |= FaceTop
	}
	if z == 0 || exposes(src, x, y, z-1, transparent) {
		faces |= FaceBack
	}
	if z == vec.ChunkSize-1 || exposes(src, x, y, z+1, transparent) {
		faces |= FaceFront
	}
	return faces
}

func exposes(src BlockSource, x, y, z int, transparent bool) bool {
	id := src.BlockAt(x, y, z)
	return id == block.AirBlockID || block.IsTransparent(id) != transparent
}

// cullLayer — проход отсечения: для каждой занятой ячейки слоя
// считается маска видимых граней; полностью закрытые ячейки
// отбрасываются. Очередь хранит порядок обхода ячеек (x быстрее z).
func cullLayer(src BlockSource, y int) (map[vec.Vec2]blockFace, []vec.Vec2) {
	culled := make(map[vec.Vec2]blockFace)
	queue := make([]vec.Vec2, 0, vec.ChunkSize*vec.ChunkSize/4)

	for z := 0; z < vec.ChunkSize; z++ {
		for x := 0; x < vec.ChunkSize; x++ {
			if src.BlockAt(x, y, z) == block.AirBlockID {
				continue
			}
			faces := visibleFaces(src, x, y, z)
			if faces == FaceNone {
				continue
			}
			cell := vec.Vec2{X: x, Y: z}
			culled[cell] = blockFace{id: src.BlockAt(x, y, z), faces: faces}
			queue = append(queue, cell)
		}
	}
	return culled, queue
}

// layerToQuads — жадное слияние в пределах одного слоя.
//
// Подсвеченная ячейка и вода всегда эмитируются отдельными квадами
// 1x1: им нужен индивидуально адресуемый примитив (подсветка грани,
// анимация воды), слияние это разрушило бы. Остальные ячейки
// расширяются сначала вдоль +X, затем построчно вдоль +Z; ряд
// присоединяется только целиком. Маска граней ячейки, оборвавшей
// расширение, в квад не попадает — слияние никогда не добавляет
// грань, которой не было у вошедших в прямоугольник ячеек.
func layerToQuads(y int, offset vec.Vec3, culled map[vec.Vec2]blockFace, queue []vec.Vec2, highlighted *HighlightedBlock) []Quad {
	var quads []Quad
	visited := make(map[vec.Vec2]struct{})

	isHighlighted := func(x, z int) bool {
		return highlighted != nil && highlighted.Local.Equals(vec.Vec3{X: x, Y: y, Z: z})
	}

	for _, cell := range queue {
		if _, seen := visited[cell]; seen {
			continue
		}
		visited[cell] = struct{}{}

		bf, ok := culled[cell]
		if !ok {
			continue
		}

		x, z := cell.X, cell.Y
		position := offset.Add(vec.Vec3{X: x, Y: y, Z: z})
		quadFaces := bf.faces

		if isHighlighted(x, z) {
			quad := NewQuad(position, 1, 1)
			quad.VisibleFaces = quadFaces
			quad.Block = bf.id
			quad.Highlighted = true
			quad.HighlightedNormal = highlighted.Normal
			quads = append(quads, quad)
			continue
		}

		if bf.id == block.WaterBlockID {
			quad := NewQuad(position, 1, 1)
			quad.VisibleFaces = quadFaces
			quad.Block = bf.id
			quads = append(quads, quad)
			continue
		}

		// Расширение вдоль +X
		xmax := x + 1
		for ; xmax < vec.ChunkSize; xmax++ {
			next := vec.Vec2{X: xmax, Y: z}
			if _, seen := visited[next]; seen || isHighlighted(xmax, z) {
				break
			}
			nbf, ok := culled[next]
			if !ok || nbf.id != bf.id {
				break
			}
			quadFaces |= nbf.faces
			visited[next] = struct{}{}
		}

		// Расширение вдоль +Z: следующий ряд присоединяется только целиком
		zmax := z + 1
	zLoop:
		for ; zmax < vec.ChunkSize; zmax++ {
			rowFaces := FaceNone
			for rx := x; rx < xmax; rx++ {
				next := vec.Vec2{X: rx, Y: zmax}
				if _, seen := visited[next]; seen || isHighlighted(rx, zmax) {
					break zLoop
				}
				nbf, ok := culled[next]
				if !ok || nbf.id != bf.id {
					break zLoop
				}
				rowFaces |= nbf.faces
			}
			quadFaces |= rowFaces
			for rx := x; rx < xmax; rx++ {
				visited[vec.Vec2{X: rx, Y: zmax}] = struct{}{}
			}
		}

		quad := NewQuad(position, xmax-x, zmax-z)
		quad.VisibleFaces = quadFaces
		quad.Block = bf.id
		quads = append(quads, quad)
	}

	return quads
}

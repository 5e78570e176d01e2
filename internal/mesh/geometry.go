package mesh

// BlockVertex — вершина блочной геометрии в том виде, в котором её
// потребляет рендерер: позиция, текстурные координаты, нормаль,
// флаг подсветки и индекс текстуры в атласе.
type BlockVertex struct {
	Position    [3]float32
	TexCoords   [2]float32
	Normal      [3]float32
	Highlighted int32
	TextureID   int32
}

// Geometry — готовые для GPU буферы чанка: список вершин и
// индексный список треугольников.
type Geometry struct {
	Vertices []BlockVertex
	Indices  []uint32
}

// Append дописывает другую геометрию, сдвигая её индексы
func (g *Geometry) Append(other *Geometry) {
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		g.Indices = append(g.Indices, base+idx)
	}
}

// TriangleCount возвращает количество треугольников
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// IsEmpty сообщает, что геометрия не содержит ни одной грани
func (g *Geometry) IsEmpty() bool {
	return len(g.Indices) == 0
}

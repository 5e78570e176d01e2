package world

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/voxel-engine/internal/geo"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"

	// Регистрация стандартного набора блоков.
	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// DefaultViewDistance — горизонтальный радиус отрисовки в блоках.
const DefaultViewDistance = 300.0

// ChunkStore — постоянное хранилище содержимого чанков. Мир не знает,
// как именно сериализуются блоки: он передаёт срез ID и получает его
// обратно. found=false означает, что чанк ещё не сохранялся.
type ChunkStore interface {
	SaveChunk(coords vec.Vec3, blocks []block.BlockID) error
	LoadChunk(coords vec.Vec3) (blocks []block.BlockID, found bool, err error)
}

// HighlightTarget — блок, на который смотрит камера, в глобальных
// координатах, вместе с нормалью выбранной грани.
type HighlightTarget struct {
	Pos    vec.Vec3
	Normal vec.Vec3
}

// World хранит загруженные чанки и управляет их жизненным циклом:
// загрузка из хранилища, процедурная генерация, перестроение
// геометрии и выборка для отрисовки.
type World struct {
	mu          sync.RWMutex // защищает chunks и highlighted
	chunks      map[vec.Vec3]*Chunk
	generator   *WorldGenerator
	store       ChunkStore
	mesher      *mesh.Mesher
	highlighted *HighlightTarget

	viewDistance float64
}

// NewWorld создаёт мир с заданным сидом. store может быть nil — тогда
// все чанки генерируются заново и не сохраняются.
func NewWorld(seed int64, store ChunkStore, mesher *mesh.Mesher) *World {
	if mesher == nil {
		mesher = mesh.NewMesher(0)
	}
	return &World{
		chunks:       make(map[vec.Vec3]*Chunk),
		generator:    NewWorldGenerator(seed),
		store:        store,
		mesher:       mesher,
		viewDistance: DefaultViewDistance,
	}
}

// Seed возвращает сид генератора мира.
func (w *World) Seed() int64 {
	return w.generator.Seed
}

// ChunkAt возвращает загруженный чанк или nil.
func (w *World) ChunkAt(coords vec.Vec3) *Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.chunks[coords]
}

// GetBlock возвращает блок по глобальной координате. Запрос за
// пределами загруженных чанков возвращает воздух, а не ошибку:
// для физики и трассировки незагруженный объём пуст.
func (w *World) GetBlock(global vec.Vec3) block.BlockID {
	chunk := w.ChunkAt(global.ToChunkCoords())
	if chunk == nil {
		return block.AirBlockID
	}
	return chunk.GetBlock(global.LocalInChunk())
}

// SetBlock изменяет блок по глобальной координате и синхронно
// перестраивает геометрию затронутого чанка. Запись за пределами
// загруженных чанков молча игнорируется.
func (w *World) SetBlock(global vec.Vec3, id block.BlockID) {
	coords := global.ToChunkCoords()
	chunk := w.ChunkAt(coords)
	if chunk == nil {
		logging.Debug("SetBlock вне загруженных чанков: %v", global)
		return
	}

	chunk.SetBlock(global.LocalInChunk(), id)
	getMetrics().blocksModified.Inc()
	w.UpdateChunkGeometry(coords)
}

// EnsureChunk гарантирует наличие чанка в памяти: возвращает уже
// загруженный, поднимает из хранилища или генерирует заново.
// Повреждённые данные хранилища — ошибка, а не повод перегенерировать
// чанк: молчаливая подмена сохранённого мира хуже отказа.
func (w *World) EnsureChunk(coords vec.Vec3) (*Chunk, error) {
	if chunk := w.ChunkAt(coords); chunk != nil {
		return chunk, nil
	}

	chunk, err := w.loadOrGenerate(coords)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	// Параллельный EnsureChunk мог успеть раньше
	if existing, ok := w.chunks[coords]; ok {
		w.mu.Unlock()
		return existing, nil
	}
	w.chunks[coords] = chunk
	w.mu.Unlock()

	getMetrics().chunksLoaded.Inc()
	return chunk, nil
}

func (w *World) loadOrGenerate(coords vec.Vec3) (*Chunk, error) {
	if w.store != nil {
		blocks, found, err := w.store.LoadChunk(coords)
		if err != nil {
			return nil, fmt.Errorf("загрузка чанка %v: %w", coords, err)
		}
		if found {
			chunk := NewChunk(coords)
			chunk.Mu.Lock()
			copy(chunk.Blocks[:], blocks)
			chunk.UpdateFullness()
			chunk.Mu.Unlock()
			return chunk, nil
		}
	}
	started := time.Now()
	chunk := w.generator.GenerateChunk(coords)
	logging.LogChunkGenerated(coords.X, coords.Y, coords.Z, float64(time.Since(started).Microseconds())/1000)
	return chunk, nil
}

// UpdateChunkGeometry перестраивает геометрию чанка. Чанк, полностью
// окружённый заполненными соседями, не может показать ни одной грани,
// поэтому дорогой проход мешера для него пропускается.
func (w *World) UpdateChunkGeometry(coords vec.Vec3) {
	chunk := w.ChunkAt(coords)
	if chunk == nil {
		logging.Debug("Перестроение геометрии незагруженного чанка: %v", coords)
		return
	}

	if w.fullySurrounded(chunk) {
		chunk.Mu.Lock()
		chunk.Geometry = &mesh.Geometry{}
		chunk.Mu.Unlock()
		getMetrics().chunksSkipped.Inc()
		return
	}

	highlighted := w.highlightFor(coords)

	started := time.Now()
	chunk.Mu.RLock()
	geometry, quads := w.mesher.BuildChunk(chunk, chunk.Offset(), highlighted)
	chunk.Mu.RUnlock()

	chunk.Mu.Lock()
	chunk.Geometry = geometry
	chunk.Mu.Unlock()

	logging.LogChunkMeshed(coords.X, coords.Y, coords.Z, quads, float64(time.Since(started).Microseconds())/1000)

	m := getMetrics()
	m.chunksMeshed.Inc()
	m.quadsEmitted.Add(float64(quads))
}

// fullySurrounded сообщает, заполнен ли чанк целиком и окружён ли он
// шестью целиком заполненными соседями.
func (w *World) fullySurrounded(chunk *Chunk) bool {
	chunk.Mu.RLock()
	full := chunk.Full
	chunk.Mu.RUnlock()
	if !full {
		return false
	}

	neighbors := [6]vec.Vec3{
		{X: -1}, {X: 1}, {Y: -1}, {Y: 1}, {Z: -1}, {Z: 1},
	}
	for _, delta := range neighbors {
		neighbor := w.ChunkAt(chunk.Coords.Add(delta))
		if neighbor == nil {
			return false
		}
		neighbor.Mu.RLock()
		full := neighbor.Full
		neighbor.Mu.RUnlock()
		if !full {
			return false
		}
	}
	return true
}

// highlightFor переводит глобальную подсветку в локальные координаты
// чанка. Возвращает nil, если подсвеченный блок лежит в другом чанке.
func (w *World) highlightFor(coords vec.Vec3) *mesh.HighlightedBlock {
	w.mu.RLock()
	target := w.highlighted
	w.mu.RUnlock()

	if target == nil || !target.Pos.ToChunkCoords().Equals(coords) {
		return nil
	}
	return &mesh.HighlightedBlock{
		Local:  target.Pos.LocalInChunk(),
		Normal: target.Normal,
	}
}

// UpdateHighlight переносит подсветку на новый блок (nil — снять) и
// перестраивает геометрию затронутых чанков. Неизменившаяся подсветка
// не трогает геометрию: метод вызывается каждый кадр, а перестройка
// нужна максимум двум чанкам — потерявшему подсветку и получившему её.
func (w *World) UpdateHighlight(target *HighlightTarget) {
	w.mu.Lock()
	old := w.highlighted
	if sameHighlight(old, target) {
		w.mu.Unlock()
		return
	}
	w.highlighted = target
	w.mu.Unlock()

	var oldCoords, newCoords *vec.Vec3
	if old != nil {
		c := old.Pos.ToChunkCoords()
		oldCoords = &c
	}
	if target != nil {
		c := target.Pos.ToChunkCoords()
		newCoords = &c
	}

	if oldCoords != nil {
		w.UpdateChunkGeometry(*oldCoords)
	}
	if newCoords != nil && (oldCoords == nil || !oldCoords.Equals(*newCoords)) {
		w.UpdateChunkGeometry(*newCoords)
	}
}

// sameHighlight сравнивает две подсветки по позиции и нормали
func sameHighlight(a, b *HighlightTarget) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Pos.Equals(b.Pos) && a.Normal.Equals(b.Normal)
}

// Highlighted возвращает текущую подсветку (nil, если её нет).
func (w *World) Highlighted() *HighlightTarget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.highlighted
}

// SaveAll сохраняет все загруженные чанки в хранилище. Ошибка по
// одному чанку не прерывает сохранение остальных: возвращается
// последняя встреченная.
func (w *World) SaveAll() error {
	if w.store == nil {
		return nil
	}

	w.mu.RLock()
	chunks := make([]*Chunk, 0, len(w.chunks))
	for _, chunk := range w.chunks {
		chunks = append(chunks, chunk)
	}
	w.mu.RUnlock()

	var lastErr error
	for _, chunk := range chunks {
		chunk.Mu.RLock()
		blocks := make([]block.BlockID, vec.ChunkVolume)
		copy(blocks, chunk.Blocks[:])
		chunk.Mu.RUnlock()

		if err := w.store.SaveChunk(chunk.Coords, blocks); err != nil {
			logging.Error("Сохранение чанка %v: %v", chunk.Coords, err)
			lastErr = err
		}
	}
	return lastErr
}

// VisibleChunks отбирает чанки для отрисовки: AABB чанка пересекает
// объём видимости, чанк не дальше радиуса отрисовки по горизонтали и
// его геометрия не пуста.
func (w *World) VisibleChunks(frustum geo.AABB, viewpoint mgl64.Vec3) []*Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()

	visible := make([]*Chunk, 0, len(w.chunks))
	for _, chunk := range w.chunks {
		bounds := geo.ChunkBounds(chunk.Coords)
		if !bounds.Intersects(frustum) {
			continue
		}
		if !bounds.WithinDistanceXZ(viewpoint, w.viewDistance) {
			continue
		}

		chunk.Mu.RLock()
		geometry := chunk.Geometry
		chunk.Mu.RUnlock()
		if geometry == nil {
			logging.Debug("Отрисовка чанка без собранной геометрии: %v", chunk.Coords)
			continue
		}
		if geometry.IsEmpty() {
			continue
		}
		visible = append(visible, chunk)
	}
	return visible
}

// LoadedChunkCount возвращает число чанков в памяти.
func (w *World) LoadedChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

package vec

import "testing"

// TestToChunkCoords проверяет перевод глобальных координат в координаты чанка
func TestToChunkCoords(t *testing.T) {
	tests := []struct {
		name     string
		global   Vec3
		expected Vec3
	}{
		{"начало координат", Vec3{0, 0, 0}, Vec3{0, 0, 0}},
		{"внутри первого чанка", Vec3{31, 31, 31}, Vec3{0, 0, 0}},
		{"граница следующего чанка", Vec3{32, 32, 32}, Vec3{1, 1, 1}},
		{"отрицательные координаты", Vec3{-1, -1, -1}, Vec3{-1, -1, -1}},
		{"глубоко в отрицательном чанке", Vec3{-32, -33, -64}, Vec3{-1, -2, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.global.ToChunkCoords()
			if !got.Equals(tt.expected) {
				t.Errorf("ToChunkCoords(%v) = %v, ожидалось %v", tt.global, got, tt.expected)
			}
		})
	}
}

// TestLocalInChunk проверяет локальные координаты, в том числе для отрицательных глобальных
func TestLocalInChunk(t *testing.T) {
	tests := []struct {
		global   Vec3
		expected Vec3
	}{
		{Vec3{0, 0, 0}, Vec3{0, 0, 0}},
		{Vec3{33, 5, 70}, Vec3{1, 5, 6}},
		{Vec3{-1, -32, -33}, Vec3{31, 0, 31}},
	}

	for _, tt := range tests {
		got := tt.global.LocalInChunk()
		if !got.Equals(tt.expected) {
			t.Errorf("LocalInChunk(%v) = %v, ожидалось %v", tt.global, got, tt.expected)
		}
	}
}

// TestBlockIndex проверяет плоскую индексацию и её согласованность с границами
func TestBlockIndex(t *testing.T) {
	if got := BlockIndex(0, 0, 0); got != 0 {
		t.Errorf("BlockIndex(0,0,0) = %d, ожидалось 0", got)
	}
	if got := BlockIndex(ChunkSize-1, ChunkSize-1, ChunkSize-1); got != ChunkVolume-1 {
		t.Errorf("BlockIndex края = %d, ожидалось %d", got, ChunkVolume-1)
	}

	// Каждая ячейка даёт уникальный индекс в [0, ChunkVolume)
	seen := make(map[int]bool, ChunkVolume)
	for y := 0; y < ChunkSize; y++ {
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				idx := BlockIndex(x, y, z)
				if idx < 0 || idx >= ChunkVolume {
					t.Fatalf("BlockIndex(%d,%d,%d) = %d вне диапазона", x, y, z, idx)
				}
				if seen[idx] {
					t.Fatalf("BlockIndex(%d,%d,%d) = %d уже встречался", x, y, z, idx)
				}
				seen[idx] = true
			}
		}
	}
}

// TestInChunkBounds проверяет границы локальных координат
func TestInChunkBounds(t *testing.T) {
	if !InChunkBounds(0, 0, 0) || !InChunkBounds(31, 31, 31) {
		t.Error("граничные ячейки должны быть внутри чанка")
	}
	if InChunkBounds(-1, 0, 0) || InChunkBounds(0, 32, 0) || InChunkBounds(0, 0, 32) {
		t.Error("ячейки за пределами чанка не должны проходить проверку")
	}
}

package storage

import (
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// TestWorldStorageChunks тестирует сохранение и загрузку чанков
func TestWorldStorageChunks(t *testing.T) {
	ws, err := NewWorldStorage(t.TempDir())
	if err != nil {
		t.Fatalf("Ошибка открытия хранилища: %v", err)
	}
	defer ws.Close()

	coords := vec.Vec3{X: 1, Y: -2, Z: 3}

	t.Run("Save and Load", func(t *testing.T) {
		blocks := make([]block.BlockID, vec.ChunkVolume)
		blocks[vec.BlockIndex(5, 6, 7)] = block.GrassBlockID

		if err := ws.SaveChunk(coords, blocks); err != nil {
			t.Fatalf("Ошибка сохранения чанка: %v", err)
		}

		loaded, found, err := ws.LoadChunk(coords)
		if err != nil {
			t.Fatalf("Ошибка загрузки чанка: %v", err)
		}
		if !found {
			t.Fatal("Сохранённый чанк не найден")
		}
		if loaded[vec.BlockIndex(5, 6, 7)] != block.GrassBlockID {
			t.Errorf("Содержимое чанка не совпало после загрузки")
		}
	})

	t.Run("Load Non-Existent Chunk", func(t *testing.T) {
		_, found, err := ws.LoadChunk(vec.Vec3{X: 99, Y: 99, Z: 99})
		if err != nil {
			t.Fatalf("Ошибка при загрузке несуществующего чанка: %v", err)
		}
		if found {
			t.Error("Несуществующий чанк найден")
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		blocks := make([]block.BlockID, vec.ChunkVolume)
		blocks[0] = block.CobblestoneBlockID

		if err := ws.SaveChunk(coords, blocks); err != nil {
			t.Fatalf("Ошибка перезаписи чанка: %v", err)
		}

		loaded, found, err := ws.LoadChunk(coords)
		if err != nil || !found {
			t.Fatalf("Ошибка загрузки после перезаписи: %v", err)
		}
		if loaded[0] != block.CobblestoneBlockID {
			t.Error("Перезапись чанка не применилась")
		}
	})
}

// TestWorldStorageMeta тестирует паспорт мира
func TestWorldStorageMeta(t *testing.T) {
	dir := t.TempDir()

	ws, err := NewWorldStorage(dir)
	if err != nil {
		t.Fatalf("Ошибка открытия хранилища: %v", err)
	}

	meta, err := ws.EnsureMeta(12345)
	if err != nil {
		t.Fatalf("Ошибка создания паспорта: %v", err)
	}
	if meta.Seed != 12345 {
		t.Errorf("Сид паспорта = %d, ожидалось 12345", meta.Seed)
	}

	// Повторное открытие: сид из аргумента игнорируется
	if err := ws.Close(); err != nil {
		t.Fatalf("Ошибка закрытия хранилища: %v", err)
	}
	ws, err = NewWorldStorage(dir)
	if err != nil {
		t.Fatalf("Ошибка повторного открытия: %v", err)
	}
	defer ws.Close()

	again, err := ws.EnsureMeta(99999)
	if err != nil {
		t.Fatalf("Ошибка чтения паспорта: %v", err)
	}
	if again.Seed != 12345 {
		t.Errorf("Сид после переоткрытия = %d, ожидалось 12345", again.Seed)
	}
	if again.ID != meta.ID {
		t.Errorf("ID мира изменился после переоткрытия")
	}
}

// TestWorldStorageClosed проверяет реакцию на работу после Close
func TestWorldStorageClosed(t *testing.T) {
	ws, err := NewWorldStorage(t.TempDir())
	if err != nil {
		t.Fatalf("Ошибка открытия хранилища: %v", err)
	}
	if err := ws.Close(); err != nil {
		t.Fatalf("Ошибка закрытия: %v", err)
	}

	if err := ws.SaveChunk(vec.Vec3{}, make([]block.BlockID, vec.ChunkVolume)); err == nil {
		t.Error("Сохранение в закрытое хранилище должно возвращать ошибку")
	}
	if _, _, err := ws.LoadChunk(vec.Vec3{}); err == nil {
		t.Error("Чтение из закрытого хранилища должно возвращать ошибку")
	}
	// Повторный Close безопасен
	if err := ws.Close(); err != nil {
		t.Errorf("Повторный Close вернул ошибку: %v", err)
	}
}

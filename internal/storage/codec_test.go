package storage

import (
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// TestCodecRoundTrip проверяет симметричность кодека чанков
func TestCodecRoundTrip(t *testing.T) {
	blocks := make([]block.BlockID, vec.ChunkVolume)
	for i := range blocks {
		blocks[i] = block.BlockID(i % 7) // все зарегистрированные блоки
	}

	data, err := EncodeBlocks(blocks)
	if err != nil {
		t.Fatalf("Ошибка кодирования: %v", err)
	}

	decoded, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("Ошибка декодирования: %v", err)
	}

	for i := range blocks {
		if decoded[i] != blocks[i] {
			t.Fatalf("Ячейка %d: ожидалось %d, получено %d", i, blocks[i], decoded[i])
		}
	}
}

// TestCodecDeterminism проверяет, что одинаковое содержимое кодируется одинаково
func TestCodecDeterminism(t *testing.T) {
	blocks := make([]block.BlockID, vec.ChunkVolume)
	for i := range blocks {
		blocks[i] = block.StoneBlockID
	}

	a, err := EncodeBlocks(blocks)
	if err != nil {
		t.Fatalf("Ошибка кодирования: %v", err)
	}
	b, err := EncodeBlocks(blocks)
	if err != nil {
		t.Fatalf("Ошибка кодирования: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("Кодирование недетерминировано: %d и %d байт", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Кодирование недетерминировано: байт %d различается", i)
		}
	}
}

// TestCodecRejectsCorruptData проверяет, что повреждённые данные — ошибка
func TestCodecRejectsCorruptData(t *testing.T) {
	t.Run("неверная длина среза", func(t *testing.T) {
		if _, err := EncodeBlocks(make([]block.BlockID, 100)); err == nil {
			t.Error("кодирование неполного чанка должно возвращать ошибку")
		}
	})

	t.Run("пустые данные", func(t *testing.T) {
		if _, err := DecodeBlocks(nil); err == nil {
			t.Error("декодирование пустых данных должно возвращать ошибку")
		}
	})

	t.Run("неизвестная версия формата", func(t *testing.T) {
		blocks := make([]block.BlockID, vec.ChunkVolume)
		data, err := EncodeBlocks(blocks)
		if err != nil {
			t.Fatalf("Ошибка кодирования: %v", err)
		}
		data[0] = 0xFF
		if _, err := DecodeBlocks(data); err == nil {
			t.Error("декодирование чужой версии должно возвращать ошибку")
		}
	})

	t.Run("мусор вместо zstd", func(t *testing.T) {
		if _, err := DecodeBlocks([]byte{codecVersion, 1, 2, 3, 4}); err == nil {
			t.Error("декодирование мусора должно возвращать ошибку")
		}
	})

	t.Run("незарегистрированный блок", func(t *testing.T) {
		blocks := make([]block.BlockID, vec.ChunkVolume)
		blocks[42] = block.BlockID(60000)
		data, err := EncodeBlocks(blocks)
		if err != nil {
			t.Fatalf("Ошибка кодирования: %v", err)
		}
		if _, err := DecodeBlocks(data); err == nil {
			t.Error("неизвестный ID блока должен отвергаться при декодировании")
		}
	})
}

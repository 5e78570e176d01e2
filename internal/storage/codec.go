package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"

	// Регистрация стандартного набора блоков для валидации при декодировании.
	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// codecVersion — версия бинарного формата чанка. Меняется при любой
// несовместимой правке раскладки.
const codecVersion byte = 1

// Кодек один на процесс: zstd-энкодер и декодер безопасны для
// конкурентного использования через EncodeAll/DecodeAll.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("инициализация zstd-энкодера: %v", err))
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("инициализация zstd-декодера: %v", err))
	}
}

// EncodeBlocks сериализует содержимое чанка: байт версии, затем
// zstd-сжатый массив из ChunkVolume идентификаторов (uint16 LE).
// Плоская раскладка чанка делает формат детерминированным: одно и
// то же содержимое всегда даёт один и тот же ключ-значение.
func EncodeBlocks(blocks []block.BlockID) ([]byte, error) {
	if len(blocks) != vec.ChunkVolume {
		return nil, fmt.Errorf("кодирование чанка: ожидалось %d блоков, получено %d", vec.ChunkVolume, len(blocks))
	}

	raw := make([]byte, vec.ChunkVolume*2)
	for i, id := range blocks {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(id))
	}

	out := make([]byte, 1, 1+len(raw)/2)
	out[0] = codecVersion
	return zstdEncoder.EncodeAll(raw, out), nil
}

// DecodeBlocks восстанавливает содержимое чанка из сериализованного
// представления. Любое расхождение формата — ошибка: повреждённый
// чанк нельзя молча принять за пустой.
func DecodeBlocks(data []byte) ([]block.BlockID, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("декодирование чанка: пустые данные")
	}
	if data[0] != codecVersion {
		return nil, fmt.Errorf("декодирование чанка: неизвестная версия формата %d", data[0])
	}

	raw, err := zstdDecoder.DecodeAll(data[1:], make([]byte, 0, vec.ChunkVolume*2))
	if err != nil {
		return nil, fmt.Errorf("декодирование чанка: распаковка zstd: %w", err)
	}
	if len(raw) != vec.ChunkVolume*2 {
		return nil, fmt.Errorf("декодирование чанка: ожидалось %d байт, получено %d", vec.ChunkVolume*2, len(raw))
	}

	blocks := make([]block.BlockID, vec.ChunkVolume)
	for i := range blocks {
		id := block.BlockID(binary.LittleEndian.Uint16(raw[i*2:]))
		if !block.IsValidBlockID(id) {
			return nil, fmt.Errorf("декодирование чанка: неизвестный блок %d в ячейке %d", id, i)
		}
		blocks[i] = id
	}
	return blocks, nil
}

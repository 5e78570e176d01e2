package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

const metaKey = "world:meta"

// WorldStorage — постоянное хранилище мира поверх BadgerDB. Чанки
// лежат под ключами "chunk:x:y:z", метаданные мира — под "world:meta".
type WorldStorage struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// WorldMeta — паспорт мира. Сид фиксируется при первом запуске:
// процедурная генерация обязана выдавать те же чанки между сессиями.
type WorldMeta struct {
	ID        uuid.UUID `json:"id"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWorldStorage открывает (или создаёт) хранилище мира в dataPath.
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &WorldStorage{
		db:      db,
		dbPath:  dbPath,
		isReady: true,
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	return ws.db.Close()
}

func chunkKey(coords vec.Vec3) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d:%d", coords.X, coords.Y, coords.Z))
}

// SaveChunk сериализует и записывает содержимое чанка.
func (ws *WorldStorage) SaveChunk(coords vec.Vec3, blocks []block.BlockID) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	data, err := EncodeBlocks(blocks)
	if err != nil {
		return err
	}

	err = ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chunkKey(coords), data)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// LoadChunk читает содержимое чанка. Отсутствие записи — штатный
// случай (found=false), ошибка декодирования — нет.
func (ws *WorldStorage) LoadChunk(coords vec.Vec3) ([]block.BlockID, bool, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, false, fmt.Errorf("хранилище не готово")
	}

	var data []byte
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	blocks, err := DecodeBlocks(data)
	if err != nil {
		return nil, false, err
	}
	return blocks, true, nil
}

// EnsureMeta возвращает паспорт мира, создавая его при первом запуске
// с переданным сидом. При последующих запусках сид берётся из паспорта
// и аргумент игнорируется.
func (ws *WorldStorage) EnsureMeta(seed int64) (*WorldMeta, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	var meta *WorldMeta
	err := ws.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if err == nil {
			return item.Value(func(val []byte) error {
				meta = &WorldMeta{}
				return json.Unmarshal(val, meta)
			})
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		meta = &WorldMeta{
			ID:        uuid.New(),
			Seed:      seed,
			CreatedAt: time.Now().UTC(),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return txn.Set([]byte(metaKey), data)
	})
	if err != nil {
		return nil, fmt.Errorf("метаданные мира: %w", err)
	}
	return meta, nil
}

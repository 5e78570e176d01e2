package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/storage"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	logging.Info("🧊 Запуск Voxel Engine...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	dataPath := cfg.World.GetDataPath()
	viewRadius := cfg.World.GetViewRadius()
	metricsPort := cfg.Metrics.GetPort()
	logging.Info("📡 Конфигурация: data=%s, радиус=%d чанков, метрики=:%d", dataPath, viewRadius, metricsPort)

	// === ХРАНИЛИЩЕ ===
	logging.Debug("Открытие хранилища мира...")
	store, err := storage.NewWorldStorage(dataPath)
	if err != nil {
		logging.Error("❌ Ошибка открытия хранилища: %v", err)
		log.Fatalf("❌ Ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	// Сид нового мира берётся из конфигурации, существующего — из паспорта
	meta, err := store.EnsureMeta(cfg.World.GetSeed())
	if err != nil {
		logging.Error("❌ Ошибка чтения паспорта мира: %v", err)
		log.Fatalf("❌ Ошибка чтения паспорта мира: %v", err)
	}
	logging.Info("🌍 Мир %s, сид %d, создан %s", meta.ID, meta.Seed, meta.CreatedAt.Format(time.RFC3339))

	// === МИР ===
	mesher := mesh.NewMesher(cfg.Mesher.GetWorkers())
	w := world.NewWorld(meta.Seed, store, mesher)

	// Предзагрузка столба чанков вокруг точки старта: поверхность
	// лежит у y=128, то есть в чанках с Y около 4
	logging.Info("⏳ Предзагрузка чанков (радиус %d)...", viewRadius)
	start := time.Now()
	loaded := 0
	for cy := 3; cy <= 5; cy++ {
		for cz := -viewRadius; cz <= viewRadius; cz++ {
			for cx := -viewRadius; cx <= viewRadius; cx++ {
				coords := vec.Vec3{X: cx, Y: cy, Z: cz}
				if _, err := w.EnsureChunk(coords); err != nil {
					logging.Error("❌ Ошибка загрузки чанка %v: %v", coords, err)
					log.Fatalf("❌ Ошибка загрузки чанка %v: %v", coords, err)
				}
				loaded++
			}
		}
	}
	for cy := 3; cy <= 5; cy++ {
		for cz := -viewRadius; cz <= viewRadius; cz++ {
			for cx := -viewRadius; cx <= viewRadius; cx++ {
				w.UpdateChunkGeometry(vec.Vec3{X: cx, Y: cy, Z: cz})
			}
		}
	}
	logging.Info("✅ Загружено %d чанков за %v", loaded, time.Since(start).Round(time.Millisecond))

	// === МЕТРИКИ ===
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf(":%d", metricsPort)
		logging.Info("📊 Prometheus метрики на %s/metrics", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logging.Error("Ошибка сервера метрик: %v", err)
		}
	}()

	// === АВТОСОХРАНЕНИЕ ===
	autosave := time.NewTicker(time.Duration(cfg.World.GetAutosaveInterval()) * time.Second)
	defer autosave.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logging.Info("✅ Движок запущен, %d чанков в памяти", w.LoadedChunkCount())

	for {
		select {
		case <-autosave.C:
			if err := w.SaveAll(); err != nil {
				logging.Error("Ошибка автосохранения: %v", err)
			} else {
				logging.Debug("Автосохранение завершено")
			}
		case sig := <-sigCh:
			logging.Info("🛑 Получен сигнал %v, сохранение мира...", sig)
			if err := w.SaveAll(); err != nil {
				logging.Error("❌ Ошибка финального сохранения: %v", err)
			}
			logging.Info("👋 Остановка завершена")
			return
		}
	}
}

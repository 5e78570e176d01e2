package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации движка.

type Config struct {
	World   WorldConfig   `yaml:"world"`
	Mesher  MesherConfig  `yaml:"mesher"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type WorldConfig struct {
	Seed             int64  `yaml:"seed"`
	DataPath         string `yaml:"data_path"`
	ViewRadius       int    `yaml:"view_radius_chunks"`
	AutosaveInterval int    `yaml:"autosave_interval_seconds"`
}

type MesherConfig struct {
	Workers int `yaml:"workers"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

// GetSeed возвращает сид мира с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("VOXEL_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 1
}

// GetDataPath возвращает каталог хранилища мира с поддержкой fallback значений
func (w *WorldConfig) GetDataPath() string {
	if w.DataPath != "" {
		return w.DataPath
	}
	if envVal := os.Getenv("VOXEL_DATA_PATH"); envVal != "" {
		return envVal
	}
	return "data"
}

// GetViewRadius возвращает радиус предзагрузки чанков вокруг точки старта
func (w *WorldConfig) GetViewRadius() int {
	if w.ViewRadius > 0 {
		return w.ViewRadius
	}
	return 4
}

// GetAutosaveInterval возвращает период автосохранения в секундах
func (w *WorldConfig) GetAutosaveInterval() int {
	if w.AutosaveInterval > 0 {
		return w.AutosaveInterval
	}
	return 60
}

// GetWorkers возвращает число воркеров мешера (0 — по числу ядер)
func (m *MesherConfig) GetWorkers() int {
	if m.Workers > 0 {
		return m.Workers
	}
	if envVal := os.Getenv("VOXEL_MESHER_WORKERS"); envVal != "" {
		if workers, err := strconv.Atoi(envVal); err == nil && workers > 0 {
			return workers
		}
	}
	return 0
}

// GetPort возвращает порт Prometheus метрик с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getPortWithEnvFallback(m.Port, "VOXEL_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

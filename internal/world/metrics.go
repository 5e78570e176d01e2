package world

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// worldMetrics — Prometheus-метрики мира. Регистрация в глобальном
// регистре выполняется ровно один раз, поэтому несколько экземпляров
// World (в том числе в тестах) делят один набор коллекторов.
type worldMetrics struct {
	chunksMeshed   prometheus.Counter
	chunksSkipped  prometheus.Counter
	quadsEmitted   prometheus.Counter
	chunksLoaded   prometheus.Gauge
	blocksModified prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *worldMetrics
)

func getMetrics() *worldMetrics {
	metricsOnce.Do(func() {
		metrics = &worldMetrics{
			chunksMeshed: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "world",
				Name:      "chunks_meshed_total",
				Help:      "Общее число построенных геометрий чанков.",
			}),
			chunksSkipped: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "world",
				Name:      "chunks_mesh_skipped_total",
				Help:      "Чанков, пропущенных оптимизацией полного окружения.",
			}),
			quadsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "world",
				Name:      "quads_emitted_total",
				Help:      "Общее число квадов, выданных жадным мешером.",
			}),
			chunksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "world",
				Name:      "chunks_loaded",
				Help:      "Количество чанков, находящихся в памяти.",
			}),
			blocksModified: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "world",
				Name:      "blocks_modified_total",
				Help:      "Общее число операций изменения блока.",
			}),
		}
		prometheus.MustRegister(
			metrics.chunksMeshed,
			metrics.chunksSkipped,
			metrics.quadsEmitted,
			metrics.chunksLoaded,
			metrics.blocksModified,
		)
	})
	return metrics
}

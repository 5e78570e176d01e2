package util

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseField2D — чистая функция когерентного шума (global_x, global_z) -> значение.
// Генерация чанков зависит только от таких функций и координат чанка,
// поэтому повторная генерация одного и того же чанка детерминирована.
type NoiseField2D interface {
	At(x, z float64) float64
}

type perlinField struct {
	noise *perlin.Perlin
	scale float64
}

// NewPerlinField создаёт поле шума Перлина с указанным сидом.
// Значения нормированы в диапазон [-1, 1], scale задаёт частоту по блокам.
func NewPerlinField(seed int64, scale float64) NoiseField2D {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &perlinField{
		noise: perlin.NewPerlin(alpha, beta, n, seed),
		scale: scale,
	}
}

// At возвращает значение шума для глобальных координат столбца
func (f *perlinField) At(x, z float64) float64 {
	return f.noise.Noise2D(x*f.scale, z*f.scale)
}

type simplexField struct {
	noise opensimplex.Noise
	scale float64
}

// NewSimplexField создаёт поле симплекс-шума с указанным сидом.
// Используется как второе, независимое от рельефа поле (глубина камня).
func NewSimplexField(seed int64, scale float64) NoiseField2D {
	return &simplexField{
		noise: opensimplex.New(seed),
		scale: scale,
	}
}

// At возвращает значение шума для глобальных координат столбца
func (f *simplexField) At(x, z float64) float64 {
	return f.noise.Eval2(x*f.scale, z*f.scale)
}

package vec

// Vec2 представляет 2D координаты (пара целых чисел).
// В мешере используется как ключ ячейки слоя: X — колонка, Y — ряд (ось Z).
type Vec2 struct {
	X, Y int
}

// component/movement.go
package component

// Vector2 — позиция или направление на плоскости
type Vector2 struct {
	X, Y float64
}

// NewVector2 создаёт вектор с заданными компонентами
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Set заменяет обе компоненты
func (v *Vector2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// SetX меняет только X, Y остаётся прежним
func (v *Vector2) SetX(x float64) {
	v.X = x
}

// SetY меняет только Y, X остаётся прежним
func (v *Vector2) SetY(y float64) {
	v.Y = y
}

// Add сдвигает вектор на (dx, dy)
func (v *Vector2) Add(dx, dy float64) {
	v.X += dx
	v.Y += dy
}

// Scaled возвращает копию, умноженную на k
func (v Vector2) Scaled(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

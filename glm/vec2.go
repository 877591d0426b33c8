package glm

type Vec2[T numeric] [2]T

// Area returns the product of both components, e.g. the number
// of pixels of a surface with this size.
func (lhs Vec2[T]) Area() T {
	return lhs[0] * lhs[1]
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

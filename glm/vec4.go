package glm

type Vec4[T numeric] [4]T

// ToWGPU widens the components to the float64 values
// webgpu expects for clear colors.
func (lhs Vec4[T]) ToWGPU() [4]float64 {
	return [4]float64{
		float64(lhs[0]),
		float64(lhs[1]),
		float64(lhs[2]),
		float64(lhs[3]),
	}
}

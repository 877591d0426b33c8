package glm

// numeric are the component types vectors can hold
type numeric interface {
	~float32 | ~float64 | ~uint32
}

type Vec2u = Vec2[uint32]

type Vec4f = Vec4[float32]

package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PointRadius is the drawn size of a point.
	PointRadius = 4
	StickWidth  = 4
	FloorWidth  = 2

	DefaultScene = "playground.yaml"
)

package common

const (
	BaseWidth  = 640
	BaseHeight = 480
)

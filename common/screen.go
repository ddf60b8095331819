package common

const (
	BaseWidth  = 1920
	BaseHeight = 1080
)

package component

// Action is a discrete input the simulation reads each frame.
type Action uint8

const (
	ActionForward Action = iota + 1
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionRotateLeft
	ActionRotateRight
	ActionZoomIn
	ActionZoomOut
	ActionToggleDebug
)

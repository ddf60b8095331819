package system

import (
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
)

// CameraSystem eases the camera toward the ship and counter-rotates it so
// the ship's nose stays up.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	_, rec, ok := w.Player()
	if !ok {
		return
	}
	p, _ := rec.Player()
	cam := w.Camera()

	t := cam.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	cam.Target = common.LerpVector(cam.Target, rec.Transform.Position(), t)
	cam.Rotation = -rec.Transform.Rotation
	cam.Zoom = p.Zoom
}

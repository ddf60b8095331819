package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

const (
	defaultIterations  = 10
	defaultMaxSubsteps = 8
)

// Server owns the Chipmunk space plus every body and collider in it. Only
// the entity store (spawn/remove) and Step mutate it.
type Server struct {
	space         *cp.Space
	iterations    int
	maxSubsteps   int
	handlersReady bool
	stepping      bool

	bodies    arena[*bodyEntry]
	colliders arena[*colliderEntry]
	shapes    map[*cp.Shape]ColliderHandle

	player    ColliderHandle
	hasPlayer bool

	events eventBuffer

	playerIntersected bool
	lastIntersected   ColliderHandle
}

type bodyEntry struct {
	body      *cp.Body
	kind      BodyKind
	tag       int
	hasTag    bool
	mass      float64
	moment    float64
	minRadius float64
	colliders []ColliderHandle
}

type colliderEntry struct {
	shape *cp.Shape
	body  BodyHandle
	desc  ColliderDesc
}

// Config tunes the solver.
type Config struct {
	Iterations  int
	MaxSubsteps int
}

func NewServer(cfg Config) *Server {
	if cfg.Iterations <= 0 {
		cfg.Iterations = defaultIterations
	}
	if cfg.MaxSubsteps <= 0 {
		cfg.MaxSubsteps = defaultMaxSubsteps
	}
	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{})

	s := &Server{
		space:       space,
		iterations:  cfg.Iterations,
		maxSubsteps: cfg.MaxSubsteps,
		shapes:      make(map[*cp.Shape]ColliderHandle),
	}
	s.setupHandlers()
	return s
}

// Space exposes the Chipmunk space for debug drawing only.
func (s *Server) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

func (s *Server) assertNotStepping(op string) {
	if s.stepping {
		panic("physics: " + op + " during step")
	}
}

// CreateBody adds a body without colliders.
func (s *Server) CreateBody(desc BodyDesc) BodyHandle {
	s.assertNotStepping("create body")

	var body *cp.Body
	if desc.Kind == Dynamic {
		// Mass and moment are replaced as colliders are attached.
		body = cp.NewBody(1, 1)
	} else {
		body = cp.NewStaticBody()
	}
	body.SetPosition(desc.Position)
	body.SetAngle(desc.Rotation)
	if desc.Kind == Dynamic {
		body.SetVelocityVector(desc.LinearVelocity)
		body.SetAngularVelocity(desc.AngularVelocity)
	}
	s.space.AddBody(body)

	entry := &bodyEntry{
		body:      body,
		kind:      desc.Kind,
		tag:       desc.Tag,
		hasTag:    desc.HasTag,
		minRadius: math.Inf(1),
	}
	idx, gen := s.bodies.insert(entry)
	h := BodyHandle{index: idx, gen: gen}
	body.UserData = h
	return h
}

// AttachCollider creates a collider on body b. Non-sensor colliders add
// density*area to the body's mass.
func (s *Server) AttachCollider(b BodyHandle, desc ColliderDesc) ColliderHandle {
	s.assertNotStepping("attach collider")
	be := s.body(b)

	shape := desc.newShape(be.body)
	shape.SetSensor(desc.Sensor)
	shape.SetElasticity(desc.Elasticity)
	shape.SetFriction(desc.Friction)
	role := desc.Role
	if role == 0 {
		role = RoleSolid
	}
	if desc.Sensor {
		role = RoleSensor
	}
	desc.Role = role
	shape.SetCollisionType(role.collisionType())

	if m := desc.Mass(); m > 0 {
		be.mass += m
		be.moment += desc.moment(m)
		if be.kind == Dynamic {
			be.body.SetMass(be.mass)
			be.body.SetMoment(be.moment)
		}
	}
	if !desc.Sensor {
		if r := desc.boundingRadius(); r > 0 && r < be.minRadius {
			be.minRadius = r
		}
	}

	s.space.AddShape(shape)

	idx, gen := s.colliders.insert(&colliderEntry{shape: shape, body: b, desc: desc})
	h := ColliderHandle{index: idx, gen: gen}
	s.shapes[shape] = h
	be.colliders = append(be.colliders, h)
	return h
}

// RemoveBody releases b and every collider attached to it.
func (s *Server) RemoveBody(b BodyHandle) {
	s.assertNotStepping("remove body")
	be := s.body(b)
	for _, c := range be.colliders {
		ce, ok := s.colliders.get(c.index, c.gen)
		if !ok {
			continue
		}
		s.space.RemoveShape(ce.shape)
		delete(s.shapes, ce.shape)
		s.colliders.remove(c.index, c.gen)
		if s.hasPlayer && s.player == c {
			s.hasPlayer = false
			s.player = ColliderHandle{}
		}
	}
	s.space.RemoveBody(be.body)
	s.bodies.remove(b.index, b.gen)
}

// SetPlayerCollider marks the collider whose sensor exits raise the
// player-intersected flag.
func (s *Server) SetPlayerCollider(c ColliderHandle) {
	s.collider(c)
	s.player = c
	s.hasPlayer = true
}

func (s *Server) PlayerCollider() (ColliderHandle, bool) {
	return s.player, s.hasPlayer
}

// Step advances the simulation by dt and returns every event raised while
// stepping. Fast bodies split the step into substeps so they cannot skip
// through a collider thinner than themselves.
func (s *Server) Step(dt float64) []Event {
	if dt <= 0 {
		return s.events.drain()
	}
	s.playerIntersected = false
	s.lastIntersected = ColliderHandle{}

	n := s.substeps(dt)
	forces := s.captureForces()

	s.stepping = true
	defer func() { s.stepping = false }()

	sub := dt / float64(n)
	for i := 0; i < n; i++ {
		for body, f := range forces {
			body.SetForce(f)
		}
		s.space.Step(sub)
	}
	for body := range forces {
		body.SetForce(cp.Vector{})
	}
	return s.events.drain()
}

// PlayerIntersection reports whether the player stopped intersecting a
// sensor during the most recent step, and which sensor. It is reset by the
// next Step.
func (s *Server) PlayerIntersection() (ColliderHandle, bool) {
	return s.lastIntersected, s.playerIntersected
}

func (s *Server) substeps(dt float64) int {
	n := 1
	for i := range s.bodies.slots {
		sl := &s.bodies.slots[i]
		if !sl.alive || sl.value.kind != Dynamic || math.IsInf(sl.value.minRadius, 1) {
			continue
		}
		travel := sl.value.body.Velocity().Length() * dt
		need := int(math.Ceil(travel / sl.value.minRadius))
		if need > n {
			n = need
		}
	}
	if n > s.maxSubsteps {
		n = s.maxSubsteps
	}
	return n
}

func (s *Server) captureForces() map[*cp.Body]cp.Vector {
	forces := make(map[*cp.Body]cp.Vector)
	for i := range s.bodies.slots {
		sl := &s.bodies.slots[i]
		if !sl.alive || sl.value.kind != Dynamic {
			continue
		}
		forces[sl.value.body] = sl.value.body.Force()
	}
	return forces
}

func (s *Server) body(h BodyHandle) *bodyEntry {
	be, ok := s.bodies.get(h.index, h.gen)
	if !ok {
		panic(fmt.Sprintf("physics: stale %s", h))
	}
	return be
}

func (s *Server) collider(h ColliderHandle) *colliderEntry {
	ce, ok := s.colliders.get(h.index, h.gen)
	if !ok {
		panic(fmt.Sprintf("physics: stale %s", h))
	}
	return ce
}

// ContainsBody reports whether h still resolves.
func (s *Server) ContainsBody(h BodyHandle) bool {
	_, ok := s.bodies.get(h.index, h.gen)
	return ok
}

// ContainsCollider reports whether h still resolves.
func (s *Server) ContainsCollider(h ColliderHandle) bool {
	_, ok := s.colliders.get(h.index, h.gen)
	return ok
}

func (s *Server) BodyCount() int {
	return s.bodies.len()
}

func (s *Server) ColliderCount() int {
	return s.colliders.len()
}

func (s *Server) Kind(h BodyHandle) BodyKind {
	return s.body(h).kind
}

// Tag returns the body's integer tag, if it has one.
func (s *Server) Tag(h BodyHandle) (int, bool) {
	be := s.body(h)
	return be.tag, be.hasTag
}

func (s *Server) Position(h BodyHandle) cp.Vector {
	return s.body(h).body.Position()
}

// SetPosition teleports a dynamic body. Contacts are re-evaluated on the
// next step.
func (s *Server) SetPosition(h BodyHandle, p cp.Vector) {
	s.assertNotStepping("set position")
	be := s.body(h)
	if be.kind != Dynamic {
		return
	}
	be.body.SetPosition(p)
	s.space.ReindexShapesForBody(be.body)
}

func (s *Server) Rotation(h BodyHandle) float64 {
	return s.body(h).body.Angle()
}

func (s *Server) LinearVelocity(h BodyHandle) cp.Vector {
	be := s.body(h)
	if be.kind != Dynamic {
		return cp.Vector{}
	}
	return be.body.Velocity()
}

func (s *Server) SetLinearVelocity(h BodyHandle, v cp.Vector) {
	be := s.body(h)
	if be.kind != Dynamic {
		return
	}
	be.body.SetVelocityVector(v)
}

func (s *Server) AngularVelocity(h BodyHandle) float64 {
	be := s.body(h)
	if be.kind != Dynamic {
		return 0
	}
	return be.body.AngularVelocity()
}

func (s *Server) SetAngularVelocity(h BodyHandle, w float64) {
	be := s.body(h)
	if be.kind != Dynamic {
		return
	}
	be.body.SetAngularVelocity(w)
}

// Mass is the summed density*area of the body's colliders, for static
// bodies as well as dynamic ones.
func (s *Server) Mass(h BodyHandle) float64 {
	return s.body(h).mass
}

// SetForce replaces the force applied to a dynamic body during the next
// step. Static bodies ignore forces.
func (s *Server) SetForce(h BodyHandle, f cp.Vector) {
	be := s.body(h)
	if be.kind != Dynamic {
		return
	}
	be.body.SetForce(f)
}

func (s *Server) Force(h BodyHandle) cp.Vector {
	be := s.body(h)
	if be.kind != Dynamic {
		return cp.Vector{}
	}
	return be.body.Force()
}

// Colliders lists the colliders attached to h in attach order.
func (s *Server) Colliders(h BodyHandle) []ColliderHandle {
	return append([]ColliderHandle(nil), s.body(h).colliders...)
}

// ColliderBody returns the parent body of c.
func (s *Server) ColliderBody(c ColliderHandle) BodyHandle {
	return s.collider(c).body
}

func (s *Server) ColliderDesc(c ColliderHandle) ColliderDesc {
	return s.collider(c).desc
}

func (s *Server) IsSensor(c ColliderHandle) bool {
	return s.collider(c).desc.Sensor
}

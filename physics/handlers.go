package physics

import "github.com/jakecoffman/cp"

// bodyRoles are the non-sensor roles; every pair of them gets a contact
// handler and each of them gets a sensor handler.
var bodyRoles = []Role{RolePlayer, RoleSolid, RoleAsteroid}

func (s *Server) setupHandlers() {
	if s.handlersReady || s.space == nil {
		return
	}

	for _, r := range bodyRoles {
		h := s.space.NewCollisionHandler(RoleSensor.collisionType(), r.collisionType())
		h.UserData = s
		h.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			srv, ok := userData.(*Server)
			if !ok || srv == nil {
				return true
			}
			a, b := arb.Shapes()
			srv.recordIntersection(a, b, IntersectionStarted)
			return true
		}
		h.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			srv, ok := userData.(*Server)
			if !ok || srv == nil {
				return
			}
			a, b := arb.Shapes()
			srv.recordIntersection(a, b, IntersectionStopped)
		}
	}

	for i, ra := range bodyRoles {
		for _, rb := range bodyRoles[i:] {
			h := s.space.NewCollisionHandler(ra.collisionType(), rb.collisionType())
			h.UserData = s
			h.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
				srv, ok := userData.(*Server)
				if !ok || srv == nil {
					return true
				}
				a, b := arb.Shapes()
				srv.recordContact(a, b)
				return true
			}
		}
	}

	s.handlersReady = true
}

func (s *Server) lookupShapes(a, b *cp.Shape) (ColliderHandle, *colliderEntry, ColliderHandle, *colliderEntry, bool) {
	ha, okA := s.shapes[a]
	hb, okB := s.shapes[b]
	if !okA || !okB {
		return ColliderHandle{}, nil, ColliderHandle{}, nil, false
	}
	ea, okA := s.colliders.get(ha.index, ha.gen)
	eb, okB := s.colliders.get(hb.index, hb.gen)
	if !okA || !okB {
		return ColliderHandle{}, nil, ColliderHandle{}, nil, false
	}
	return ha, ea, hb, eb, true
}

func (s *Server) recordIntersection(a, b *cp.Shape, kind EventKind) {
	ha, ea, hb, eb, ok := s.lookupShapes(a, b)
	if !ok {
		return
	}
	sensor, other, otherEntry := ha, hb, eb
	switch {
	case ea.desc.Sensor && !eb.desc.Sensor:
	case eb.desc.Sensor && !ea.desc.Sensor:
		sensor, other, otherEntry = hb, ha, ea
	default:
		return
	}
	if otherEntry.desc.Events&IntersectionEvents == 0 {
		return
	}

	s.events.push(Event{Kind: kind, A: sensor, B: other})
	if kind == IntersectionStopped && s.hasPlayer && other == s.player {
		s.playerIntersected = true
		s.lastIntersected = sensor
	}
}

func (s *Server) recordContact(a, b *cp.Shape) {
	ha, ea, hb, eb, ok := s.lookupShapes(a, b)
	if !ok {
		return
	}
	if ea.desc.Sensor || eb.desc.Sensor {
		return
	}
	if (ea.desc.Events|eb.desc.Events)&ContactEvents == 0 {
		return
	}
	rel := a.Body().Velocity().Sub(b.Body().Velocity()).Length()
	s.events.push(Event{Kind: ContactStarted, A: ha, B: hb, RelativeSpeed: rel})
}

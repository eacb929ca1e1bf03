package systems

import (
	"math"

	"github.com/Jokler/escape-my-basement/components"
	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/Jokler/escape-my-basement/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
		obj.Update()
	})
}

// resolveHorizontalCollision moves the object by its horizontal speed, stopping flush
// against walls.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if _, contact := nearestSolid(object, dx, 0); contact != nil {
		dx = *contact
		physics.SpeedX = 0
	}

	object.X += dx
}

// resolveVerticalCollision moves the object by its vertical speed and records the ground
// it lands on.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	wall, contact := nearestSolid(object, 0, checkDistance)
	switch {
	case contact == nil:
	case dy < 0:
		// Head bump.
		dy = *contact
		physics.SpeedY = 0
	case *contact <= dy:
		// Landing: snap onto the top of the wall.
		dy = *contact
		physics.SpeedY = 0
		physics.OnGround = wall
	}

	object.Y += dy
}

// nearestSolid returns the closest solid along (dx, dy) and the distance the object can
// travel before touching it. Only one of dx and dy may be non-zero. resolv reports
// everything sharing a space cell, so each candidate is checked against the swept bounds.
func nearestSolid(object *resolv.Object, dx, dy float64) (*resolv.Object, *float64) {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil, nil
	}

	swept := collision.Bounds(object)
	swept.X += math.Min(dx, 0)
	swept.Y += math.Min(dy, 0)
	swept.W += math.Abs(dx)
	swept.H += math.Abs(dy)

	var nearest *resolv.Object
	best := 0.0
	for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
		if !swept.Intersects(collision.Bounds(wall)) {
			continue
		}
		contact := check.ContactWithObject(wall)
		d := contact.X()
		if dx == 0 {
			d = contact.Y()
		}
		if nearest == nil || math.Abs(d) < math.Abs(best) {
			nearest, best = wall, d
		}
	}
	if nearest == nil {
		return nil, nil
	}
	return nearest, &best
}

package behaviour

import "github.com/vovakirdan/tui-sandbox/internal/core"

// Up and Down are the contact normals of ceilings and floors in screen
// coordinates, where y grows downward.
var (
	Up   = core.V(0, -1)
	Down = core.V(0, 1)
)

// ContactNormal returns the axis direction from self toward a contact area.
//
// A contact wider than tall is a floor or ceiling: the normal is vertical and
// points from self's center to the contact's center. Any other contact is a
// wall with a horizontal normal. A component is zero when the centers line up
// on that axis.
func ContactNormal(self, contact core.Rect) core.Vec {
	sc := self.Center()
	cc := contact.Center()
	if contact.Right()-contact.Left() > contact.Bottom()-contact.Top() {
		return core.V(0, float64(core.Sign(cc.Y-sc.Y)))
	}
	return core.V(float64(core.Sign(cc.X-sc.X)), 0)
}

// Grounded reports whether any collision is a floor below self.
// The first match in list order wins.
func Grounded(self core.Rect, collisions []CollisionInfo) bool {
	for _, c := range collisions {
		if ContactNormal(self, c.Rect) == Down {
			return true
		}
	}
	return false
}

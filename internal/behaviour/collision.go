package behaviour

// Collision finds every other entity overlapping the carry bounds.
// It is a brute-force broad phase: O(N) per entity, O(N²) per frame.
type Collision struct {
	Mask Mask
}

// NewCollision creates a collision stage filtering by mask.
func NewCollision(mask Mask) *Collision {
	return &Collision{Mask: mask}
}

// Kind returns KindCollision.
func (c *Collision) Kind() Kind { return KindCollision }

func (c *Collision) sealed() {}

// Tick tests the carry bounds against the pre-tick snapshot.
func (c *Collision) Tick(p Params, _ float64) Result {
	collisions := make([]CollisionInfo, 0, 4)

	for _, other := range p.Others {
		if other.ID == p.ID {
			continue
		}
		if !c.Mask.Interacts(other.Mask) {
			continue
		}
		if other.Rect.Intersects(p.Bounds) {
			collisions = append(collisions, CollisionInfo{
				ID:   other.ID,
				Rect: other.Rect.Intersection(p.Bounds),
				Mask: other.Mask,
			})
		}
	}

	return Result{
		Collisions:    collisions,
		HasCollisions: true,
	}
}

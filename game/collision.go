package game

// EventKind classifies a collision event.
type EventKind int

const (
	BulletHitsShield EventKind = iota
	BulletHitsEnemy
	BulletHitsBoss
	BulletHitsPlayer
)

// CollisionEvent is one AABB overlap found during a tick. Each event is
// produced once and consumed once by the session.
type CollisionEvent struct {
	Kind   EventKind
	Bullet int // index into the tick's bullet snapshot
	Target int // index into the shield or enemy snapshot; unused otherwise
	X, Y   float64
}

// CollisionSnapshot is the read-only view of one tick's entity rectangles.
// The resolver never mutates it; removals happen after the full scan so every
// pair is evaluated against a stable state.
type CollisionSnapshot struct {
	Bullets []Bullet
	Shields []ShieldPiece
	Enemies []Enemy
	Boss    *Boss
	Player  Rect
}

// ResolveCollisions reports all collisions for one tick. A bullet resolves at
// most one collision, first match wins, tested in a fixed order: shields
// first, then enemies or the boss for player bullets, then the player for
// enemy bullets. A bullet therefore never passes through a shield piece it
// just destroyed, and friendly fire is impossible by construction.
func ResolveCollisions(s CollisionSnapshot) []CollisionEvent {
	var events []CollisionEvent
	for bi := range s.Bullets {
		if !s.Bullets[bi].Active {
			continue
		}
		if ev, ok := resolveBullet(s, bi); ok {
			events = append(events, ev)
		}
	}
	return events
}

func resolveBullet(s CollisionSnapshot, bi int) (CollisionEvent, bool) {
	b := &s.Bullets[bi]

	// Shields block both sides.
	for si := range s.Shields {
		if b.Rect.Overlaps(s.Shields[si].Rect) {
			return CollisionEvent{
				Kind:   BulletHitsShield,
				Bullet: bi,
				Target: si,
				X:      b.Rect.CenterX(),
				Y:      b.Rect.CenterY(),
			}, true
		}
	}

	if b.FromPlayer {
		for ei := range s.Enemies {
			if b.Rect.Overlaps(s.Enemies[ei].Rect) {
				return CollisionEvent{
					Kind:   BulletHitsEnemy,
					Bullet: bi,
					Target: ei,
					X:      b.Rect.CenterX(),
					Y:      b.Rect.CenterY(),
				}, true
			}
		}
		if s.Boss != nil && s.Boss.Active && b.Rect.Overlaps(s.Boss.Rect) {
			return CollisionEvent{
				Kind:   BulletHitsBoss,
				Bullet: bi,
				X:      s.Boss.Rect.CenterX(),
				Y:      s.Boss.Rect.CenterY(),
			}, true
		}
		return CollisionEvent{}, false
	}

	if b.Rect.Overlaps(s.Player) {
		return CollisionEvent{
			Kind:   BulletHitsPlayer,
			Bullet: bi,
			X:      b.Rect.CenterX(),
			Y:      b.Rect.CenterY(),
		}, true
	}
	return CollisionEvent{}, false
}

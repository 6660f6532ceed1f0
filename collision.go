package scenekit

import (
	"github.com/akmonengine/scenekit/collision"
)

// CollisionPair represents two objects whose colliders overlap this frame
type CollisionPair struct {
	ObjectA *Object
	ObjectB *Object
}

// DetectCollisions resets every collision flag, then tests all distinct
// unordered pairs of colliders in insertion order. Both colliders of an
// overlapping pair get flagged.
// This is an O(n²) brute-force sweep, sized for scenes of a few tens of objects.
func DetectCollisions(objects []*Object) []CollisionPair {
	for _, object := range objects {
		if object.Collider != nil {
			object.Collider.Collision = false
		}
	}

	pairs := make([]CollisionPair, 0)
	for i := 0; i < len(objects); i++ {
		a := objects[i]
		if a.Collider == nil {
			continue
		}

		for j := i + 1; j < len(objects); j++ {
			b := objects[j]
			if b.Collider == nil {
				continue
			}

			if collision.Test(a.Collider, b.Collider) {
				a.Collider.Collision = true
				b.Collider.Collision = true
				pairs = append(pairs, CollisionPair{ObjectA: a, ObjectB: b})
			}
		}
	}

	return pairs
}

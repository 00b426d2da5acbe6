package components

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Position represents a monster's world position.
type Position struct {
	Point r3.Vec
}

// Orientation represents a monster's rotation as a unit quaternion.
// The body frame is X-forward, Y-right, Z-up.
type Orientation struct {
	Quat quat.Number
}

// IdentityOrientation returns an upright orientation facing world +X.
func IdentityOrientation() Orientation {
	return Orientation{Quat: quat.Number{Real: 1}}
}

package component

import "spoon-defense/internal/types"

// Turret records where a tower's head points. Only presentation reads it.
type Turret struct {
	// Angle in radians, grid space. It eases toward TargetAngle.
	Angle       float64
	TargetAngle float64
	// TurnSpeed is the easing rate per second.
	TurnSpeed float64
	// TargetID of the last shot.
	TargetID types.EntityID
}

package domain

import "fmt"

// Direction selects which side of a swap a listing is scoped to.
type Direction string

const (
	// DirectionSent lists swaps the user created.
	DirectionSent Direction = "sent"
	// DirectionReceived lists swaps addressed to the user.
	DirectionReceived Direction = "received"
	// DirectionBoth lists both sides.
	DirectionBoth Direction = "both"
)

// ParseDirection validates a raw string as a Direction. The empty string
// defaults to DirectionBoth.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionSent, DirectionReceived, DirectionBoth:
		return Direction(s), nil
	case "":
		return DirectionBoth, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

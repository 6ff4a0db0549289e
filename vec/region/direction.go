package region

// Direction selects which way a region grows. It is fixed at creation.
type Direction int8

const (
	// Forward regions grow toward higher offsets.
	Forward Direction = iota
	// Reverse regions grow toward lower offsets.
	Reverse
)

// Distance returns the signed byte count from a to b measured in the growth direction.
func (d Direction) Distance(a, b int) int {
	if d == Reverse {
		return a - b
	}
	return b - a
}

// Step moves p by n bytes in the growth direction. Negative n steps back.
func (d Direction) Step(p, n int) int {
	if d == Reverse {
		return p - n
	}
	return p + n
}

// String returns "forward" or "reverse".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// ParseDirection is the inverse of String.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "forward", "fwd":
		return Forward, true
	case "reverse", "rev":
		return Reverse, true
	default:
		return Forward, false
	}
}

package core

// Direction is one of the four grid headings
// Zero value is DirNone, used for "no buffered request"
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit step; Up decreases Y (screen coordinates)
func (d Direction) Vector() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Reverse returns the opposite heading
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	}
	return "None"
}

// ParseDirection maps a heading name ("Up", "up", "UP") back to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "Up", "up", "UP":
		return DirUp, true
	case "Down", "down", "DOWN":
		return DirDown, true
	case "Left", "left", "LEFT":
		return DirLeft, true
	case "Right", "right", "RIGHT":
		return DirRight, true
	}
	return DirNone, false
}

package commander

import "fmt"

// Side names one of the two panels.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

func ParseSide(v string) (Side, error) {
	switch v {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown panel side %q", v)
}

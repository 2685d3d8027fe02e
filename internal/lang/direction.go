package lang

import (
	"fmt"
	"strings"
)

type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// ParseDirection accepts the "ltr"/"rtl" codes translation services use.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LeftToRight, nil
	case "rtl":
		return RightToLeft, nil
	}
	return LeftToRight, fmt.Errorf("invalid text direction %q", s)
}

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

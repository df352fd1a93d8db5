package choreography

import "nabaztag/internal/domain"

// Ear names accepted by MoveEar. Both expands to two action records at the
// same timestamp.
const (
	EarLeft  = "left"
	EarRight = "right"
	EarBoth  = "both"
)

// Ear movement directions.
const (
	Forward  = "forward"
	Backward = "backward"
)

var earIndexes = map[string]int{
	EarLeft:  0,
	EarRight: 1,
}

var directionCodes = map[string]int{
	Forward:  0,
	Backward: 1,
}

var ledIndexes = map[string]int{
	"bottom": 0,
	"left":   1,
	"middle": 2,
	"right":  3,
	"top":    4,
}

var colorTable = map[string][3]int{
	"off":     {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"orange":  {255, 127, 0},
	"white":   {255, 255, 255},
}

func lookupEar(name string) (int, error) {
	idx, ok := earIndexes[name]
	if !ok {
		return 0, &domain.ConfigurationError{Kind: "ear", Name: name}
	}
	return idx, nil
}

func lookupDirection(name string) (int, error) {
	code, ok := directionCodes[name]
	if !ok {
		return 0, &domain.ConfigurationError{Kind: "direction", Name: name}
	}
	return code, nil
}

func lookupLed(name string) (int, error) {
	idx, ok := ledIndexes[name]
	if !ok {
		return 0, &domain.ConfigurationError{Kind: "led", Name: name}
	}
	return idx, nil
}

func lookupColor(name string) ([3]int, error) {
	rgb, ok := colorTable[name]
	if !ok {
		return [3]int{}, &domain.ConfigurationError{Kind: "color", Name: name}
	}
	return rgb, nil
}

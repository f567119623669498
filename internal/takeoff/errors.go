package takeoff

import "errors"

var (
	// ErrInvalidInput is returned when a configuration or obstacle height
	// cannot be fed to the formulas.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomain is returned when a formula step has no real, finite answer:
	// the climb-angle sine leaves [-1, 1], or the climb angle is so shallow
	// that the climb segment never reaches the obstacle.
	ErrDomain = errors.New("domain error")
)

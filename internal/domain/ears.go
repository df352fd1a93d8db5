package domain

// EarPositions holds the ear angles reported by the device after an
// ear-position query. Positions range 0-16 but the device may report
// out-of-range values while moving.
type EarPositions struct {
	Left  int
	Right int
}

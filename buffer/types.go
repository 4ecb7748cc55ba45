package buffer

// Position points into the document by cluster column X and line index Y.
type Position struct {
	X int
	Y int
}

// SearchDirection selects the scan order of Find.
type SearchDirection uint8

const (
	// Forward scans toward the end of the buffer.
	Forward SearchDirection = iota
	// Backward scans toward the start of the buffer.
	Backward
)

func (d SearchDirection) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

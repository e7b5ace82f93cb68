package risk

type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

func (d Direction) String() string { return string(d) }

// DirectionOf classifies a trade by where its stop sits. A stop equal to
// the entry counts as Short.
func DirectionOf(entry, stop float64) Direction {
	if stop < entry {
		return Long
	}
	return Short
}

// Targets holds the 1R, 2R and 3R take-profit levels.
type Targets struct {
	Direction  Direction
	R1, R2, R3 float64

	entry, stop float64
}

// ProjectTargets derives the direction and the first three R levels.
func ProjectTargets(entry, stop float64) Targets {
	t := Targets{
		Direction: DirectionOf(entry, stop),
		entry:     entry,
		stop:      stop,
	}
	t.R1 = t.Level(1)
	t.R2 = t.Level(2)
	t.R3 = t.Level(3)
	return t
}

// Level returns the k-R target.
func (t Targets) Level(k int) float64 {
	r := float64(k)
	if t.Direction == Long {
		return t.entry + r*(t.entry-t.stop)
	}
	return t.entry - r*(t.stop-t.entry)
}

package game

// Status identifies a named, stacked modifier on an actor.
type Status string

const (
	Strength   Status = "strength"
	Vulnerable Status = "vulnerable"
	Weak       Status = "weak"
	Frail      Status = "frail"
	Poison     Status = "poison"
	Ritual     Status = "ritual"
)

// DurationClass determines how a status's stack count decays.
type DurationClass int

const (
	// TurnBased statuses lose one stack at the end of each round.
	TurnBased DurationClass = iota
	// Permanent statuses never decay.
	Permanent
	// IntensityBased statuses decay by their own rule (poison loses one
	// stack each time it ticks).
	IntensityBased
)

var durations = map[Status]DurationClass{
	Strength:   Permanent,
	Vulnerable: TurnBased,
	Weak:       TurnBased,
	Frail:      TurnBased,
	Poison:     IntensityBased,
	Ritual:     Permanent,
}

func (s Status) Duration() DurationClass {
	d, ok := durations[s]
	if !ok {
		return Permanent
	}
	return d
}

package config

// StateID identifies a cannon state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Dragging
	Firing
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Dragging:  "dragging",
	Firing:    "firing",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

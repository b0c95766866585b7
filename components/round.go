package components

import (
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Outcome is how a round ended.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "pending"
	}
}

// RoundData is the singleton describing the round in progress.
type RoundData struct {
	ID      uuid.UUID
	Number  int
	Outcome Outcome

	// Banner slides the outcome message into place once the round is decided.
	Banner       *gween.Tween
	BannerOffset float32
}

var Round = donburi.NewComponentType[RoundData]()

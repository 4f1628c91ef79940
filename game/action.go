package game

import (
	"errors"
	"fmt"
)

// ErrIllegalAction signals that an action violates a resource or targeting
// constraint of the state it was applied to. The enumerator is the source of
// truth for legality; this is a defensive check, never a silent correction.
var ErrIllegalAction = errors.New("illegal action")

// ActionType tags the closed set of action variants.
type ActionType int

const (
	PlayCardAction ActionType = iota
	UsePotionAction
	EndTurnAction
	PathChoiceAction
)

// Action is one decision the core can commit: play a card at a target, use a
// potion, end the turn, or pick a map edge. Legality is always relative to a
// specific state and is never cached across states.
type Action struct {
	Type ActionType
	// Card is the hand index for PlayCardAction.
	Card int
	// Potion is the belt index for UsePotionAction.
	Potion int
	// Target is the monster index, or NoTarget for untargeted actions.
	Target int
	// Edge is the outgoing edge index for PathChoiceAction.
	Edge int
}

// NoTarget marks actions that do not aim at a monster.
const NoTarget = -1

func PlayCard(card, target int) Action {
	return Action{Type: PlayCardAction, Card: card, Target: target, Potion: NoTarget, Edge: NoTarget}
}

func UsePotion(potion, target int) Action {
	return Action{Type: UsePotionAction, Potion: potion, Target: target, Card: NoTarget, Edge: NoTarget}
}

func EndTurn() Action {
	return Action{Type: EndTurnAction, Card: NoTarget, Potion: NoTarget, Target: NoTarget, Edge: NoTarget}
}

func PathChoice(edge int) Action {
	return Action{Type: PathChoiceAction, Edge: edge, Card: NoTarget, Potion: NoTarget, Target: NoTarget}
}

// Key encodes the action as a short stable string. Keys order actions
// deterministically, which the searcher uses as its secondary tie-break.
func (a Action) Key() string {
	switch a.Type {
	case PlayCardAction:
		return fmt.Sprintf("c%02d.%02d", a.Card, a.Target+1)
	case UsePotionAction:
		return fmt.Sprintf("p%02d.%02d", a.Potion, a.Target+1)
	case EndTurnAction:
		return "z"
	case PathChoiceAction:
		return fmt.Sprintf("e%02d", a.Edge)
	default:
		return "?"
	}
}

func (a Action) String() string {
	switch a.Type {
	case PlayCardAction:
		if a.Target == NoTarget {
			return fmt.Sprintf("play card %d", a.Card)
		}
		return fmt.Sprintf("play card %d at monster %d", a.Card, a.Target)
	case UsePotionAction:
		if a.Target == NoTarget {
			return fmt.Sprintf("use potion %d", a.Potion)
		}
		return fmt.Sprintf("use potion %d at monster %d", a.Potion, a.Target)
	case EndTurnAction:
		return "end turn"
	case PathChoiceAction:
		return fmt.Sprintf("take edge %d", a.Edge)
	default:
		return "unknown action"
	}
}

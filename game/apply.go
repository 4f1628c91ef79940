package game

import "fmt"

// Resolved carries the externally-decided random outcomes a transition needs.
// Apply never samples randomness itself: same state, same action, same
// Resolved record always produce bit-identical results.
type Resolved struct {
	// EnemyMoves overrides each monster's move for the enemy phase, by
	// monster index. Nil means every monster follows its declared intent.
	EnemyMoves []Intent
	// DrawCount is the number of cards drawn at the start of the next
	// player turn.
	DrawCount int
	// Reshuffle is the permutation applied when the discard pile refills
	// the draw pile (newDraw[i] = discard[Reshuffle[i]]). Nil keeps the
	// discard order, which makes search transitions replayable without an
	// RNG.
	Reshuffle []int
}

// DefaultResolved follows declared intents and draws a standard hand.
func DefaultResolved() Resolved {
	return Resolved{DrawCount: 5}
}

// Apply executes one action against a combat state and returns the resulting
// state. The input state is never modified. Returns ErrIllegalAction when the
// action violates a resource or targeting constraint.
func Apply(cs *CombatState, a Action, r Resolved) (*CombatState, error) {
	if cs.Over() {
		return nil, fmt.Errorf("%w: battle is over", ErrIllegalAction)
	}

	switch a.Type {
	case PlayCardAction:
		return applyCard(cs, a)
	case UsePotionAction:
		return applyPotion(cs, a)
	case EndTurnAction:
		return applyEndTurn(cs, r)
	case PathChoiceAction:
		return nil, fmt.Errorf("%w: path choices do not apply to combat states", ErrIllegalAction)
	default:
		return nil, fmt.Errorf("%w: unknown action type %d", ErrIllegalAction, a.Type)
	}
}

func applyCard(cs *CombatState, a Action) (*CombatState, error) {
	if a.Card < 0 || a.Card >= len(cs.Player.Hand) {
		return nil, fmt.Errorf("%w: hand index %d out of range", ErrIllegalAction, a.Card)
	}
	card := cs.Player.Hand[a.Card]
	spec := card.Spec()
	if spec.Cost > cs.Player.Energy {
		return nil, fmt.Errorf("%w: card %s costs %d, have %d energy", ErrIllegalAction, card.ID, spec.Cost, cs.Player.Energy)
	}
	if err := checkTarget(cs, spec.Target, a.Target); err != nil {
		return nil, err
	}

	next := cs.Copy()
	next.Player.Energy -= spec.Cost

	// Take the card out of hand before resolving effects so a draw effect
	// can never draw the card being played.
	next.Player.Hand = append(next.Player.Hand[:a.Card], next.Player.Hand[a.Card+1:]...)

	resolveHits(next, spec, a.Target)
	gainBlock(&next.Player, spec.Block)
	next.Player.Energy += spec.EnergyGain
	applyStatuses(next, spec.Applies, a.Target)
	drawCards(&next.Player, spec.Draw, nil)

	if spec.Exhausts {
		next.Player.Exhaust = append(next.Player.Exhaust, card)
	} else {
		next.Player.Discard = append(next.Player.Discard, card)
	}
	if spec.CopiesToDiscard {
		next.Player.Discard = append(next.Player.Discard, Card{ID: card.ID, Upgraded: card.Upgraded})
	}

	return next, nil
}

func applyPotion(cs *CombatState, a Action) (*CombatState, error) {
	if a.Potion < 0 || a.Potion >= len(cs.Player.Potions) {
		return nil, fmt.Errorf("%w: potion index %d out of range", ErrIllegalAction, a.Potion)
	}
	spec := cs.Player.Potions[a.Potion].Spec()
	if err := checkTarget(cs, spec.Target, a.Target); err != nil {
		return nil, err
	}

	next := cs.Copy()
	next.Player.Potions = append(next.Player.Potions[:a.Potion], next.Player.Potions[a.Potion+1:]...)

	if spec.Damage > 0 {
		// Potion damage ignores strength and weak: it is not an attack.
		dealDamage(&next.Monsters[a.Target].Actor, spec.Damage)
	}
	gainBlock(&next.Player, spec.Block)
	next.Player.Energy += spec.EnergyGain

	return next, nil
}

func applyEndTurn(cs *CombatState, r Resolved) (*CombatState, error) {
	next := cs.Copy()

	// Hand is discarded before the enemy phase.
	next.Player.Discard = append(next.Player.Discard, next.Player.Hand...)
	next.Player.Hand = next.Player.Hand[:0]

	for i := range next.Monsters {
		m := &next.Monsters[i]
		if !m.Alive() {
			continue
		}
		m.Block = 0
		if ritual := m.Stacks(Ritual); ritual > 0 {
			m.addStatus(Strength, ritual)
		}
		tickPoison(&m.Actor)
		if !m.Alive() {
			continue
		}

		move := m.Intent
		if r.EnemyMoves != nil && i < len(r.EnemyMoves) {
			move = r.EnemyMoves[i]
		}
		executeMove(next, m, move)
	}

	// Turn-based statuses decay once per round, after the enemy phase.
	decayStatuses(&next.Player.Actor)
	for i := range next.Monsters {
		decayStatuses(&next.Monsters[i].Actor)
	}

	// Start of the next player turn.
	tickPoison(&next.Player.Actor)
	next.Player.Block = 0
	next.Player.Energy = next.Player.MaxEnergy
	next.Turn++
	drawCards(&next.Player, r.DrawCount, r.Reshuffle)

	return next, nil
}

func checkTarget(cs *CombatState, mode TargetMode, target int) error {
	switch mode {
	case TargetEnemy:
		if target < 0 || target >= len(cs.Monsters) {
			return fmt.Errorf("%w: target %d out of range", ErrIllegalAction, target)
		}
		if !cs.Monsters[target].Alive() {
			return fmt.Errorf("%w: target %d is dead", ErrIllegalAction, target)
		}
	case TargetAllEnemies, TargetNone:
		if target != NoTarget {
			return fmt.Errorf("%w: untargeted action carries target %d", ErrIllegalAction, target)
		}
	}
	return nil
}

// resolveHits applies a card's attack damage from the player.
func resolveHits(cs *CombatState, spec CardSpec, target int) {
	if spec.Damage <= 0 || spec.Hits <= 0 {
		return
	}
	perHit := outgoingDamage(&cs.Player.Actor, spec.Damage)
	switch spec.Target {
	case TargetAllEnemies:
		for i := range cs.Monsters {
			if !cs.Monsters[i].Alive() {
				continue
			}
			for h := 0; h < spec.Hits; h++ {
				dealDamage(&cs.Monsters[i].Actor, perHit)
			}
		}
	case TargetEnemy:
		m := &cs.Monsters[target]
		for h := 0; h < spec.Hits && m.Alive(); h++ {
			dealDamage(&m.Actor, perHit)
		}
	}
}

// outgoingDamage applies the attacker's start-of-action modifiers.
func outgoingDamage(attacker *Actor, base int) int {
	dmg := base + attacker.Stacks(Strength)
	if attacker.Stacks(Weak) > 0 {
		dmg = dmg * 3 / 4
	}
	if dmg < 0 {
		return 0
	}
	return dmg
}

// dealDamage resolves one hit: vulnerable multiplier, block absorption, then
// health loss clamped at zero.
func dealDamage(target *Actor, dmg int) {
	if target.Stacks(Vulnerable) > 0 {
		dmg = dmg * 3 / 2
	}
	blocked := dmg
	if blocked > target.Block {
		blocked = target.Block
	}
	target.Block -= blocked
	target.HP -= dmg - blocked
	if target.HP < 0 {
		target.HP = 0
	}
}

func gainBlock(p *Player, amount int) {
	if amount <= 0 {
		return
	}
	if p.Stacks(Frail) > 0 {
		amount = amount * 3 / 4
	}
	p.Block += amount
}

func applyStatuses(cs *CombatState, applies []StatusApplication, target int) {
	for _, app := range applies {
		switch {
		case app.ToSelf:
			cs.Player.addStatus(app.Status, app.Stacks)
		case target != NoTarget:
			if cs.Monsters[target].Alive() {
				cs.Monsters[target].addStatus(app.Status, app.Stacks)
			}
		default:
			for i := range cs.Monsters {
				if cs.Monsters[i].Alive() {
					cs.Monsters[i].addStatus(app.Status, app.Stacks)
				}
			}
		}
	}
}

func executeMove(cs *CombatState, m *Monster, move Intent) {
	switch move.Kind {
	case IntentAttack:
		hits := move.Hits
		if hits <= 0 {
			hits = 1
		}
		perHit := outgoingDamage(&m.Actor, move.Damage)
		for h := 0; h < hits; h++ {
			dealDamage(&cs.Player.Actor, perHit)
		}
	case IntentDefend:
		m.Block += move.Block
	case IntentBuff:
		m.addStatus(Strength, move.Buff)
	case IntentUnknown:
		// No declared move: the enemy response model decides what to
		// substitute before Apply is called.
	}
}

// tickPoison damages the actor through block and decays one stack.
func tickPoison(a *Actor) {
	stacks := a.Stacks(Poison)
	if stacks == 0 {
		return
	}
	a.HP -= stacks
	if a.HP < 0 {
		a.HP = 0
	}
	a.addStatus(Poison, -1)
}

func decayStatuses(a *Actor) {
	for _, s := range []Status{Vulnerable, Weak, Frail} {
		if a.Stacks(s) > 0 {
			a.addStatus(s, -1)
		}
	}
}

func drawCards(p *Player, n int, reshuffle []int) {
	for i := 0; i < n; i++ {
		if len(p.Draw) == 0 {
			if len(p.Discard) == 0 {
				return
			}
			p.Draw = reorder(p.Discard, reshuffle)
			p.Discard = nil
		}
		p.Hand = append(p.Hand, p.Draw[0])
		p.Draw = p.Draw[1:]
	}
}

func reorder(cards []Card, perm []int) []Card {
	out := make([]Card, len(cards))
	if len(perm) != len(cards) {
		copy(out, cards)
		return out
	}
	for i, j := range perm {
		out[i] = cards[j]
	}
	return out
}

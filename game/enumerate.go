package game

// LegalActions enumerates every action that Apply would accept on this state,
// in a deterministic order: hand cards by index (targeted ones once per
// living monster, ascending), then potions, then end-turn. Terminal states
// yield nil; any other state yields at least the end-turn action.
func LegalActions(cs *CombatState) []Action {
	if cs.Over() {
		return nil
	}

	living := cs.LivingMonsters()
	var actions []Action

	for i, card := range cs.Player.Hand {
		spec := card.Spec()
		if spec.Cost > cs.Player.Energy {
			continue
		}
		switch spec.Target {
		case TargetEnemy:
			for _, t := range living {
				actions = append(actions, PlayCard(i, t))
			}
		case TargetAllEnemies, TargetNone:
			actions = append(actions, PlayCard(i, NoTarget))
		}
	}

	for i, potion := range cs.Player.Potions {
		switch potion.Spec().Target {
		case TargetEnemy:
			for _, t := range living {
				actions = append(actions, UsePotion(i, t))
			}
		case TargetAllEnemies, TargetNone:
			actions = append(actions, UsePotion(i, NoTarget))
		}
	}

	return append(actions, EndTurn())
}

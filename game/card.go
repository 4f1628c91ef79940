package game

// CardID identifies a card in the catalog.
type CardID string

const (
	Strike       CardID = "strike"
	Defend       CardID = "defend"
	Bash         CardID = "bash"
	Neutralize   CardID = "neutralize"
	PommelStrike CardID = "pommel_strike"
	TwinStrike   CardID = "twin_strike"
	Cleave       CardID = "cleave"
	IronWave     CardID = "iron_wave"
	Anger        CardID = "anger"
	Shrug        CardID = "shrug_it_off"
	Backstab     CardID = "backstab"
)

// TargetMode determines how play actions are enumerated for a card.
type TargetMode int

const (
	// TargetEnemy cards need one living monster as a target.
	TargetEnemy TargetMode = iota
	// TargetAllEnemies cards hit every living monster and take no target.
	TargetAllEnemies
	// TargetNone cards affect only the player.
	TargetNone
)

// StatusApplication is a status a card or potion puts on its target or owner.
type StatusApplication struct {
	Status Status
	Stacks int
	ToSelf bool
}

// CardSpec is the static behavior of one card variant.
type CardSpec struct {
	Cost       int
	Target     TargetMode
	Damage     int
	Hits       int
	Block      int
	Draw       int
	EnergyGain int
	Applies    []StatusApplication
	Exhausts   bool
	// CopiesToDiscard cards add a fresh copy of themselves to the discard
	// pile when played. This is the one card-creating effect in the
	// catalog; zone conservation tests assert it by name.
	CopiesToDiscard bool
}

type cardVariants struct {
	base     CardSpec
	upgraded CardSpec
}

var catalog = map[CardID]cardVariants{
	Strike: {
		base:     CardSpec{Cost: 1, Target: TargetEnemy, Damage: 6, Hits: 1},
		upgraded: CardSpec{Cost: 1, Target: TargetEnemy, Damage: 9, Hits: 1},
	},
	Defend: {
		base:     CardSpec{Cost: 1, Target: TargetNone, Block: 5},
		upgraded: CardSpec{Cost: 1, Target: TargetNone, Block: 8},
	},
	Bash: {
		base: CardSpec{Cost: 2, Target: TargetEnemy, Damage: 8, Hits: 1,
			Applies: []StatusApplication{{Status: Vulnerable, Stacks: 2}}},
		upgraded: CardSpec{Cost: 2, Target: TargetEnemy, Damage: 10, Hits: 1,
			Applies: []StatusApplication{{Status: Vulnerable, Stacks: 3}}},
	},
	Neutralize: {
		base: CardSpec{Cost: 0, Target: TargetEnemy, Damage: 3, Hits: 1,
			Applies: []StatusApplication{{Status: Weak, Stacks: 1}}},
		upgraded: CardSpec{Cost: 0, Target: TargetEnemy, Damage: 4, Hits: 1,
			Applies: []StatusApplication{{Status: Weak, Stacks: 2}}},
	},
	PommelStrike: {
		base:     CardSpec{Cost: 1, Target: TargetEnemy, Damage: 9, Hits: 1, Draw: 1},
		upgraded: CardSpec{Cost: 1, Target: TargetEnemy, Damage: 10, Hits: 1, Draw: 2},
	},
	TwinStrike: {
		base:     CardSpec{Cost: 1, Target: TargetEnemy, Damage: 5, Hits: 2},
		upgraded: CardSpec{Cost: 1, Target: TargetEnemy, Damage: 7, Hits: 2},
	},
	Cleave: {
		base:     CardSpec{Cost: 1, Target: TargetAllEnemies, Damage: 8, Hits: 1},
		upgraded: CardSpec{Cost: 1, Target: TargetAllEnemies, Damage: 11, Hits: 1},
	},
	IronWave: {
		base:     CardSpec{Cost: 1, Target: TargetEnemy, Damage: 5, Hits: 1, Block: 5},
		upgraded: CardSpec{Cost: 1, Target: TargetEnemy, Damage: 7, Hits: 1, Block: 7},
	},
	Anger: {
		base:     CardSpec{Cost: 0, Target: TargetEnemy, Damage: 6, Hits: 1, CopiesToDiscard: true},
		upgraded: CardSpec{Cost: 0, Target: TargetEnemy, Damage: 8, Hits: 1, CopiesToDiscard: true},
	},
	Shrug: {
		base:     CardSpec{Cost: 1, Target: TargetNone, Block: 8, Draw: 1},
		upgraded: CardSpec{Cost: 1, Target: TargetNone, Block: 11, Draw: 1},
	},
	Backstab: {
		base:     CardSpec{Cost: 0, Target: TargetEnemy, Damage: 11, Hits: 1, Exhausts: true},
		upgraded: CardSpec{Cost: 0, Target: TargetEnemy, Damage: 15, Hits: 1, Exhausts: true},
	},
}

// Card is one card instance in a zone.
type Card struct {
	ID       CardID
	Upgraded bool
}

// Spec returns the static behavior for this card instance.
func (c Card) Spec() CardSpec {
	v, ok := catalog[c.ID]
	if !ok {
		// Unknown cards behave as unplayable blanks rather than crashing
		// mid-search; the enumerator still offers them at their cost.
		return CardSpec{Cost: 1, Target: TargetNone}
	}
	if c.Upgraded {
		return v.upgraded
	}
	return v.base
}

// Cost returns the energy cost of playing this card.
func (c Card) Cost() int {
	return c.Spec().Cost
}

// PotionID identifies a potion in the catalog.
type PotionID string

const (
	FirePotion   PotionID = "fire_potion"
	BlockPotion  PotionID = "block_potion"
	EnergyPotion PotionID = "energy_potion"
)

// PotionSpec is the static behavior of one potion.
type PotionSpec struct {
	Target     TargetMode
	Damage     int
	Block      int
	EnergyGain int
}

var potionCatalog = map[PotionID]PotionSpec{
	FirePotion:   {Target: TargetEnemy, Damage: 20},
	BlockPotion:  {Target: TargetNone, Block: 12},
	EnergyPotion: {Target: TargetNone, EnergyGain: 2},
}

// Potion is one potion instance in the player's belt.
type Potion struct {
	ID PotionID
}

func (p Potion) Spec() PotionSpec {
	return potionCatalog[p.ID]
}

package world

// CharacterID is the unique key of a character in the catalog (e.g. "lion").
type CharacterID string

// HabitatID identifies an environment (jungle, ocean, desert, forest).
type HabitatID string

const (
	HabitatJungle HabitatID = "jungle"
	HabitatOcean  HabitatID = "ocean"
	HabitatDesert HabitatID = "desert"
	HabitatForest HabitatID = "forest"
)

// Species is the broad category a character belongs to.
type Species string

const (
	SpeciesAnimal   Species = "animal"
	SpeciesDinosaur Species = "dinosaur"
)

// Difficulty is a tier: it gates both character eligibility and grid size.
type Difficulty uint8

const (
	DifficultyEasy   Difficulty = 1
	DifficultyNormal Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// ParseDifficulty maps a tier name ("easy", "normal", "hard") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return DifficultyEasy, true
	case "normal":
		return DifficultyNormal, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyEasy, false
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Admits reports whether a character of the given tier may appear in a round
// played at difficulty d. Easy admits tier 1 only, normal admits tiers 1-2,
// hard admits everything.
func (d Difficulty) Admits(tier Difficulty) bool {
	switch d {
	case DifficultyEasy:
		return tier == DifficultyEasy
	case DifficultyNormal:
		return tier <= DifficultyNormal
	default:
		return true
	}
}

// CharacterRecord is one immutable catalog entry.
type CharacterRecord struct {
	ID       CharacterID
	Name     string
	Species  Species
	Tier     Difficulty
	Habitats []HabitatID
}

// LivesIn reports whether h is one of the character's habitats.
func (c CharacterRecord) LivesIn(h HabitatID) bool {
	for _, hab := range c.Habitats {
		if hab == h {
			return true
		}
	}
	return false
}

// normalize fills gaps in a record: unknown species become animals, a missing
// tier defaults to easy for animals and normal for dinosaurs, and dinosaurs
// are never easier than normal.
func (c CharacterRecord) normalize() CharacterRecord {
	if c.Species != SpeciesDinosaur {
		c.Species = SpeciesAnimal
	}
	if c.Tier == 0 {
		c.Tier = DifficultyEasy
		if c.Species == SpeciesDinosaur {
			c.Tier = DifficultyNormal
		}
	}
	if c.Tier > DifficultyHard {
		c.Tier = DifficultyHard
	}
	if c.Species == SpeciesDinosaur && c.Tier < DifficultyNormal {
		c.Tier = DifficultyNormal
	}
	if c.Name == "" {
		c.Name = string(c.ID)
	}
	return c
}

// Catalog is the registry of all characters, in load order.
type Catalog struct {
	order []CharacterID
	byID  map[CharacterID]CharacterRecord
}

// NewCatalog builds a catalog from records. Records without an ID are
// dropped; a repeated ID replaces the earlier record but keeps its position.
func NewCatalog(records []CharacterRecord) *Catalog {
	c := &Catalog{byID: make(map[CharacterID]CharacterRecord, len(records))}
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		if _, dup := c.byID[rec.ID]; !dup {
			c.order = append(c.order, rec.ID)
		}
		c.byID[rec.ID] = rec.normalize()
	}
	return c
}

// DefaultCharacters is the fallback triplet used when a habitat has no
// eligible characters at all.
var DefaultCharacters = []CharacterID{"lion", "monkey", "elephant"}

// DefaultCatalog returns a catalog holding only the fallback triplet.
func DefaultCatalog() *Catalog {
	return NewCatalog([]CharacterRecord{
		{ID: "lion", Name: "Lion", Species: SpeciesAnimal, Tier: DifficultyEasy, Habitats: []HabitatID{HabitatJungle}},
		{ID: "monkey", Name: "Monkey", Species: SpeciesAnimal, Tier: DifficultyEasy, Habitats: []HabitatID{HabitatJungle}},
		{ID: "elephant", Name: "Elephant", Species: SpeciesAnimal, Tier: DifficultyNormal, Habitats: []HabitatID{HabitatDesert}},
	})
}

// Len returns the number of characters in the catalog.
func (c *Catalog) Len() int { return len(c.order) }

// Get returns the record for id.
func (c *Catalog) Get(id CharacterID) (CharacterRecord, bool) {
	rec, ok := c.byID[id]
	return rec, ok
}

// Name returns the display name for id, or the id itself when unknown.
func (c *Catalog) Name(id CharacterID) string {
	if rec, ok := c.byID[id]; ok {
		return rec.Name
	}
	return string(id)
}

// All returns every record in catalog order.
func (c *Catalog) All() []CharacterRecord {
	out := make([]CharacterRecord, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Eligible returns the ids of characters living in h that difficulty d admits.
func (c *Catalog) Eligible(h HabitatID, d Difficulty) []CharacterID {
	var out []CharacterID
	for _, id := range c.order {
		rec := c.byID[id]
		if rec.LivesIn(h) && d.Admits(rec.Tier) {
			out = append(out, id)
		}
	}
	return out
}

// EligibleSpecies is Eligible restricted to one species.
func (c *Catalog) EligibleSpecies(h HabitatID, d Difficulty, s Species) []CharacterID {
	var out []CharacterID
	for _, id := range c.Eligible(h, d) {
		if c.byID[id].Species == s {
			out = append(out, id)
		}
	}
	return out
}

// EncyclopediaEntry is one row of the encyclopedia view.
type EncyclopediaEntry struct {
	Record     CharacterRecord
	Discovered bool
}

// Encyclopedia lists every character in catalog order, flagged by the
// discovered predicate.
func (c *Catalog) Encyclopedia(discovered func(CharacterID) bool) []EncyclopediaEntry {
	out := make([]EncyclopediaEntry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, EncyclopediaEntry{Record: c.byID[id], Discovered: discovered(id)})
	}
	return out
}

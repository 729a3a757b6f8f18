package world

import "image/color"

// EnvironmentRecord is one immutable stage definition.
type EnvironmentRecord struct {
	ID         HabitatID
	Name       string
	Background string     // image path relative to the asset root
	Color      color.RGBA // fill used when the background image is missing
	CardBacks  []string   // card-back motif ids, in order
}

// Fallbacks for environments the registry does not know.
var (
	UnknownEnvironmentName = "unknown"
	DefaultBackgroundColor = color.RGBA{240, 248, 255, 255}
	DefaultCardBacks       = []string{"flower"}
)

// Environments is the registry of stages. Character queries are delegated to
// the catalog it was built with.
type Environments struct {
	catalog *Catalog
	order   []HabitatID
	byID    map[HabitatID]EnvironmentRecord
}

// NewEnvironments builds a registry over catalog.
func NewEnvironments(catalog *Catalog, records []EnvironmentRecord) *Environments {
	e := &Environments{
		catalog: catalog,
		byID:    make(map[HabitatID]EnvironmentRecord, len(records)),
	}
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		if rec.Name == "" {
			rec.Name = string(rec.ID)
		}
		if len(rec.CardBacks) == 0 {
			rec.CardBacks = DefaultCardBacks
		}
		if rec.Color.A == 0 {
			rec.Color = DefaultBackgroundColor
		}
		if _, dup := e.byID[rec.ID]; !dup {
			e.order = append(e.order, rec.ID)
		}
		e.byID[rec.ID] = rec
	}
	return e
}

// DefaultEnvironments returns the four built-in stages over catalog.
func DefaultEnvironments(catalog *Catalog) *Environments {
	return NewEnvironments(catalog, []EnvironmentRecord{
		{ID: HabitatJungle, Name: "Jungle", Background: "backgrounds/jungle.png",
			Color: color.RGBA{34, 139, 34, 255}, CardBacks: []string{"tree1", "tree2", "flower"}},
		{ID: HabitatOcean, Name: "Ocean", Background: "backgrounds/ocean.png",
			Color: color.RGBA{0, 105, 148, 255}, CardBacks: []string{"bubble", "coral", "seaweed"}},
		{ID: HabitatDesert, Name: "Desert", Background: "backgrounds/desert.png",
			Color: color.RGBA{210, 180, 140, 255}, CardBacks: []string{"cactus", "rock", "sand"}},
		{ID: HabitatForest, Name: "Forest", Background: "backgrounds/forest.png",
			Color: color.RGBA{139, 69, 19, 255}, CardBacks: []string{"mushroom", "grass", "flower"}},
	})
}

// Catalog returns the character catalog backing the registry.
func (e *Environments) Catalog() *Catalog { return e.catalog }

// IDs returns every habitat id in registry order.
func (e *Environments) IDs() []HabitatID {
	return append([]HabitatID(nil), e.order...)
}

// Get returns the record for id.
func (e *Environments) Get(id HabitatID) (EnvironmentRecord, bool) {
	rec, ok := e.byID[id]
	return rec, ok
}

// Lookup is Get with a fallback record for unknown ids.
func (e *Environments) Lookup(id HabitatID) EnvironmentRecord {
	if rec, ok := e.byID[id]; ok {
		return rec
	}
	return EnvironmentRecord{
		ID:        id,
		Name:      UnknownEnvironmentName,
		Color:     DefaultBackgroundColor,
		CardBacks: DefaultCardBacks,
	}
}

// Name returns the display name of a habitat.
func (e *Environments) Name(id HabitatID) string { return e.Lookup(id).Name }

// CardBacks returns the motif set of a habitat.
func (e *Environments) CardBacks(id HabitatID) []string { return e.Lookup(id).CardBacks }

// Characters returns the characters of habitat id admitted by d.
func (e *Environments) Characters(id HabitatID, d Difficulty) []CharacterID {
	return e.catalog.Eligible(id, d)
}

// Animals returns only the animals of Characters.
func (e *Environments) Animals(id HabitatID, d Difficulty) []CharacterID {
	return e.catalog.EligibleSpecies(id, d, SpeciesAnimal)
}

// Dinosaurs returns only the dinosaurs of Characters.
func (e *Environments) Dinosaurs(id HabitatID, d Difficulty) []CharacterID {
	return e.catalog.EligibleSpecies(id, d, SpeciesDinosaur)
}

package world

import (
	"io"
	"log"
	"testing"
	"testing/fstest"
)

var quiet = log.New(io.Discard, "", 0)

func TestDifficultyAdmits(t *testing.T) {
	tests := []struct {
		round Difficulty
		tier  Difficulty
		want  bool
	}{
		{DifficultyEasy, DifficultyEasy, true},
		{DifficultyEasy, DifficultyNormal, false},
		{DifficultyEasy, DifficultyHard, false},
		{DifficultyNormal, DifficultyEasy, true},
		{DifficultyNormal, DifficultyNormal, true},
		{DifficultyNormal, DifficultyHard, false},
		{DifficultyHard, DifficultyEasy, true},
		{DifficultyHard, DifficultyHard, true},
	}
	for _, tc := range tests {
		if got := tc.round.Admits(tc.tier); got != tc.want {
			t.Errorf("%s.Admits(%s) = %v, want %v", tc.round, tc.tier, got, tc.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard"} {
		d, ok := ParseDifficulty(name)
		if !ok || d.String() != name {
			t.Errorf("ParseDifficulty(%q) = %v, %v", name, d, ok)
		}
	}
	if d, ok := ParseDifficulty("nightmare"); ok || d != DifficultyEasy {
		t.Errorf("ParseDifficulty(nightmare) = %v, %v; want easy, false", d, ok)
	}
}

func TestCatalogNormalizesDinosaurTier(t *testing.T) {
	c := NewCatalog([]CharacterRecord{
		{ID: "raptor", Species: SpeciesDinosaur},
		{ID: "tiny", Species: SpeciesDinosaur, Tier: DifficultyEasy},
		{ID: "cat", Species: "feline"},
	})
	if rec, _ := c.Get("raptor"); rec.Tier != DifficultyNormal {
		t.Errorf("dinosaur default tier = %s, want normal", rec.Tier)
	}
	if rec, _ := c.Get("tiny"); rec.Tier != DifficultyNormal {
		t.Errorf("easy dinosaur tier = %s, want normal", rec.Tier)
	}
	rec, _ := c.Get("cat")
	if rec.Species != SpeciesAnimal || rec.Tier != DifficultyEasy {
		t.Errorf("unknown species normalized to %s/%s, want animal/easy", rec.Species, rec.Tier)
	}
	if rec.Name != "cat" {
		t.Errorf("missing name = %q, want id", rec.Name)
	}
}

func TestCatalogEligible(t *testing.T) {
	c := NewCatalog([]CharacterRecord{
		{ID: "dolphin", Species: SpeciesAnimal, Tier: 1, Habitats: []HabitatID{HabitatOcean}},
		{ID: "shark", Species: SpeciesAnimal, Tier: 2, Habitats: []HabitatID{HabitatOcean}},
		{ID: "plesiosaurus", Species: SpeciesDinosaur, Tier: 2, Habitats: []HabitatID{HabitatOcean}},
		{ID: "mosasaurus", Species: SpeciesDinosaur, Tier: 3, Habitats: []HabitatID{HabitatOcean}},
		{ID: "lion", Species: SpeciesAnimal, Tier: 1, Habitats: []HabitatID{HabitatJungle}},
	})

	tests := []struct {
		d    Difficulty
		want []CharacterID
	}{
		{DifficultyEasy, []CharacterID{"dolphin"}},
		{DifficultyNormal, []CharacterID{"dolphin", "shark", "plesiosaurus"}},
		{DifficultyHard, []CharacterID{"dolphin", "shark", "plesiosaurus", "mosasaurus"}},
	}
	for _, tc := range tests {
		got := c.Eligible(HabitatOcean, tc.d)
		if !equalIDs(got, tc.want) {
			t.Errorf("Eligible(ocean, %s) = %v, want %v", tc.d, got, tc.want)
		}
	}

	if got := c.EligibleSpecies(HabitatOcean, DifficultyHard, SpeciesDinosaur); !equalIDs(got, []CharacterID{"plesiosaurus", "mosasaurus"}) {
		t.Errorf("dinosaurs = %v", got)
	}
}

func TestEncyclopedia(t *testing.T) {
	c := DefaultCatalog()
	entries := c.Encyclopedia(func(id CharacterID) bool { return id == "monkey" })
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for _, e := range entries {
		if e.Discovered != (e.Record.ID == "monkey") {
			t.Errorf("%s discovered = %v", e.Record.ID, e.Discovered)
		}
	}
}

func TestEnvironmentsLookupFallback(t *testing.T) {
	envs := DefaultEnvironments(DefaultCatalog())
	if got := envs.Name(HabitatOcean); got != "Ocean" {
		t.Errorf("Name(ocean) = %q", got)
	}
	rec := envs.Lookup("moon")
	if rec.Name != UnknownEnvironmentName || rec.Color != DefaultBackgroundColor {
		t.Errorf("Lookup(moon) = %+v", rec)
	}
	if backs := envs.CardBacks("moon"); len(backs) != 1 || backs[0] != "flower" {
		t.Errorf("CardBacks(moon) = %v", backs)
	}
	if got := envs.Characters(HabitatJungle, DifficultyEasy); !equalIDs(got, []CharacterID{"lion", "monkey"}) {
		t.Errorf("Characters(jungle, easy) = %v", got)
	}
}

func TestProfileSlotsWithRaggedLastRow(t *testing.T) {
	p := Profile{Rows: 3, Cols: 6, Pairs: 8, CardWidth: 1, CardHeight: 1, LastRowCols: 4, MatchWait: 1, MismatchWait: 1}
	if p.RowColumns(0) != 6 || p.RowColumns(2) != 4 {
		t.Errorf("row columns = %d,%d", p.RowColumns(0), p.RowColumns(2))
	}
	if p.Slots() != 16 {
		t.Errorf("Slots = %d, want 16", p.Slots())
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	p.Pairs = 9
	if err := p.Validate(); err == nil {
		t.Error("Validate accepted 16 slots for 9 pairs")
	}
}

func TestDefaultProfilesAreValid(t *testing.T) {
	p := DefaultProfiles()
	for _, d := range []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if err := p.Get(d).Validate(); err != nil {
			t.Errorf("%s: %v", d, err)
		}
	}
}

func TestProfilesMissingTierFallsBack(t *testing.T) {
	p := NewProfiles(nil)
	got := p.Get(DifficultyHard)
	if got.Rows != 2 || got.Cols != 3 || got.Pairs != 3 || got.Tier != DifficultyHard {
		t.Errorf("fallback = %+v", got)
	}
}

func TestLoadProfilesRejectsInconsistentTier(t *testing.T) {
	data := []byte(`{"difficulty_levels":{
		"easy":{"rows":2,"cols":3,"pairs":3,"card_width":100,"card_height":150,"margin":20,"mismatch_wait":30,"match_wait":20},
		"normal":{"rows":3,"cols":4,"pairs":5,"card_width":100,"card_height":150,"margin":20,"mismatch_wait":30,"match_wait":30}
	}}`)
	p, err := LoadProfiles(data, quiet)
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	if got := p.Get(DifficultyEasy).MatchWait; got != 20 {
		t.Errorf("easy match wait = %d, want 20", got)
	}
	if got := p.Get(DifficultyNormal); got.Pairs != 3 || got.Rows != 2 {
		t.Errorf("invalid normal tier not replaced: %+v", got)
	}
}

func TestLoadCatalogMalformed(t *testing.T) {
	if _, err := LoadCatalog([]byte(`{"characters":`), quiet); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadEnvironmentsDefaultsColor(t *testing.T) {
	data := []byte(`{"environments":[{"id":"ocean","name":"Ocean","card_backs":["coral"]},{"name":"nameless"}]}`)
	envs, err := LoadEnvironments(data, DefaultCatalog(), quiet)
	if err != nil {
		t.Fatalf("LoadEnvironments: %v", err)
	}
	if ids := envs.IDs(); len(ids) != 1 {
		t.Fatalf("IDs = %v, want only ocean", ids)
	}
	if rec := envs.Lookup(HabitatOcean); rec.Color != DefaultBackgroundColor {
		t.Errorf("color = %v, want default", rec.Color)
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		CharactersFile: {Data: []byte(`{"characters":[
			{"id":"dolphin","name":"Dolphin","type":"animal","difficulty":1,"environments":["ocean"]},
			{"id":"whale","name":"Whale","type":"animal","difficulty":1,"environments":["ocean"]},
			{"id":"seal","name":"Seal","type":"animal","difficulty":1,"environments":["ocean"]}
		]}`)},
		EnvironmentsFile: {Data: []byte(`not json`)},
	}
	envs, profiles := LoadAll(fsys, quiet)
	if envs.Catalog().Len() != 3 {
		t.Errorf("catalog len = %d, want 3", envs.Catalog().Len())
	}
	if len(envs.IDs()) != 4 {
		t.Errorf("malformed environments did not fall back to defaults: %v", envs.IDs())
	}
	if got := profiles.Get(DifficultyNormal); got.Pairs != 6 {
		t.Errorf("missing game config did not fall back to defaults: %+v", got)
	}
}

func equalIDs(a, b []CharacterID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package world

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"log"
)

// Data file names inside a data directory.
const (
	CharactersFile   = "characters.json"
	EnvironmentsFile = "environments.json"
	GameConfigFile   = "game_config.json"
)

// characterFile is the JSON form of the character catalog.
type characterFile struct {
	Characters []characterDef `json:"characters"`
}

type characterDef struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Difficulty   int      `json:"difficulty"`
	Environments []string `json:"environments"`
}

// environmentFile is the JSON form of the environment registry.
type environmentFile struct {
	Environments []environmentDef `json:"environments"`
}

type environmentDef struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Background string   `json:"background"`
	Color      [3]uint8 `json:"color"`
	CardBacks  []string `json:"card_backs"`
}

// gameConfigFile is the JSON form of the difficulty table.
type gameConfigFile struct {
	DifficultyLevels map[string]profileDef `json:"difficulty_levels"`
}

type profileDef struct {
	Rows         int `json:"rows"`
	Cols         int `json:"cols"`
	Pairs        int `json:"pairs"`
	CardWidth    int `json:"card_width"`
	CardHeight   int `json:"card_height"`
	Margin       int `json:"margin"`
	LastRowCols  int `json:"last_row_cols"`
	MismatchWait int `json:"mismatch_wait"`
	MatchWait    int `json:"match_wait"`
}

func orDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}

// LoadCatalog parses a character catalog from JSON bytes.
func LoadCatalog(data []byte, logger *log.Logger) (*Catalog, error) {
	logger = orDefault(logger)
	var file characterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse characters: %w", err)
	}
	records := make([]CharacterRecord, 0, len(file.Characters))
	for i, def := range file.Characters {
		if def.ID == "" {
			logger.Printf("characters: entry %d has no id, skipped", i)
			continue
		}
		if def.Type != string(SpeciesAnimal) && def.Type != string(SpeciesDinosaur) {
			logger.Printf("characters: %s has unknown type %q, treated as animal", def.ID, def.Type)
		}
		if def.Difficulty < 0 || def.Difficulty > int(DifficultyHard) {
			logger.Printf("characters: %s has difficulty %d, clamped", def.ID, def.Difficulty)
			def.Difficulty = max(0, min(def.Difficulty, int(DifficultyHard)))
		}
		habitats := make([]HabitatID, 0, len(def.Environments))
		for _, env := range def.Environments {
			habitats = append(habitats, HabitatID(env))
		}
		records = append(records, CharacterRecord{
			ID:       CharacterID(def.ID),
			Name:     def.Name,
			Species:  Species(def.Type),
			Tier:     Difficulty(def.Difficulty),
			Habitats: habitats,
		})
	}
	return NewCatalog(records), nil
}

// LoadEnvironments parses the environment registry from JSON bytes.
func LoadEnvironments(data []byte, catalog *Catalog, logger *log.Logger) (*Environments, error) {
	logger = orDefault(logger)
	var file environmentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse environments: %w", err)
	}
	records := make([]EnvironmentRecord, 0, len(file.Environments))
	for i, def := range file.Environments {
		if def.ID == "" {
			logger.Printf("environments: entry %d has no id, skipped", i)
			continue
		}
		rec := EnvironmentRecord{
			ID:         HabitatID(def.ID),
			Name:       def.Name,
			Background: def.Background,
			CardBacks:  def.CardBacks,
		}
		// An absent color stays zero so the registry applies its default.
		if def.Color != [3]uint8{} {
			rec.Color = color.RGBA{def.Color[0], def.Color[1], def.Color[2], 255}
		}
		records = append(records, rec)
	}
	return NewEnvironments(catalog, records), nil
}

// LoadProfiles parses the difficulty table from JSON bytes. A tier whose
// entry is missing or fails validation falls back to FallbackProfile.
func LoadProfiles(data []byte, logger *log.Logger) (*Profiles, error) {
	logger = orDefault(logger)
	var file gameConfigFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}
	var profiles []Profile
	for _, tier := range []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		def, ok := file.DifficultyLevels[tier.String()]
		if !ok {
			logger.Printf("game config: no %s difficulty, using %dx%d fallback", tier, FallbackProfile.Rows, FallbackProfile.Cols)
			continue
		}
		prof := Profile{
			Tier:         tier,
			Rows:         def.Rows,
			Cols:         def.Cols,
			Pairs:        def.Pairs,
			CardWidth:    def.CardWidth,
			CardHeight:   def.CardHeight,
			Margin:       def.Margin,
			LastRowCols:  def.LastRowCols,
			MismatchWait: def.MismatchWait,
			MatchWait:    def.MatchWait,
		}
		if err := prof.Validate(); err != nil {
			logger.Printf("game config: %s difficulty invalid (%v), using fallback", tier, err)
			continue
		}
		profiles = append(profiles, prof)
	}
	return NewProfiles(profiles), nil
}

// LoadAll reads the three data files from fsys. Any file that is missing or
// malformed is replaced by the built-in defaults; the gap is logged, never
// returned.
func LoadAll(fsys fs.FS, logger *log.Logger) (*Environments, *Profiles) {
	logger = orDefault(logger)

	catalog := DefaultCatalog()
	if data, err := fs.ReadFile(fsys, CharactersFile); err != nil {
		logger.Printf("load %s: %v", CharactersFile, err)
	} else if c, err := LoadCatalog(data, logger); err != nil {
		logger.Printf("load %s: %v", CharactersFile, err)
	} else {
		catalog = c
	}

	envs := DefaultEnvironments(catalog)
	if data, err := fs.ReadFile(fsys, EnvironmentsFile); err != nil {
		logger.Printf("load %s: %v", EnvironmentsFile, err)
	} else if e, err := LoadEnvironments(data, catalog, logger); err != nil {
		logger.Printf("load %s: %v", EnvironmentsFile, err)
	} else {
		envs = e
	}

	profiles := DefaultProfiles()
	if data, err := fs.ReadFile(fsys, GameConfigFile); err != nil {
		logger.Printf("load %s: %v", GameConfigFile, err)
	} else if p, err := LoadProfiles(data, logger); err != nil {
		logger.Printf("load %s: %v", GameConfigFile, err)
	} else {
		profiles = p
	}

	return envs, profiles
}

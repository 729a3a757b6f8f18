package world

import "fmt"

// Profile is the immutable board configuration for one difficulty tier.
// Wait durations are counted in ticks.
type Profile struct {
	Tier         Difficulty
	Rows         int
	Cols         int
	Pairs        int
	CardWidth    int
	CardHeight   int
	Margin       int
	LastRowCols  int // 0 = last row uses Cols
	MismatchWait int
	MatchWait    int
}

// FallbackProfile is used for a tier that has no usable configuration.
var FallbackProfile = Profile{
	Rows:         2,
	Cols:         3,
	Pairs:        3,
	CardWidth:    100,
	CardHeight:   150,
	Margin:       20,
	MismatchWait: 30,
	MatchWait:    30,
}

// RowColumns returns the number of cards in row r.
func (p Profile) RowColumns(r int) int {
	if r == p.Rows-1 && p.LastRowCols > 0 {
		return p.LastRowCols
	}
	return p.Cols
}

// Slots returns the number of grid cells the profile lays out.
func (p Profile) Slots() int {
	n := 0
	for r := 0; r < p.Rows; r++ {
		n += p.RowColumns(r)
	}
	return n
}

// Validate checks that the grid is well-formed and holds exactly 2*Pairs cards.
func (p Profile) Validate() error {
	switch {
	case p.Rows <= 0 || p.Cols <= 0:
		return fmt.Errorf("grid %dx%d is empty", p.Rows, p.Cols)
	case p.Pairs <= 0:
		return fmt.Errorf("pairs must be positive, got %d", p.Pairs)
	case p.CardWidth <= 0 || p.CardHeight <= 0:
		return fmt.Errorf("card size %dx%d is empty", p.CardWidth, p.CardHeight)
	case p.Margin < 0:
		return fmt.Errorf("negative margin %d", p.Margin)
	case p.LastRowCols < 0 || p.LastRowCols > p.Cols:
		return fmt.Errorf("last row columns %d out of range 0..%d", p.LastRowCols, p.Cols)
	case p.MismatchWait <= 0 || p.MatchWait <= 0:
		return fmt.Errorf("waits must be positive, got mismatch=%d match=%d", p.MismatchWait, p.MatchWait)
	case p.Slots() != 2*p.Pairs:
		return fmt.Errorf("%d grid slots for %d pairs", p.Slots(), p.Pairs)
	}
	return nil
}

// Profiles maps tiers to board profiles.
type Profiles struct {
	byTier map[Difficulty]Profile
}

// NewProfiles builds a profile table. The tier of each profile is its key.
func NewProfiles(profiles []Profile) *Profiles {
	p := &Profiles{byTier: make(map[Difficulty]Profile, len(profiles))}
	for _, prof := range profiles {
		p.byTier[prof.Tier] = prof
	}
	return p
}

// DefaultProfiles returns the built-in easy/normal/hard table.
func DefaultProfiles() *Profiles {
	return NewProfiles([]Profile{
		{Tier: DifficultyEasy, Rows: 2, Cols: 3, Pairs: 3, CardWidth: 100, CardHeight: 150, Margin: 20,
			MismatchWait: 30, MatchWait: 30},
		{Tier: DifficultyNormal, Rows: 3, Cols: 4, Pairs: 6, CardWidth: 100, CardHeight: 130, Margin: 16,
			MismatchWait: 40, MatchWait: 30},
		{Tier: DifficultyHard, Rows: 3, Cols: 6, Pairs: 8, CardWidth: 80, CardHeight: 110, Margin: 12,
			LastRowCols: 4, MismatchWait: 45, MatchWait: 30},
	})
}

// Get returns the profile for tier d, or FallbackProfile tagged with d.
func (p *Profiles) Get(d Difficulty) Profile {
	if prof, ok := p.byTier[d]; ok {
		return prof
	}
	fb := FallbackProfile
	fb.Tier = d
	return fb
}

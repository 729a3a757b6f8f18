package game

import (
	"sort"

	"github.com/dino-pairs/dino_pairs/internal/world"
	"github.com/zyedidia/generic/mapset"
)

// MatchBonus is the score awarded for each matched pair.
const MatchBonus = 100

// Progress is the per-session memory of the player: the current selection,
// every character matched at least once, and the cumulative score.
type Progress struct {
	Environment world.HabitatID
	Difficulty  world.Difficulty
	Score       int

	discovered mapset.Set[world.CharacterID]
}

// NewProgress creates an empty session progress at easy difficulty.
func NewProgress() *Progress {
	return &Progress{
		Difficulty: world.DifficultyEasy,
		discovered: mapset.New[world.CharacterID](),
	}
}

// Begin records the environment and difficulty of a new round.
// Discoveries and score carry over for the whole session.
func (p *Progress) Begin(env world.HabitatID, d world.Difficulty) {
	p.Environment = env
	p.Difficulty = d
}

// Reset clears the environment selection.
func (p *Progress) Reset() {
	p.Environment = ""
}

// Discover marks id as found. Returns true the first time only.
func (p *Progress) Discover(id world.CharacterID) bool {
	if p.discovered.Has(id) {
		return false
	}
	p.discovered.Put(id)
	return true
}

// IsDiscovered reports whether id was ever matched this session.
func (p *Progress) IsDiscovered(id world.CharacterID) bool {
	return p.discovered.Has(id)
}

// DiscoveredCount returns the size of the discovered set.
func (p *Progress) DiscoveredCount() int { return p.discovered.Size() }

// Discovered returns the discovered ids, sorted.
func (p *Progress) Discovered() []world.CharacterID {
	out := make([]world.CharacterID, 0, p.discovered.Size())
	p.discovered.Each(func(id world.CharacterID) {
		out = append(out, id)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddScore increases the score. Negative deltas are ignored; the score never
// goes down.
func (p *Progress) AddScore(delta int) {
	if delta > 0 {
		p.Score += delta
	}
}

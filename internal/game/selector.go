package game

import (
	"math/rand/v2"

	"github.com/dino-pairs/dino_pairs/internal/world"
)

// widenPerHabitat caps how many easy characters one foreign habitat may lend
// to an undersized pool.
const widenPerHabitat = 2

// SelectCharacters picks exactly pairs character ids for a round in habitat
// env at difficulty d.
//
// The pool starts with the habitat's eligible characters (or the default
// triplet when there are none). While it holds fewer than pairs distinct ids
// it borrows up to widenPerHabitat easy characters from each other habitat,
// in registry order. The result is then drawn from the pool without
// replacement. Only when the whole catalog cannot supply pairs distinct ids
// are entries repeated.
func SelectCharacters(envs *world.Environments, env world.HabitatID, d world.Difficulty, pairs int, rng *rand.Rand) []world.CharacterID {
	if pairs <= 0 {
		return nil
	}

	pool := newIDPool()
	for _, id := range envs.Characters(env, d) {
		pool.add(id)
	}
	if pool.len() == 0 {
		for _, id := range world.DefaultCharacters {
			pool.add(id)
		}
	}

	if pool.len() < pairs {
		for _, other := range envs.IDs() {
			if other == env {
				continue
			}
			borrowed := 0
			for _, id := range shuffled(envs.Characters(other, world.DifficultyEasy), rng) {
				if borrowed == widenPerHabitat {
					break
				}
				if pool.add(id) {
					borrowed++
				}
			}
			if pool.len() >= pairs {
				break
			}
		}
	}

	ids := shuffled(pool.ids, rng)
	if len(ids) >= pairs {
		return ids[:pairs]
	}

	// Not enough distinct characters anywhere: repeat the shuffled pool.
	out := make([]world.CharacterID, 0, pairs)
	for len(out) < pairs {
		out = append(out, ids[len(out)%len(ids)])
	}
	return out
}

// idPool is an insertion-ordered set of character ids.
type idPool struct {
	ids  []world.CharacterID
	seen map[world.CharacterID]bool
}

func newIDPool() *idPool {
	return &idPool{seen: make(map[world.CharacterID]bool)}
}

func (p *idPool) add(id world.CharacterID) bool {
	if p.seen[id] {
		return false
	}
	p.seen[id] = true
	p.ids = append(p.ids, id)
	return true
}

func (p *idPool) len() int { return len(p.ids) }

func shuffled(ids []world.CharacterID, rng *rand.Rand) []world.CharacterID {
	out := append([]world.CharacterID(nil), ids...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

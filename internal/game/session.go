package game

import (
	"math/rand/v2"

	"github.com/dino-pairs/dino_pairs/internal/world"
)

const (
	logSize  = 6
	logWidth = 48
)

// Session owns the game data, the player's progress, and the round in play
// (nil while on the select screen).
type Session struct {
	Envs     *world.Environments
	Profiles *world.Profiles
	Progress *Progress
	Log      *MessageLog
	Round    *Round
	Viewport Viewport

	rng *rand.Rand
}

// NewSession creates a session. rng drives character selection, shuffling
// and card-back motifs.
func NewSession(envs *world.Environments, profiles *world.Profiles, vp Viewport, rng *rand.Rand) *Session {
	return &Session{
		Envs:     envs,
		Profiles: profiles,
		Progress: NewProgress(),
		Log:      NewMessageLog(logSize, logWidth),
		Viewport: vp,
		rng:      rng,
	}
}

// StartRound deals a new board for env at difficulty d and makes it current.
// Any round in play is discarded.
func (s *Session) StartRound(env world.HabitatID, d world.Difficulty) *Round {
	s.Progress.Begin(env, d)
	profile := s.Profiles.Get(d)

	chars := SelectCharacters(s.Envs, env, d, profile.Pairs, s.rng)
	board := LayoutBoard(profile, chars, s.Viewport, s.rng, s.Envs.CardBacks(env))

	s.Log.Clear()
	s.Log.Add("Find the matching pairs in the "+s.Envs.Name(env)+"!", MsgInfo)
	s.Round = NewRound(board, profile, s.Progress, s.Envs.Catalog(), s.Log)
	return s.Round
}

// Leave discards the current round and its pending countdown.
func (s *Session) Leave() {
	s.Round = nil
	s.Progress.Reset()
}

// HandleEvent routes input to the current round. Leaving ends the round.
func (s *Session) HandleEvent(ev Event) Outcome {
	if s.Round == nil {
		if ev.Kind == EventQuit {
			return OutcomeQuit
		}
		return OutcomeNone
	}
	out := s.Round.HandleEvent(ev)
	if out == OutcomeLeave {
		s.Leave()
	}
	return out
}

// Tick advances the current round, if any.
func (s *Session) Tick() {
	if s.Round != nil {
		s.Round.Tick()
	}
}

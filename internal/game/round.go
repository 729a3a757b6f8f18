package game

import (
	"fmt"

	"github.com/dino-pairs/dino_pairs/internal/world"
)

// Phase is the state of a round.
type Phase uint8

const (
	PhaseIdle          Phase = iota // zero or one unmatched card face up
	PhaseResolving                  // two unmatched cards face up, countdown running
	PhaseRoundComplete              // every pair found
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseResolving:
		return "Resolving"
	case PhaseRoundComplete:
		return "RoundComplete"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// EventKind identifies a player input.
type EventKind uint8

const (
	EventPointerDown EventKind = iota // mouse click or touch, at (X, Y)
	EventBack                         // leave the game screen
	EventQuit                         // close the game
)

// Event is one input delivered to a round.
type Event struct {
	Kind EventKind
	X, Y int
}

// Outcome tells the caller what an event did.
type Outcome uint8

const (
	OutcomeNone    Outcome = iota // ignored
	OutcomeFlipped                // a card was turned face up
	OutcomeLeave                  // navigate away; the round is over
	OutcomeQuit                   // shut down
)

// Round is the card-matching state machine for one board. It is driven from
// a single loop: HandleEvent for input, Tick once per frame.
type Round struct {
	Board    *Board
	Profile  world.Profile
	Progress *Progress
	Catalog  *world.Catalog // display names for log lines; may be nil
	Log      *MessageLog    // may be nil
	Ticks    uint64
}

// NewRound starts a round on board.
func NewRound(board *Board, profile world.Profile, progress *Progress, catalog *world.Catalog, log *MessageLog) *Round {
	return &Round{
		Board:    board,
		Profile:  profile,
		Progress: progress,
		Catalog:  catalog,
		Log:      log,
	}
}

// Phase derives the current state from the board.
func (r *Round) Phase() Phase {
	switch {
	case r.Board.Complete():
		return PhaseRoundComplete
	case r.Board.Wait > 0:
		return PhaseResolving
	default:
		return PhaseIdle
	}
}

// HandleEvent applies one input. Quit and back are honored in every phase;
// pointer input only while idle.
func (r *Round) HandleEvent(ev Event) Outcome {
	switch ev.Kind {
	case EventQuit:
		return OutcomeQuit
	case EventBack:
		return OutcomeLeave
	case EventPointerDown:
		if r.Phase() != PhaseIdle {
			return OutcomeNone
		}
		idx := r.Board.CardAt(ev.X, ev.Y)
		if idx < 0 || !r.Select(idx) {
			return OutcomeNone
		}
		return OutcomeFlipped
	}
	return OutcomeNone
}

// Select turns card idx face up. It returns false, changing nothing, when the
// round is not idle or the card is out of range, already face up, or matched.
// Turning the second card records the outcome and starts the countdown.
func (r *Round) Select(idx int) bool {
	b := r.Board
	if r.Phase() != PhaseIdle || idx < 0 || idx >= len(b.Cards) {
		return false
	}
	card := &b.Cards[idx]
	if card.FaceUp || card.Matched {
		return false
	}
	card.FaceUp = true

	if b.First == noCard {
		b.First = idx
		return true
	}

	b.Second = idx
	b.PendingMatch = b.Cards[b.First].Character == card.Character
	if b.PendingMatch {
		b.Wait = max(r.Profile.MatchWait, 1)
	} else {
		b.Wait = max(r.Profile.MismatchWait, 1)
	}
	return true
}

// Tick advances the round by one frame, resolving the pending pair when its
// countdown reaches zero.
func (r *Round) Tick() {
	r.Ticks++
	if r.Board.Wait == 0 {
		return
	}
	r.Board.Wait--
	if r.Board.Wait == 0 {
		r.resolve()
	}
}

func (r *Round) resolve() {
	b := r.Board
	if b.First == noCard || b.Second == noCard {
		b.First, b.Second, b.PendingMatch = noCard, noCard, false
		return
	}
	first, second := &b.Cards[b.First], &b.Cards[b.Second]

	if b.PendingMatch {
		first.Matched = true
		second.Matched = true
		b.MatchedPairs++
		r.Progress.Discover(first.Character)
		r.Progress.AddScore(MatchBonus)
		r.Log.Add(fmt.Sprintf("Found a %s! +%d", r.name(first.Character), MatchBonus), MsgMatch)
	} else {
		first.FaceUp = false
		second.FaceUp = false
		r.Log.Add("Not a match. Try again!", MsgMiss)
	}

	b.First, b.Second, b.PendingMatch = noCard, noCard, false

	if b.Complete() {
		r.Log.Add(fmt.Sprintf("All %d pairs found!", b.TotalPairs), MsgComplete)
	}
}

func (r *Round) name(id world.CharacterID) string {
	if r.Catalog == nil {
		return string(id)
	}
	return r.Catalog.Name(id)
}

package game

import (
	"testing"

	"github.com/dino-pairs/dino_pairs/internal/world"
)

// newTestRound deals an easy board of lion/tiger/panda.
func newTestRound(t *testing.T) *Round {
	t.Helper()
	profile := world.DefaultProfiles().Get(world.DifficultyEasy)
	profile.MatchWait = 30
	profile.MismatchWait = 45
	board := LayoutBoard(profile, []world.CharacterID{"lion", "tiger", "panda"}, testViewport, testRNG(42), nil)
	return NewRound(board, profile, NewProgress(), nil, NewMessageLog(10, 0))
}

// cardsOf returns the indices of the two cards showing id.
func cardsOf(t *testing.T, b *Board, id world.CharacterID) (int, int) {
	t.Helper()
	var idx []int
	for i, c := range b.Cards {
		if c.Character == id {
			idx = append(idx, i)
		}
	}
	if len(idx) != 2 {
		t.Fatalf("%s on %d cards", id, len(idx))
	}
	return idx[0], idx[1]
}

func tickN(r *Round, n int) {
	for i := 0; i < n; i++ {
		r.Tick()
	}
}

// Scenario: two lions match after the match wait.
func TestRoundMatch(t *testing.T) {
	r := newTestRound(t)
	a, b := cardsOf(t, r.Board, "lion")

	if !r.Select(a) || !r.Select(b) {
		t.Fatal("select failed")
	}
	if r.Phase() != PhaseResolving {
		t.Fatalf("phase = %s, want Resolving", r.Phase())
	}
	if !r.Board.PendingMatch {
		t.Error("match outcome not recorded on second select")
	}

	tickN(r, 29)
	if r.Board.Cards[a].Matched || r.Board.MatchedPairs != 0 {
		t.Fatal("resolved before match wait elapsed")
	}
	r.Tick()

	if !r.Board.Cards[a].Matched || !r.Board.Cards[b].Matched {
		t.Error("cards not matched after wait")
	}
	if r.Board.MatchedPairs != 1 {
		t.Errorf("matched pairs = %d, want 1", r.Board.MatchedPairs)
	}
	if !r.Progress.IsDiscovered("lion") {
		t.Error("lion not discovered")
	}
	if r.Progress.Score != MatchBonus {
		t.Errorf("score = %d, want %d", r.Progress.Score, MatchBonus)
	}
	if r.Phase() != PhaseIdle || r.Board.First != -1 || r.Board.Second != -1 {
		t.Errorf("pending slots not cleared: phase=%s first=%d second=%d", r.Phase(), r.Board.First, r.Board.Second)
	}
}

// Scenario: tiger then panda turn back over after the mismatch wait.
func TestRoundMismatch(t *testing.T) {
	r := newTestRound(t)
	tg, _ := cardsOf(t, r.Board, "tiger")
	pd, _ := cardsOf(t, r.Board, "panda")

	r.Select(tg)
	r.Select(pd)
	if r.Board.PendingMatch {
		t.Fatal("mismatch recorded as match")
	}
	if r.Board.Wait != 45 {
		t.Errorf("wait = %d, want mismatch wait 45", r.Board.Wait)
	}

	tickN(r, 44)
	if !r.Board.Cards[tg].FaceUp {
		t.Fatal("cards hidden before mismatch wait elapsed")
	}
	r.Tick()

	if r.Board.Cards[tg].FaceUp || r.Board.Cards[pd].FaceUp {
		t.Error("cards still face up after mismatch")
	}
	if r.Board.MatchedPairs != 0 || r.Progress.DiscoveredCount() != 0 || r.Progress.Score != 0 {
		t.Errorf("mismatch had durable effects: pairs=%d discovered=%d score=%d",
			r.Board.MatchedPairs, r.Progress.DiscoveredCount(), r.Progress.Score)
	}
	if r.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want Idle", r.Phase())
	}
}

func TestRoundReselectPendingIsNoop(t *testing.T) {
	r := newTestRound(t)
	a, _ := cardsOf(t, r.Board, "lion")
	r.Select(a)
	if r.Select(a) {
		t.Error("re-selecting the pending card succeeded")
	}
	if r.Board.Second != -1 || r.Phase() != PhaseIdle {
		t.Errorf("state changed: second=%d phase=%s", r.Board.Second, r.Phase())
	}
}

func TestRoundIgnoresSelectionWhileResolving(t *testing.T) {
	r := newTestRound(t)
	tg, _ := cardsOf(t, r.Board, "tiger")
	pd, _ := cardsOf(t, r.Board, "panda")
	ln, _ := cardsOf(t, r.Board, "lion")
	r.Select(tg)
	r.Select(pd)

	if r.Select(ln) {
		t.Error("third card selected while resolving")
	}
	rect := r.Board.Cards[ln].Rect
	if out := r.HandleEvent(Event{Kind: EventPointerDown, X: rect.X + 1, Y: rect.Y + 1}); out != OutcomeNone {
		t.Errorf("pointer while resolving = %v, want none", out)
	}
	if got := r.Board.Revealed(); got != 2 {
		t.Errorf("revealed = %d, want 2", got)
	}
}

func TestRoundBackHonoredWhileResolving(t *testing.T) {
	r := newTestRound(t)
	tg, _ := cardsOf(t, r.Board, "tiger")
	pd, _ := cardsOf(t, r.Board, "panda")
	r.Select(tg)
	r.Select(pd)
	if out := r.HandleEvent(Event{Kind: EventBack}); out != OutcomeLeave {
		t.Errorf("back = %v, want leave", out)
	}
	if out := r.HandleEvent(Event{Kind: EventQuit}); out != OutcomeQuit {
		t.Errorf("quit = %v, want quit", out)
	}
}

func TestRoundPointerSelectsCard(t *testing.T) {
	r := newTestRound(t)
	rect := r.Board.Cards[2].Rect
	if out := r.HandleEvent(Event{Kind: EventPointerDown, X: rect.X + 5, Y: rect.Y + 5}); out != OutcomeFlipped {
		t.Fatalf("outcome = %v, want flipped", out)
	}
	if !r.Board.Cards[2].FaceUp || r.Board.First != 2 {
		t.Error("clicked card not pending")
	}
	if out := r.HandleEvent(Event{Kind: EventPointerDown, X: 0, Y: 0}); out != OutcomeNone {
		t.Errorf("click on empty space = %v", out)
	}
}

// Scenario: completing every pair ends the round; only navigation remains.
func TestRoundComplete(t *testing.T) {
	r := newTestRound(t)
	lastPairs := 0
	for _, id := range []world.CharacterID{"lion", "tiger", "panda"} {
		a, b := cardsOf(t, r.Board, id)
		r.Select(a)
		r.Select(b)
		tickN(r, r.Profile.MatchWait)
		if r.Board.MatchedPairs < lastPairs || r.Board.MatchedPairs > r.Board.TotalPairs {
			t.Fatalf("matched pairs went %d -> %d", lastPairs, r.Board.MatchedPairs)
		}
		lastPairs = r.Board.MatchedPairs
	}

	if r.Phase() != PhaseRoundComplete {
		t.Fatalf("phase = %s, want RoundComplete", r.Phase())
	}
	if r.Progress.Score != 3*MatchBonus || r.Progress.DiscoveredCount() != 3 {
		t.Errorf("score=%d discovered=%d", r.Progress.Score, r.Progress.DiscoveredCount())
	}

	// Every card is matched, so even a forced state cannot be flipped.
	for i := range r.Board.Cards {
		if r.Select(i) {
			t.Fatalf("select %d accepted after completion", i)
		}
	}
	rect := r.Board.Cards[0].Rect
	if out := r.HandleEvent(Event{Kind: EventPointerDown, X: rect.X + 1, Y: rect.Y + 1}); out != OutcomeNone {
		t.Errorf("pointer after completion = %v", out)
	}
	tickN(r, 100)
	if r.Phase() != PhaseRoundComplete {
		t.Error("completion not terminal")
	}
	if out := r.HandleEvent(Event{Kind: EventBack}); out != OutcomeLeave {
		t.Errorf("back after completion = %v, want leave", out)
	}
	if msgs := r.Log.Recent(1); len(msgs) != 1 || msgs[0].Kind != MsgComplete {
		t.Errorf("last log line = %+v", msgs)
	}
}

// At most two unmatched cards are face up, and the countdown only runs while
// exactly two are, across an arbitrary click sequence.
func TestRoundInvariantsUnderRandomInput(t *testing.T) {
	r := newTestRound(t)
	rng := testRNG(7)
	prevPairs := 0
	for tick := 0; tick < 20000 && r.Phase() != PhaseRoundComplete; tick++ {
		if rng.IntN(3) == 0 {
			r.Select(rng.IntN(len(r.Board.Cards)))
		}
		r.Tick()

		revealed := r.Board.Revealed()
		if revealed > 2 {
			t.Fatalf("tick %d: %d unmatched cards face up", tick, revealed)
		}
		if r.Board.Wait > 0 && revealed != 2 {
			t.Fatalf("tick %d: countdown %d with %d revealed", tick, r.Board.Wait, revealed)
		}
		if r.Board.MatchedPairs < prevPairs || r.Board.MatchedPairs > r.Board.TotalPairs {
			t.Fatalf("tick %d: matched pairs %d -> %d", tick, prevPairs, r.Board.MatchedPairs)
		}
		prevPairs = r.Board.MatchedPairs
	}
	if r.Phase() != PhaseRoundComplete {
		t.Errorf("random play did not finish: %d/%d", r.Board.MatchedPairs, r.Board.TotalPairs)
	}
	if r.Progress.Score != r.Board.TotalPairs*MatchBonus {
		t.Errorf("score = %d, want one bonus per pair", r.Progress.Score)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseResolving.String() != "Resolving" || Phase(9).String() != "Phase(9)" {
		t.Error("unexpected phase names")
	}
}

package main

import (
	"fmt"
	"image"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dino-pairs/dino_pairs/assets"
	"github.com/dino-pairs/dino_pairs/internal/config"
	"github.com/dino-pairs/dino_pairs/internal/game"
	"github.com/dino-pairs/dino_pairs/internal/render"
	"github.com/dino-pairs/dino_pairs/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	title = "Dino Pairs"

	cellWidth  = 16
	cellHeight = 16

	logRows  = 4 // message lines above the hint row
	barWidth = 12
)

// Fixed rows of the select screen.
const (
	envRow      = 6
	diffRow     = 13
	hintRowSel  = 19
	progressRow = 21
)

type view uint8

const (
	viewSelect view = iota
	viewPlay
	viewEncyclopedia
)

var difficulties = []world.Difficulty{world.DifficultyEasy, world.DifficultyNormal, world.DifficultyHard}

// Game is the Ebitengine game struct. It owns rendering and input; all
// gameplay state lives in the session.
type Game struct {
	cfg     config.Config
	session *game.Session
	envIDs  []world.HabitatID

	board    *render.BoardRenderer
	banner   *render.Banner
	renderer *render.GridRenderer
	buffer   *render.CellBuffer

	view    view
	env     world.HabitatID
	diff    world.Difficulty
	touches []ebiten.TouchID
}

func NewGame(cfg config.Config) *Game {
	envs, profiles := world.LoadAll(dataFS(cfg), nil)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>16|7))

	vp := game.Viewport{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight}
	session := game.NewSession(envs, profiles, vp, rng)

	diff, ok := world.ParseDifficulty(cfg.Difficulty)
	if !ok {
		log.Printf("unknown difficulty %q, using easy", cfg.Difficulty)
		diff = world.DifficultyEasy
	}

	banner, err := render.NewBanner()
	if err != nil {
		log.Fatalf("banner: %v", err)
	}

	store := render.NewAssetStore(os.DirFS(cfg.AssetDir), envs, nil)
	atlas := render.NewFontAtlas()

	g := &Game{
		cfg:      cfg,
		session:  session,
		envIDs:   envs.IDs(),
		board:    render.NewBoardRenderer(store, envs),
		banner:   banner,
		renderer: render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(cfg.ScreenWidth/cellWidth, cfg.ScreenHeight/cellHeight),
		diff:     diff,
	}
	if len(g.envIDs) > 0 {
		g.env = g.envIDs[0]
	}
	g.compose()
	return g
}

// dataFS returns the on-disk override directory, or the embedded data.
func dataFS(cfg config.Config) fs.FS {
	if cfg.DataDir != "" {
		return os.DirFS(cfg.DataDir)
	}
	sub, err := fs.Sub(assets.Data, "data")
	if err != nil {
		log.Fatalf("embedded data: %v", err)
	}
	return sub
}

// pointerPresses returns this frame's new mouse clicks and touches.
func (g *Game) pointerPresses() []image.Point {
	var pts []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, image.Pt(x, y))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

func backPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

func (g *Game) Update() error {
	var err error
	switch g.view {
	case viewSelect:
		err = g.updateSelect()
	case viewPlay:
		err = g.updatePlay()
	case viewEncyclopedia:
		if backPressed() || len(g.pointerPresses()) > 0 {
			g.view = viewSelect
		}
	}
	if err != nil {
		return err
	}
	g.compose()
	return nil
}

func (g *Game) updateSelect() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if i < len(g.envIDs) && inpututil.IsKeyJustPressed(key) {
			g.env = g.envIDs[i]
		}
	}
	for i, key := range []ebiten.Key{ebiten.KeyE, ebiten.KeyN, ebiten.KeyH} {
		if inpututil.IsKeyJustPressed(key) {
			g.diff = difficulties[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.view = viewEncyclopedia
		return nil
	}

	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	for _, p := range g.pointerPresses() {
		_, row := g.renderer.CellAt(p.X, p.Y)
		switch {
		case row >= envRow && row < envRow+len(g.envIDs):
			g.env = g.envIDs[row-envRow]
		case row >= diffRow && row < diffRow+len(difficulties):
			g.diff = difficulties[row-diffRow]
		case row == hintRowSel:
			start = true
		}
	}
	if start && g.env != "" {
		g.session.StartRound(g.env, g.diff)
		g.view = viewPlay
	}
	return nil
}

func (g *Game) updatePlay() error {
	if g.session.Round == nil {
		g.view = viewSelect
		return nil
	}
	var events []game.Event
	if backPressed() {
		events = append(events, game.Event{Kind: game.EventBack})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		events = append(events, game.Event{Kind: game.EventQuit})
	}
	complete := g.session.Round.Phase() == game.PhaseRoundComplete
	for _, p := range g.pointerPresses() {
		if complete {
			events = append(events, game.Event{Kind: game.EventBack})
			continue
		}
		events = append(events, game.Event{Kind: game.EventPointerDown, X: p.X, Y: p.Y})
	}

	for _, ev := range events {
		switch g.session.HandleEvent(ev) {
		case game.OutcomeQuit:
			return ebiten.Termination
		case game.OutcomeLeave:
			g.view = viewSelect
			return nil
		}
	}
	g.session.Tick()
	return nil
}

// compose rebuilds the HUD cell buffer for the current screen.
func (g *Game) compose() {
	buf := g.buffer
	buf.Clear()
	switch g.view {
	case viewSelect:
		g.composeSelect(buf)
	case viewPlay:
		g.composePlay(buf)
	case viewEncyclopedia:
		g.composeEncyclopedia(buf)
	}
}

func (g *Game) composeSelect(buf *render.CellBuffer) {
	envs := g.session.Envs
	buf.WriteCentered(2, title, render.ColorYellow, render.ColorNone)

	buf.WriteString(4, envRow-2, "Choose a place:", render.ColorLightCyan, render.ColorNone)
	for i, id := range g.envIDs {
		fg, bg := uint8(render.ColorGray), uint8(render.ColorNone)
		if id == g.env {
			fg, bg = render.ColorWhite, render.ColorDarkGray
			buf.FillRow(envRow+i, bg)
		}
		buf.WriteString(6, envRow+i, fmt.Sprintf("[%d] %s", i+1, envs.Name(id)), fg, bg)
	}

	buf.WriteString(4, diffRow-2, "Difficulty:", render.ColorLightCyan, render.ColorNone)
	for i, d := range difficulties {
		fg, bg := uint8(render.ColorGray), uint8(render.ColorNone)
		if d == g.diff {
			fg, bg = render.ColorWhite, render.ColorDarkGray
			buf.FillRow(diffRow+i, bg)
		}
		p := g.session.Profiles.Get(d)
		label := fmt.Sprintf("[%c] %-7s %d pairs", "ENH"[i], d, p.Pairs)
		buf.WriteString(6, diffRow+i, label, fg, bg)
	}

	buf.FillRow(hintRowSel, render.ColorBrown)
	buf.WriteCentered(hintRowSel, "Enter or click here: Play", render.ColorWhite, render.ColorBrown)

	prog := g.session.Progress
	found := fmt.Sprintf("Discovered %d/%d  [C] Encyclopedia",
		prog.DiscoveredCount(), envs.Catalog().Len())
	buf.WriteString(4, progressRow, found, render.ColorLightGreen, render.ColorNone)
	buf.WriteString(4, buf.Rows-1, "Esc: Quit", render.ColorDarkGray, render.ColorNone)
}

func (g *Game) composePlay(buf *render.CellBuffer) {
	r := g.session.Round
	prog := g.session.Progress
	if r == nil {
		return
	}

	buf.FillRow(0, render.ColorBlack)
	buf.WriteString(1, 0, g.session.Envs.Name(prog.Environment), render.ColorLightCyan, render.ColorBlack)
	buf.WriteString(16, 0, fmt.Sprintf("Score %d", prog.Score), render.ColorYellow, render.ColorBlack)
	drawPairsBar(buf, buf.Cols-barWidth-9, 0, r.Board.MatchedPairs, r.Board.TotalPairs)

	msgs := g.session.Log.Recent(logRows)
	top := buf.Rows - 1 - len(msgs)
	for i, msg := range msgs {
		buf.WriteString(1, top+i, msg.Text, msgColor(msg.Kind), render.ColorBlack)
	}

	hint := "Click a card  Esc: Back  Q: Quit"
	if r.Phase() == game.PhaseRoundComplete {
		hint = "Click or Esc: Back to menu"
	}
	buf.FillRow(buf.Rows-1, render.ColorBlack)
	buf.WriteString(1, buf.Rows-1, hint, render.ColorDarkGray, render.ColorBlack)
}

func (g *Game) composeEncyclopedia(buf *render.CellBuffer) {
	buf.WriteCentered(1, "Encyclopedia", render.ColorYellow, render.ColorNone)

	const colWidth = 20
	entries := g.session.Envs.Catalog().Encyclopedia(g.session.Progress.IsDiscovered)
	perCol := buf.Rows - 6
	for i, e := range entries {
		x := 1 + (i/perCol)*colWidth
		y := 3 + i%perCol
		if e.Discovered {
			fg := uint8(render.ColorLightGreen)
			if e.Record.Species == world.SpeciesDinosaur {
				fg = render.ColorYellow
			}
			buf.WriteString(x, y, e.Record.Name, fg, render.ColorNone)
		} else {
			buf.WriteString(x, y, "???", render.ColorDarkGray, render.ColorNone)
		}
	}
	buf.WriteString(1, buf.Rows-1, "Esc or click: Back", render.ColorDarkGray, render.ColorNone)
}

func msgColor(k game.MsgKind) uint8 {
	switch k {
	case game.MsgMatch:
		return render.ColorLightGreen
	case game.MsgMiss:
		return render.ColorLightRed
	case game.MsgComplete:
		return render.ColorYellow
	default:
		return render.ColorWhite
	}
}

// drawPairsBar shows found/total pairs as a block bar with a count.
func drawPairsBar(buf *render.CellBuffer, x, y, found, total int) {
	if total == 0 {
		total = 1
	}
	filled := barWidth * found / total
	for i := 0; i < barWidth; i++ {
		clr := uint8(render.ColorDarkGray)
		if i < filled {
			clr = render.ColorLightGreen
		}
		buf.Set(x+i, y, render.GlyphBlock, clr, render.ColorBlack)
	}
	buf.WriteString(x+barWidth+1, y, fmt.Sprintf("%d/%d", found, total), render.ColorWhite, render.ColorBlack)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.view {
	case viewPlay:
		r := g.session.Round
		if r == nil {
			break
		}
		g.board.DrawBackground(screen, g.session.Progress.Environment)
		g.board.DrawBoard(screen, r.Board)
		if r.Phase() == game.PhaseRoundComplete {
			g.banner.Draw(screen, g.session.Progress.Score)
		}
	default:
		screen.Fill(render.Palette[render.ColorBlack])
	}
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}

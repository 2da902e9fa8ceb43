package breakout

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

const frame = time.Second / 60

func newTestSession(t *testing.T, mode GameMode, seed int64) (*Session, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Unix(1000, 0))
	s := NewSession(mode, Options{})
	s.Reset(core.RuntimeConfig{
		CanvasW:  640,
		CanvasH:  384,
		TickRate: 60,
		Seed:     seed,
		Clock:    clock,
	})
	return s, clock
}

func toggle() core.InputFrame {
	in := core.NewInputFrame()
	in.Push(core.CmdToggle, 0)
	return in
}

func hasSound(sounds []core.Sound, want core.Sound) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}

func countSound(sounds []core.Sound, want core.Sound) int {
	n := 0
	for _, s := range sounds {
		if s == want {
			n++
		}
	}
	return n
}

func TestSessionStartsPaused(t *testing.T) {
	s, _ := newTestSession(t, ModeCycling, 1)

	state := s.State()
	if !state.Paused || state.Running {
		t.Errorf("new session should be paused, got %+v", state)
	}
	if state.Phase != "PAUSED" {
		t.Errorf("Phase = %q, expected PAUSED", state.Phase)
	}
	if state.TimeLeft != 180 {
		t.Errorf("TimeLeft = %d, expected 180", state.TimeLeft)
	}
	if s.balls.Len() != 1 {
		t.Errorf("expected one ball on the platform, got %d", s.balls.Len())
	}
}

func TestSessionToggle(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)

	res := s.Step(toggle())
	if !res.State.Running {
		t.Fatalf("toggle should start the run, got %s", res.State.Phase)
	}

	clock.Advance(frame)
	res = s.Step(toggle())
	if res.State.Phase != "PAUSED" {
		t.Errorf("second toggle should pause, got %s", res.State.Phase)
	}
	if s.timer.Running() {
		t.Error("timer should stop while paused")
	}
}

func TestSessionNotReadyWithoutCanvas(t *testing.T) {
	s := NewSession(ModeCycling, Options{})
	s.Reset(core.RuntimeConfig{})

	res := s.Step(toggle())
	if res.State.Running {
		t.Error("session without a canvas should ignore input")
	}

	screen := core.NewScreen(10, 5)
	s.Render(screen) // must not panic
}

func TestSessionTimerCountsWhileRunning(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())

	clock.Advance(time.Second)
	res := s.Step(core.NewInputFrame())
	if res.State.TimeLeft != 179 {
		t.Errorf("TimeLeft = %d, expected 179", res.State.TimeLeft)
	}
}

func TestSessionLifeLost(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())

	s.balls.Clear()
	clock.Advance(frame)
	res := s.Step(core.NewInputFrame())

	if res.State.Phase != "LIFE_LOST" {
		t.Fatalf("Phase = %s, expected LIFE_LOST", res.State.Phase)
	}
	if res.State.TimeLeft != 120 {
		t.Errorf("TimeLeft = %d, expected 120 after the penalty", res.State.TimeLeft)
	}
	if countSound(res.Sounds, core.SoundLifeLost) != 1 {
		t.Errorf("expected one life-lost sound, got %v", res.Sounds)
	}
	if s.timer.Highlight() != HighlightRed {
		t.Error("penalty should flash the timer red")
	}

	clock.Advance(frame)
	res = s.Step(toggle())
	if !res.State.Running {
		t.Errorf("resume after life lost should run, got %s", res.State.Phase)
	}
	if s.balls.Len() != 1 {
		t.Errorf("resume should serve one ball, got %d", s.balls.Len())
	}
}

func TestSessionTimeUpBlocksThenEnds(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())

	s.timer.Subtract(170)
	s.balls.Clear()
	clock.Advance(frame)
	res := s.Step(core.NewInputFrame())

	if res.State.Phase != "GAME_OVER_BLOCKED_SCREEN" {
		t.Fatalf("Phase = %s, expected GAME_OVER_BLOCKED_SCREEN", res.State.Phase)
	}
	if res.State.TimeLeft != 0 {
		t.Errorf("TimeLeft = %d, expected 0", res.State.TimeLeft)
	}
	if countSound(res.Sounds, core.SoundLifeLost) != 1 {
		t.Errorf("time-up should emit exactly one life-lost sound, got %v", res.Sounds)
	}

	// Resume is ignored while blocked
	clock.Advance(time.Second)
	res = s.Step(toggle())
	if res.State.Phase != "GAME_OVER_BLOCKED_SCREEN" {
		t.Errorf("toggle while blocked should be ignored, got %s", res.State.Phase)
	}

	clock.Advance(time.Second)
	res = s.Step(core.NewInputFrame())
	if res.State.Phase != "GAME_OVER" || !res.State.GameOver {
		t.Fatalf("expected GAME_OVER after the delay, got %s", res.State.Phase)
	}

	clock.Advance(frame)
	res = s.Step(toggle())
	if !res.State.Running {
		t.Errorf("toggle after game over should restart, got %s", res.State.Phase)
	}
	if res.State.TimeLeft != 180 || res.State.Score != 0 {
		t.Errorf("restart should reset time and score, got %+v", res.State)
	}
}

func TestSessionLevelComplete(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())

	s.bricks = NewBrickManager(nil, 640, 384, s.difficulty, s.cfg, s.rng)
	clock.Advance(frame)
	res := s.Step(core.NewInputFrame())

	if !hasSound(res.Sounds, core.SoundLevelComplete) {
		t.Errorf("expected level-complete sound, got %v", res.Sounds)
	}
	if res.State.Score != 100 {
		t.Errorf("Score = %d, expected the level bonus", res.State.Score)
	}
	if res.State.Level != 2 {
		t.Errorf("Level = %d, expected 2", res.State.Level)
	}
	if !res.State.Running {
		t.Error("the next level should start running")
	}
	if s.bricks.IsLevelCompleted() {
		t.Error("the next level should have bricks")
	}
}

func TestSessionCyclingWrapRaisesDifficulty(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())

	s.levelIndex = len(s.levels) - 1
	s.bricks = NewBrickManager(nil, 640, 384, s.difficulty, s.cfg, s.rng)
	clock.Advance(frame)
	res := s.Step(core.NewInputFrame())

	if res.State.Level != 1 {
		t.Errorf("Level = %d, expected wrap to 1", res.State.Level)
	}
	if res.State.Difficulty != 1 {
		t.Errorf("Difficulty = %d, expected 1", res.State.Difficulty)
	}

	sideBricks := 0
	for _, b := range s.bricks.Bricks() {
		if b.Side() {
			sideBricks++
		}
	}
	if sideBricks != 2 {
		t.Errorf("difficulty 1 should place 2 side bricks, got %d", sideBricks)
	}
}

func TestSessionCampaignWin(t *testing.T) {
	s, clock := newTestSession(t, ModeCampaign, 1)
	s.Step(toggle())

	s.levelIndex = len(s.levels) - 1
	s.bricks = NewBrickManager(nil, 640, 384, s.difficulty, s.cfg, s.rng)
	clock.Advance(frame)
	res := s.Step(core.NewInputFrame())

	if res.State.Phase != "GAME_WON" || !res.State.GameOver {
		t.Fatalf("expected GAME_WON, got %s", res.State.Phase)
	}
	if s.timer.Running() {
		t.Error("timer should stop on win")
	}

	clock.Advance(frame)
	res = s.Step(toggle())
	if !res.State.Running || res.State.Level != 1 || res.State.Score != 0 {
		t.Errorf("toggle after win should restart at level 1, got %+v", res.State)
	}
}

func TestSessionDirectionMovesPlatform(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())
	start := s.platform.X()

	in := core.NewInputFrame()
	in.SetDirection(core.DirRight)
	clock.Advance(frame)
	s.Step(in)

	if s.platform.X() != start+s.cfg.Platform.Speed {
		t.Errorf("platform X = %v, expected %v", s.platform.X(), start+s.cfg.Platform.Speed)
	}

	// Direction is held until changed
	clock.Advance(frame)
	s.Step(core.NewInputFrame())
	if s.platform.X() != start+2*s.cfg.Platform.Speed {
		t.Errorf("held direction should keep moving, X = %v", s.platform.X())
	}
}

func TestSessionDragJumpsPlatform(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)

	// Drag is ignored while paused
	in := core.NewInputFrame()
	in.Push(core.CmdDrag, 100)
	s.Step(in)
	if s.State().Running {
		t.Fatal("drag should not resume")
	}
	if s.platform.CenterX() != 320 {
		t.Errorf("drag while paused moved the platform to %v", s.platform.CenterX())
	}

	// Tap resumes
	tap := core.NewInputFrame()
	tap.Push(core.CmdTap, 0)
	clock.Advance(frame)
	s.Step(tap)
	if !s.State().Running {
		t.Fatal("tap should resume")
	}

	in = core.NewInputFrame()
	in.Push(core.CmdDrag, 100)
	clock.Advance(frame)
	s.Step(in)
	if s.platform.CenterX() != 100 {
		t.Errorf("platform centre = %v, expected 100", s.platform.CenterX())
	}

	// Clamped at the edge
	in = core.NewInputFrame()
	in.Push(core.CmdTap, 0)
	clock.Advance(frame)
	s.Step(in)
	if s.platform.X() != 0 {
		t.Errorf("platform X = %v, expected clamp to 0", s.platform.X())
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s, clock := newTestSession(t, ModeCycling, 12345)
		for i := range 600 {
			in := core.NewInputFrame()
			switch {
			case i == 5:
				in.Push(core.CmdToggle, 0)
			case i%40 < 20:
				in.SetDirection(core.DirLeft)
			default:
				in.SetDirection(core.DirRight)
			}
			s.Step(in)
			clock.Advance(frame)
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score differs: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != 600 {
		t.Errorf("Tick = %d, expected 600", snap1.Tick)
	}
}

func TestSessionSameSeedSameRNG(t *testing.T) {
	s1, _ := newTestSession(t, ModeCycling, 1)
	s2, _ := newTestSession(t, ModeCycling, 1)

	snap1 := s1.Snapshot()
	snap2 := s2.Snapshot()
	if snap1.RNGState != snap2.RNGState {
		t.Error("same seed should produce the same RNG state")
	}
}

func TestSessionRender(t *testing.T) {
	s, _ := newTestSession(t, ModeCycling, 1)
	screen := core.NewScreen(80, 24)
	screen.SetScale(8, 16)

	s.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "BREAKER") {
		t.Error("start screen should show the title")
	}
	if !strings.Contains(out, "3:00") {
		t.Error("HUD should show the countdown")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "█") {
		t.Error("bricks and platform should be drawn")
	}
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"breakout", "breakout_campaign"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePaused, "PAUSED"},
		{StateRunning, "RUNNING"},
		{StateLifeLost, "LIFE_LOST"},
		{StateGameWon, "GAME_WON"},
		{StateGameOverBlocked, "GAME_OVER_BLOCKED_SCREEN"},
		{StateGameOver, "GAME_OVER"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, expected %q", tt.state, got, tt.want)
		}
	}
}

// dropExtraTime swaps in two extra-time bricks and breaks the first one,
// leaving one pickup falling.
func dropExtraTime(t *testing.T, s *Session, clock *core.ManualClock) *FallingBonus {
	t.Helper()
	cfg := noBonusConfig()
	cfg.Bonus.ExtraTimeChance = 1
	s.bricks = NewBrickManager([][]int{{1, 1}}, 640, 384, 0, cfg, NewSimpleRNG(1))

	s.balls.Clear()
	s.balls.Add(ballBelow(s.bricks.Bricks()[0].Bounds()))
	clock.Advance(frame)
	s.Step(core.NewInputFrame())

	bonuses := s.bricks.Bonuses()
	if len(bonuses) != 1 {
		t.Fatalf("expected one falling bonus, got %d", len(bonuses))
	}
	return bonuses[0]
}

func TestSessionPauseCancelsBonuses(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())
	dropExtraTime(t, s, clock)

	clock.Advance(frame)
	res := s.Step(toggle())
	if res.State.Phase != "PAUSED" {
		t.Fatalf("Phase = %s, expected PAUSED", res.State.Phase)
	}
	if n := len(s.bricks.Bonuses()); n != 0 {
		t.Errorf("pause should cancel falling bonuses, %d left", n)
	}
}

func TestSessionLifeLostKeepsBonuses(t *testing.T) {
	s, clock := newTestSession(t, ModeCycling, 1)
	s.Step(toggle())
	bonus := dropExtraTime(t, s, clock)

	s.balls.Clear()
	clock.Advance(frame)
	res := s.Step(core.NewInputFrame())
	if res.State.Phase != "LIFE_LOST" {
		t.Fatalf("Phase = %s, expected LIFE_LOST", res.State.Phase)
	}
	if !bonus.Active() {
		t.Fatal("life loss should only pause falling bonuses")
	}

	frozen := bonus.Position()
	clock.Advance(time.Second)
	s.Step(core.NewInputFrame())
	if bonus.Position() != frozen {
		t.Errorf("bonus moved while the life was lost: %v -> %v", frozen, bonus.Position())
	}

	clock.Advance(frame)
	s.Step(toggle())
	for range 2 {
		clock.Advance(frame)
		s.Step(core.NewInputFrame())
	}
	if !bonus.Active() || bonus.Position().Y <= frozen.Y {
		t.Errorf("bonus should fall again after the ball is served, at %v", bonus.Position())
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })

	SetDifficultyPreset("fixed")
	if got := DefaultOptions().Preset; got != config.DifficultyFixed {
		t.Errorf("Preset = %q, expected fixed", got)
	}
	SetDifficultyPreset("insane")
	if got := DefaultOptions().Preset; got != "" {
		t.Errorf("unknown preset should clear the option, got %q", got)
	}
}

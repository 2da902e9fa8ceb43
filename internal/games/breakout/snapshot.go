package breakout

import "math"

// Snapshot contains the observable session state for determinism checks and
// run history. Floats are kept as their bit patterns for stable hashing.
type Snapshot struct {
	Tick          uint64
	State         string
	Mode          int // 0=Cycling, 1=Campaign
	Score         int
	LevelIndex    int
	LevelsCleared int
	Difficulty    int
	TimeLeft      int

	PlatformX     uint64
	PlatformWidth uint64

	// Each ball is 4 values: X, Y, VX, VY
	BallCount int
	BallData  []uint64

	// Each bonus is 3 values: Kind, X, Y
	BonusCount int
	BonusData  []uint64

	// Durability per brick in placement order, side bricks last
	BrickData       []int
	BricksRemaining int

	RNGState uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.tick,
		State:         s.state.String(),
		Mode:          int(s.mode),
		Score:         s.score,
		LevelIndex:    s.levelIndex,
		LevelsCleared: s.levelsCleared,
		Difficulty:    s.difficulty,
	}
	if s.timer != nil {
		snap.TimeLeft = s.timer.Remaining()
	}
	if s.rng != nil {
		snap.RNGState = s.rng.State()
	}
	if !s.ready {
		return snap
	}

	bounds := s.platform.Bounds()
	snap.PlatformX = math.Float64bits(bounds.X)
	snap.PlatformWidth = math.Float64bits(bounds.W)

	balls := s.balls.Balls()
	snap.BallCount = len(balls)
	snap.BallData = make([]uint64, 0, len(balls)*4)
	for _, b := range balls {
		snap.BallData = append(snap.BallData,
			math.Float64bits(b.pos.X),
			math.Float64bits(b.pos.Y),
			math.Float64bits(b.vel.X),
			math.Float64bits(b.vel.Y),
		)
	}

	bonuses := s.bricks.Bonuses()
	snap.BonusCount = len(bonuses)
	snap.BonusData = make([]uint64, 0, len(bonuses)*3)
	for _, f := range bonuses {
		pos := f.Position()
		snap.BonusData = append(snap.BonusData,
			uint64(f.Kind()), //#nosec G115 -- kind is a small enum
			math.Float64bits(pos.X),
			math.Float64bits(pos.Y),
		)
	}

	bricks := s.bricks.Bricks()
	snap.BrickData = make([]int, len(bricks))
	for i, b := range bricks {
		snap.BrickData[i] = b.Durability()
	}
	snap.BricksRemaining = s.bricks.Remaining()

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Mode)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelsCleared) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Difficulty)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft)      //#nosec G115 -- hash computation
	h = h*31 + snap.PlatformX
	h = h*31 + snap.PlatformWidth
	h = h*31 + uint64(snap.BallCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusCount) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + v
	}

	for _, v := range snap.BonusData {
		h = h*31 + v
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	return h
}

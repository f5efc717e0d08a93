package crossing

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// Spawner owns the spawn-time randomization of a session.
type Spawner struct {
	cfg        *config.CrossingConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner drawing from the given seed.
func NewSpawner(seed int64, cfg *config.CrossingConfig) *Spawner {
	return &Spawner{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Hazards spawns hazards in lane pairs. Both hazards of a pair share one
// lane and one speed; the second starts two tiles further off-screen.
func (sp *Spawner) Hazards() []*Hazard {
	hc := sp.cfg.Hazards
	pairs := hc.Count / 2
	hazards := make([]*Hazard, 0, pairs*2)

	for i := 0; i < pairs; i++ {
		speed := sp.difficulty.Speed(hc.MinSpeed + sp.rng.Float64()*hc.SpeedRange)
		y := float64(i)*hc.LaneHeight + hc.StartY

		hazards = append(hazards,
			NewHazard(mgl64.Vec2{hc.StartX * float64(i+1), y}, speed, sp.cfg.Bounds),
			NewHazard(mgl64.Vec2{hc.StartX * float64(i+3), y}, speed, sp.cfg.Bounds),
		)
	}
	return hazards
}

// Collectibles spawns between MinCount and MaxCount gems, each with an
// independent position inside the safe band and a uniformly chosen tier.
func (sp *Spawner) Collectibles() []*Collectible {
	pc := sp.cfg.Pickups

	// Degenerate ranges collapse to a single gem
	minCount := max(pc.MinCount, 1)
	maxCount := max(pc.MaxCount, minCount)
	tiers := pc.Tiers
	if len(tiers) == 0 {
		tiers = config.DefaultTiers()
	}

	count := minCount + sp.rng.Intn(maxCount-minCount+1)
	gems := make([]*Collectible, 0, count)

	for i := 0; i < count; i++ {
		pos := mgl64.Vec2{
			pc.MinX + sp.rng.Float64()*pc.RangeX,
			pc.MinY + sp.rng.Float64()*pc.RangeY,
		}
		tier := tiers[sp.rng.Intn(len(tiers))]
		gems = append(gems, NewCollectible(pos, tier, sp.cfg.Bounds))
	}
	return gems
}

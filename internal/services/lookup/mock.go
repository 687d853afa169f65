package lookup

import (
	"hash/fnv"
	"math/rand"

	"github.com/ffcommunity/banwatch/internal/model"
)

// mockBanProbability is the chance a synthesized record reports a ban
const mockBanProbability = 0.30

// mockNames is the fixed pool of demo player names
var mockNames = []string{
	"ShadowStriker",
	"BlazeFury",
	"NightHawk",
	"VenomViper",
	"IronPhantom",
	"CrimsonWolf",
	"SilentStorm",
	"GhostReaper",
}

// seedFor derives a stable PRNG seed from a player identifier using
// FNV-64a, so the same id always yields the same mock verdict.
func seedFor(id model.PlayerID) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return int64(h.Sum64())
}

// mockStatus synthesizes a deterministic status record for id
func (r *Resolver) mockStatus(id model.PlayerID) *model.PlayerStatus {
	rng := rand.New(rand.NewSource(seedFor(id)))
	banned := rng.Float64() < mockBanProbability
	name := mockNames[rng.Intn(len(mockNames))]

	return &model.PlayerStatus{
		ID:         id,
		Name:       name,
		Banned:     banned,
		Mock:       true,
		ObservedAt: r.clock.Now(),
	}
}

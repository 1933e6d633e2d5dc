package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	table := DefaultTierTable()

	cases := []struct {
		points int
		want   string
	}{
		{0, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{1500, TierGold},
		{2499, TierGold},
		{2500, TierPlatinum},
		{3500, TierDiamond},
		{4999, TierDiamond},
		{5000, TierElite},
		{20000, TierElite},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.points, table), "points=%d", tc.points)
	}
}

func TestTierForCustomTable(t *testing.T) {
	table := TierTable{{MinPoints: 100, Name: "PRO"}, {MinPoints: 0, Name: "ROOKIE"}}
	assert.Equal(t, "ROOKIE", TierFor(50, table))
	assert.Equal(t, "PRO", TierFor(100, table))
}

func TestLevelDerivation(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0, 500))
	assert.Equal(t, 1, LevelFor(499, 500))
	assert.Equal(t, 2, LevelFor(500, 500))
	assert.Equal(t, 6, LevelFor(2600, 500))

	assert.Equal(t, 0, LevelProgress(500, 500))
	assert.Equal(t, 100, LevelProgress(2600, 500))

	// zero step falls back to the default
	assert.Equal(t, 2, LevelFor(500, 0))
}

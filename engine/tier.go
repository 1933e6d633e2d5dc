package engine

// Tier names, highest first in the default table
const (
	TierElite    = "ELITE"
	TierDiamond  = "DIAMOND"
	TierPlatinum = "PLATINUM"
	TierGold     = "GOLD"
	TierSilver   = "SILVER"
	TierBronze   = "BRONZE"
)

// TierThreshold maps a minimum point total to a tier name
type TierThreshold struct {
	MinPoints int    `json:"min_points"`
	Name      string `json:"name"`
}

// TierTable is a threshold table ordered by MinPoints descending. It is
// configuration, not engine logic: callers may substitute their own table.
type TierTable []TierThreshold

// DefaultTierTable unifies the badge and rank-tier scales of the product
func DefaultTierTable() TierTable {
	return TierTable{
		{MinPoints: 5000, Name: TierElite},
		{MinPoints: 3500, Name: TierDiamond},
		{MinPoints: 2500, Name: TierPlatinum},
		{MinPoints: 1500, Name: TierGold},
		{MinPoints: 500, Name: TierSilver},
		{MinPoints: 0, Name: TierBronze},
	}
}

// TierFor selects the tier name for a point total
func TierFor(points int, table TierTable) string {
	for _, t := range table {
		if points >= t.MinPoints {
			return t.Name
		}
	}
	if len(table) > 0 {
		return table[len(table)-1].Name
	}
	return TierBronze
}

// LevelFor derives the display level from points alone
func LevelFor(points, stepXP int) int {
	if stepXP <= 0 {
		stepXP = 500
	}
	return points/stepXP + 1
}

// LevelProgress is the point count accumulated within the current level
func LevelProgress(points, stepXP int) int {
	if stepXP <= 0 {
		stepXP = 500
	}
	return points % stepXP
}

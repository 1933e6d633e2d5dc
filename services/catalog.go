package services

import (
	"codenexus/database"
	"codenexus/engine"
	"codenexus/models/curriculum"

	"gorm.io/gorm"
)

// LoadCatalog builds the engine's read-only curriculum view from the
// database: visible tracks and modules in stored order, with each module's
// blocks and problem rewards resolved.
func LoadCatalog() (*engine.Catalog, error) {
	db := database.Database.Db

	var tracks []curriculum.Track
	if err := db.Where("is_deleted = ? AND is_visible = ?", false, true).
		Order("order_index asc").Find(&tracks).Error; err != nil {
		return nil, err
	}

	cat := &engine.Catalog{
		Modules:       map[uint]engine.Module{},
		ProblemPoints: map[uint]int{},
	}

	var problems []curriculum.Problem
	if err := db.Where("is_deleted = ?", false).Find(&problems).Error; err != nil {
		return nil, err
	}
	for _, p := range problems {
		cat.ProblemPoints[p.ID] = p.Points
	}

	for _, t := range tracks {
		var modules []curriculum.Module
		if err := db.Where("track_id = ? AND is_deleted = ? AND is_visible = ?", t.ID, false, true).
			Order("order_index asc").Find(&modules).Error; err != nil {
			return nil, err
		}

		et := engine.Track{ID: t.ID}
		for _, m := range modules {
			var blocks []curriculum.ContentBlock
			if err := db.Where("module_id = ? AND is_deleted = ?", m.ID, false).
				Order("order_index asc").Find(&blocks).Error; err != nil {
				return nil, err
			}

			em := engine.Module{ID: m.ID, TrackID: t.ID}
			for _, b := range blocks {
				em.Blocks = append(em.Blocks, engine.Block{
					ID:            b.ID,
					Type:          b.BlockType,
					Visible:       b.IsVisible,
					ProblemID:     b.ProblemID,
					ProblemPoints: cat.ProblemPoints[b.ProblemID],
				})
			}
			cat.Modules[m.ID] = em
			et.ModuleIDs = append(et.ModuleIDs, m.ID)
		}
		cat.Tracks = append(cat.Tracks, et)
	}

	return cat, nil
}

// LoadDailySet resolves the challenge set for one ISO date. A missing or
// malformed set means "no challenge today" and returns nil without error.
func LoadDailySet(date string) (*engine.DailySet, error) {
	db := database.Database.Db

	var set curriculum.DailyChallengeSet
	err := db.Where("date = ? AND is_deleted = ?", date, false).First(&set).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var members []curriculum.DailyChallengeProblem
	if err := db.Where("set_id = ? AND is_deleted = ?", set.ID, false).
		Order("order_index asc").Find(&members).Error; err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	out := &engine.DailySet{Date: set.Date}
	for _, m := range members {
		out.ProblemIDs = append(out.ProblemIDs, m.ProblemID)
	}
	return out, nil
}

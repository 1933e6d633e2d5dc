package services

import (
	"encoding/json"
	"log"
	"sort"

	"codenexus/database"
	"codenexus/engine"
	"codenexus/models"
	progressModels "codenexus/models/progress"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressStore is the persistence boundary of the progress engine. Saves
// must be idempotent upserts by user id; loads of unknown users return the
// all-zero snapshot.
type ProgressStore interface {
	LoadProgress(userID uint) (engine.Snapshot, error)
	SaveProgress(snap engine.Snapshot) error
	UpdateUserAccumulators(userID uint, points, streak int) error
}

// GormProgressStore persists snapshots in Postgres through the global GORM
// instance
type GormProgressStore struct{}

func NewGormProgressStore() *GormProgressStore {
	return &GormProgressStore{}
}

func (s *GormProgressStore) LoadProgress(userID uint) (engine.Snapshot, error) {
	db := database.Database.Db
	snap := engine.NewSnapshot(userID)

	var row progressModels.UserProgress
	err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&row).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return snap, err
	}
	if err == nil {
		snap.Points = row.Points
		snap.CurrentStreak = row.CurrentStreak
		snap.LastChallengeDate = row.LastChallengeDate
		snap.Version = row.Version
	}

	var solved []progressModels.SolvedProblem
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&solved).Error; err != nil {
		return snap, err
	}
	for _, sp := range solved {
		snap.CompletedProblemIDs[sp.ProblemID] = true
	}

	var dates []progressModels.CompletedDate
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&dates).Error; err != nil {
		return snap, err
	}
	for _, d := range dates {
		snap.CompletedDates[d.Date] = true
	}

	var units []progressModels.UnitProgress
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&units).Error; err != nil {
		return snap, err
	}
	for _, u := range units {
		unit := engine.UnitProgress{
			ModuleID:          u.ModuleID,
			CompletedBlockIDs: map[uint]bool{},
			Unlocked:          u.Unlocked,
			ModuleCompleted:   u.ModuleCompleted,
		}
		var blockIDs []uint
		if len(u.CompletedBlockIDs) > 0 {
			if err := json.Unmarshal(u.CompletedBlockIDs, &blockIDs); err != nil {
				log.Printf("Corrupt block id list for user %d module %d: %v", userID, u.ModuleID, err)
			}
		}
		for _, id := range blockIDs {
			unit.CompletedBlockIDs[id] = true
		}
		if u.ModuleCompleted {
			snap.CompletedModuleIDs[u.ModuleID] = true
		}
		snap.Units[u.ModuleID] = unit
	}

	return snap, nil
}

// SaveProgress upserts the snapshot. Completion rows are append-only inserts;
// the accumulator row is only overwritten by an equal-or-newer version so a
// delayed stale write cannot clobber a newer one.
func (s *GormProgressStore) SaveProgress(snap engine.Snapshot) error {
	db := database.Database.Db

	return db.Transaction(func(tx *gorm.DB) error {
		var row progressModels.UserProgress
		err := tx.Where("user_id = ?", snap.UserID).First(&row).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			row = progressModels.UserProgress{
				UserID:            snap.UserID,
				Points:            snap.Points,
				CurrentStreak:     snap.CurrentStreak,
				LastChallengeDate: snap.LastChallengeDate,
				Version:           snap.Version,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case row.Version <= snap.Version:
			row.Points = snap.Points
			row.CurrentStreak = snap.CurrentStreak
			row.LastChallengeDate = snap.LastChallengeDate
			row.Version = snap.Version
			row.IsDeleted = false
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}

		for pid := range snap.CompletedProblemIDs {
			sp := progressModels.SolvedProblem{UserID: snap.UserID, ProblemID: pid}
			if err := tx.Where("user_id = ? AND problem_id = ?", snap.UserID, pid).
				FirstOrCreate(&sp).Error; err != nil {
				return err
			}
		}

		for date := range snap.CompletedDates {
			cd := progressModels.CompletedDate{UserID: snap.UserID, Date: date}
			if err := tx.Where("user_id = ? AND date = ?", snap.UserID, date).
				FirstOrCreate(&cd).Error; err != nil {
				return err
			}
		}

		for moduleID, unit := range snap.Units {
			blockJSON, err := marshalBlockIDs(unit.CompletedBlockIDs)
			if err != nil {
				return err
			}

			var up progressModels.UnitProgress
			err = tx.Where("user_id = ? AND module_id = ?", snap.UserID, moduleID).First(&up).Error
			if err == gorm.ErrRecordNotFound {
				up = progressModels.UnitProgress{
					UserID:            snap.UserID,
					ModuleID:          moduleID,
					CompletedBlockIDs: blockJSON,
					Unlocked:          unit.Unlocked,
					ModuleCompleted:   unit.ModuleCompleted,
				}
				if err := tx.Create(&up).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			up.CompletedBlockIDs = blockJSON
			up.Unlocked = unit.Unlocked
			up.ModuleCompleted = unit.ModuleCompleted
			if err := tx.Save(&up).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateUserAccumulators writes the denormalized leaderboard fields back to
// the account row
func (s *GormProgressStore) UpdateUserAccumulators(userID uint, points, streak int) error {
	return database.Database.Db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", userID, false).
		Updates(map[string]interface{}{"points": points, "current_streak": streak}).Error
}

func marshalBlockIDs(set map[uint]bool) (datatypes.JSON, error) {
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

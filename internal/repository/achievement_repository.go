package repository

import (
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/pkg/database"
)

// AchievementRepository serves the static badge catalog; there are no
// write operations.
type AchievementRepository struct {
	DB *database.DB
}

func NewAchievementRepository(db *database.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindAll() ([]model.Achievement, error) {
	r.DB.Achievements.RLock()
	defer r.DB.Achievements.RUnlock()

	return append([]model.Achievement(nil), r.DB.Achievements.Rows...), nil
}

// FindByIDs resolves a badge-id set against the catalog, preserving
// catalog order and skipping unknown ids.
func (r *AchievementRepository) FindByIDs(ids []string) ([]model.Achievement, error) {
	r.DB.Achievements.RLock()
	defer r.DB.Achievements.RUnlock()

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var out []model.Achievement
	for _, a := range r.DB.Achievements.Rows {
		if want[a.ID] {
			out = append(out, a)
		}
	}
	return out, nil
}

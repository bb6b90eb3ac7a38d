package service

import (
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
)

// GamificationService is the points ledger plus the static badge
// catalog. Badges are assigned at seed time and only read here;
// event-driven awarding would hook in at AddPoints call sites.
type GamificationService struct {
	UserRepo        *repository.UserRepository
	AchievementRepo *repository.AchievementRepository
}

func NewGamificationService(userRepo *repository.UserRepository, achievementRepo *repository.AchievementRepository) *GamificationService {
	return &GamificationService{
		UserRepo:        userRepo,
		AchievementRepo: achievementRepo,
	}
}

// AddPoints adjusts the running total. No cap, and negative deltas are
// accepted.
func (s *GamificationService) AddPoints(userID string, delta int) (int, error) {
	return s.UserRepo.AddPoints(userID, delta)
}

// Badges resolves the user's earned badge ids against the catalog.
func (s *GamificationService) Badges(userID string) ([]model.Achievement, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return s.AchievementRepo.FindByIDs(user.Badges)
}

func (s *GamificationService) Catalog() ([]model.Achievement, error) {
	return s.AchievementRepo.FindAll()
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *GamificationService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID,
			Name:   u.Name,
			Points: u.Points,
			Avatar: u.Avatar,
		}
	}
	return entries, nil
}

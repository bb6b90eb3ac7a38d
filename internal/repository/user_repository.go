package repository

import (
	"sort"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

type UserRepository struct {
	DB *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func cloneUser(u *model.User) *model.User {
	cp := *u
	cp.Badges = append([]string(nil), u.Badges...)
	return &cp
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	r.DB.Users.RLock()
	defer r.DB.Users.RUnlock()

	if u, ok := r.DB.Users.Rows[id]; ok {
		return cloneUser(u), nil
	}
	return nil, util.ErrUserNotFound
}

func (r *UserRepository) FindByRole(role model.UserRole) (*model.User, error) {
	r.DB.Users.RLock()
	defer r.DB.Users.RUnlock()

	for _, u := range r.DB.Users.Rows {
		if u.Role == role {
			return cloneUser(u), nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *UserRepository) Save(user *model.User) error {
	r.DB.Users.Lock()
	defer r.DB.Users.Unlock()

	if _, ok := r.DB.Users.Rows[user.ID]; !ok {
		return util.ErrUserNotFound
	}
	r.DB.Users.Rows[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) AddPoints(id string, delta int) (int, error) {
	r.DB.Users.Lock()
	defer r.DB.Users.Unlock()

	u, ok := r.DB.Users.Rows[id]
	if !ok {
		return 0, util.ErrUserNotFound
	}
	u.Points += delta
	return u.Points, nil
}

func (r *UserRepository) FindTopByPoints(limit int) ([]model.User, error) {
	r.DB.Users.RLock()
	defer r.DB.Users.RUnlock()

	users := make([]model.User, 0, len(r.DB.Users.Rows))
	for _, u := range r.DB.Users.Rows {
		users = append(users, *cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		return users[i].ID < users[j].ID
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

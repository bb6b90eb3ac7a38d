package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"lumina_lms_backend/internal/config"
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
)

// AuthService is the session manager. Login is a demo role detector,
// not a credential system: the identifier prefix picks one of the
// three seeded profiles and a JWT is issued for it.
type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// DetectRole maps the demo identifier convention onto a role:
// "ins..." logs in as the instructor, "adm..." as the admin, anything
// else as the student.
func DetectRole(identifier string) model.UserRole {
	switch {
	case strings.HasPrefix(identifier, "ins"):
		return model.Instructor
	case strings.HasPrefix(identifier, "adm"):
		return model.Admin
	default:
		return model.Student
	}
}

func (s *AuthService) Login(identifier string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByRole(DetectRole(identifier))
	if err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID string) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

// ProfilePatch carries the optional profile fields; nil means "leave
// unchanged", so the merge is shallow like the UI expects.
type ProfilePatch struct {
	Name       *string `json:"name"`
	Avatar     *string `json:"avatar"`
	Bio        *string `json:"bio"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	Password   *string `json:"password"`
}

func (s *AuthService) UpdateProfile(userID string, patch ProfilePatch) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, util.ErrEmptyField
		}
		user.Name = *patch.Name
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Department != nil {
		user.Department = *patch.Department
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

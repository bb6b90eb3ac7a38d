package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina_lms_backend/internal/config"
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := database.Open()
	require.NoError(t, database.Seed(db))
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestDetectRole(t *testing.T) {
	assert.Equal(t, model.Instructor, DetectRole("ins_sarah"))
	assert.Equal(t, model.Instructor, DetectRole("instructor@lumina.edu"))
	assert.Equal(t, model.Admin, DetectRole("admin"))
	assert.Equal(t, model.Admin, DetectRole("adm-root"))
	assert.Equal(t, model.Student, DetectRole("alex@lumina.edu"))
	assert.Equal(t, model.Student, DetectRole(""))
}

func TestLoginIssuesTokenForDetectedRole(t *testing.T) {
	s := newAuthService(t)

	token, user, err := s.Login("ins_sarah")
	require.NoError(t, err)
	assert.Equal(t, model.Instructor, user.Role)
	assert.Equal(t, "u2", user.ID)

	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "u2", claims.UserID)
	assert.Equal(t, string(model.Instructor), claims.Role)
}

func TestLoginStudentByDefault(t *testing.T) {
	s := newAuthService(t)

	_, user, err := s.Login("whatever")
	require.NoError(t, err)
	assert.Equal(t, model.Student, user.Role)
	assert.Equal(t, "Alex Johnson", user.Name)
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	s := newAuthService(t)

	bio := "Now exploring distributed systems."
	user, err := s.UpdateProfile("u1", ProfilePatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, user.Bio)
	// Untouched fields survive the merge.
	assert.Equal(t, "Alex Johnson", user.Name)
	assert.Equal(t, 1250, user.Points)
}

func TestUpdateProfileRejectsBlankName(t *testing.T) {
	s := newAuthService(t)

	blank := "  "
	_, err := s.UpdateProfile("u1", ProfilePatch{Name: &blank})
	assert.ErrorIs(t, err, util.ErrEmptyField)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	s := newAuthService(t)

	name := "Ghost"
	_, err := s.UpdateProfile("nope", ProfilePatch{Name: &name})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestGetProfileReturnsCopy(t *testing.T) {
	s := newAuthService(t)

	first, err := s.GetProfile("u1")
	require.NoError(t, err)
	first.Name = "Mutated Locally"

	second, err := s.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", second.Name)
}

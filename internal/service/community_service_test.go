package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina_lms_backend/internal/config"
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

func newCommunityService(t *testing.T) *CommunityService {
	t.Helper()
	db := database.Open()
	require.NoError(t, database.Seed(db))
	cfg := &config.Config{
		Community: config.CommunityConfig{ShareBaseURL: "https://lumina.example"},
	}
	return NewCommunityService(repository.NewPostRepository(db), cfg)
}

func assertLikeInvariant(t *testing.T, post *model.Post) {
	t.Helper()
	assert.Equal(t, len(post.LikedBy), post.Likes, "likes counter drifted from liked-by set")
	seen := map[string]bool{}
	for _, id := range post.LikedBy {
		assert.False(t, seen[id], "user %s appears twice in liked-by", id)
		seen[id] = true
	}
}

func TestToggleLikeKeepsCounterInSync(t *testing.T) {
	s := newCommunityService(t)

	// p2 is seeded with one like from u1.
	for _, userID := range []string{"u2", "u3", "u1", "u2"} {
		post, err := s.ToggleLike("p2", userID)
		require.NoError(t, err)
		assertLikeInvariant(t, post)
	}

	// After the sequence only u3's like remains: u2 toggled on and
	// off, u1 removed the seeded like.
	post, err := s.GetPost("p2")
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, []string{"u3"}, post.LikedBy)
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	s := newCommunityService(t)

	author, _ := seededUser("u1")
	post, err := s.CreatePost(author, "Study group for ML?", "Anyone want to pair on the Machine Learning Basics course?")
	require.NoError(t, err)

	liked, err := s.ToggleLike(post.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
	assert.Contains(t, liked.LikedBy, "u2")

	unliked, err := s.ToggleLike(post.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.Likes)
	assert.Empty(t, unliked.LikedBy)
}

func TestCreatePostValidation(t *testing.T) {
	s := newCommunityService(t)
	author, _ := seededUser("u1")

	_, err := s.CreatePost(author, "   ", "body")
	assert.ErrorIs(t, err, util.ErrEmptyField)

	_, err = s.CreatePost(author, "title", "")
	assert.ErrorIs(t, err, util.ErrEmptyField)
}

func TestCreatePostPrepends(t *testing.T) {
	s := newCommunityService(t)
	author, _ := seededUser("u1")

	post, err := s.CreatePost(author, "Newest thread", "This should show up first.")
	require.NoError(t, err)

	posts, err := s.Posts()
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.Equal(t, "Alex Johnson", posts[0].Author)
}

func TestAddReplyTargetsOneComment(t *testing.T) {
	s := newCommunityService(t)
	author, _ := seededUser("u1")

	post, err := s.CreatePost(author, "Two comment threads", "Replies must stay with their comment.")
	require.NoError(t, err)

	first, err := s.AddComment(post.ID, author, "first comment")
	require.NoError(t, err)
	_, err = s.AddComment(post.ID, author, "second comment")
	require.NoError(t, err)

	_, err = s.AddReply(post.ID, first.ID, author, "reply to the first")
	require.NoError(t, err)

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Len(t, got.Comments[0].Replies, 1)
	assert.Empty(t, got.Comments[1].Replies)
	assert.Equal(t, "reply to the first", got.Comments[0].Replies[0].Content)
}

func TestAddReplyUnknownTargets(t *testing.T) {
	s := newCommunityService(t)
	author, _ := seededUser("u1")

	_, err := s.AddReply("p1", "missing-comment", author, "hello")
	assert.ErrorIs(t, err, util.ErrCommentNotFound)

	_, err = s.AddReply("missing-post", "c1", author, "hello")
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	s := newCommunityService(t)

	_, err := s.ToggleLike("missing", "u1")
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

func TestShareURL(t *testing.T) {
	s := newCommunityService(t)

	url, err := s.ShareURL("p1")
	require.NoError(t, err)
	assert.Equal(t, "https://lumina.example/community/posts/p1", url)

	_, err = s.ShareURL("missing")
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

// seededUser returns a detached copy of one of the demo profiles for
// use as a post/comment author.
func seededUser(id string) (*model.User, error) {
	db := database.Open()
	if err := database.Seed(db); err != nil {
		return nil, err
	}
	return repository.NewUserRepository(db).FindByID(id)
}

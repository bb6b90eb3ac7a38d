package service

import (
	"fmt"
	"strings"
	"time"

	"lumina_lms_backend/internal/config"
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
)

// CommunityService owns the forum: posts, their like sets and the
// two-level comment/reply tree.
type CommunityService struct {
	PostRepo *repository.PostRepository
	Cfg      *config.Config
}

func NewCommunityService(postRepo *repository.PostRepository, cfg *config.Config) *CommunityService {
	return &CommunityService{
		PostRepo: postRepo,
		Cfg:      cfg,
	}
}

func (s *CommunityService) Posts() ([]model.Post, error) {
	return s.PostRepo.FindAll()
}

func (s *CommunityService) GetPost(id string) (*model.Post, error) {
	return s.PostRepo.FindByID(id)
}

func (s *CommunityService) CreatePost(author *model.User, title, content string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, util.ErrEmptyField
	}

	post := &model.Post{
		ID:       model.NewID(),
		Author:   author.Name,
		Avatar:   author.Avatar,
		Title:    title,
		Content:  content,
		LikedBy:  []string{},
		Comments: []model.Comment{},
		Time:     time.Now().Format(time.RFC3339),
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ToggleLike flips the caller's like and returns the updated post.
func (s *CommunityService) ToggleLike(postID, userID string) (*model.Post, error) {
	if _, err := s.PostRepo.ToggleLike(postID, userID); err != nil {
		return nil, err
	}
	return s.PostRepo.FindByID(postID)
}

func (s *CommunityService) AddComment(postID string, author *model.User, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, util.ErrEmptyField
	}

	comment := model.Comment{
		ID:      model.NewID(),
		Author:  author.Name,
		Avatar:  author.Avatar,
		Content: content,
		Time:    time.Now().Format(time.RFC3339),
		Replies: []model.Reply{},
	}
	if err := s.PostRepo.AddComment(postID, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommunityService) AddReply(postID, commentID string, author *model.User, content string) (*model.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, util.ErrEmptyField
	}

	reply := model.Reply{
		ID:      model.NewID(),
		Author:  author.Name,
		Avatar:  author.Avatar,
		Content: content,
		Time:    time.Now().Format(time.RFC3339),
	}
	if err := s.PostRepo.AddReply(postID, commentID, reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ShareURL builds the canonical share link for a post. It mutates
// nothing; the actual sharing mechanism is the caller's concern.
func (s *CommunityService) ShareURL(postID string) (string, error) {
	if _, err := s.PostRepo.FindByID(postID); err != nil {
		return "", err
	}
	base := strings.TrimRight(s.Cfg.Community.ShareBaseURL, "/")
	return fmt.Sprintf("%s/community/posts/%s", base, postID), nil
}

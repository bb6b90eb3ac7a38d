package repository

import (
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

type PostRepository struct {
	DB *database.DB
}

func NewPostRepository(db *database.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func clonePost(p *model.Post) model.Post {
	cp := *p
	cp.LikedBy = append([]string(nil), p.LikedBy...)
	cp.Comments = make([]model.Comment, len(p.Comments))
	for i, c := range p.Comments {
		cmt := c
		cmt.Replies = append([]model.Reply(nil), c.Replies...)
		cp.Comments[i] = cmt
	}
	return cp
}

func (r *PostRepository) FindAll() ([]model.Post, error) {
	r.DB.Posts.RLock()
	defer r.DB.Posts.RUnlock()

	out := make([]model.Post, 0, len(r.DB.Posts.Rows))
	for _, p := range r.DB.Posts.Rows {
		out = append(out, clonePost(p))
	}
	return out, nil
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	r.DB.Posts.RLock()
	defer r.DB.Posts.RUnlock()

	for _, p := range r.DB.Posts.Rows {
		if p.ID == id {
			cp := clonePost(p)
			return &cp, nil
		}
	}
	return nil, util.ErrPostNotFound
}

// Create prepends: the feed shows newest posts first.
func (r *PostRepository) Create(post *model.Post) error {
	r.DB.Posts.Lock()
	defer r.DB.Posts.Unlock()

	cp := clonePost(post)
	r.DB.Posts.Rows = append([]*model.Post{&cp}, r.DB.Posts.Rows...)
	return nil
}

// ToggleLike flips userID's membership in LikedBy and adjusts Likes in
// the same critical section, so likes == len(likedBy) after every call.
// Returns whether the post is liked by the user afterwards.
func (r *PostRepository) ToggleLike(postID, userID string) (bool, error) {
	r.DB.Posts.Lock()
	defer r.DB.Posts.Unlock()

	for _, p := range r.DB.Posts.Rows {
		if p.ID != postID {
			continue
		}
		for i, id := range p.LikedBy {
			if id == userID {
				p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
				p.Likes--
				return false, nil
			}
		}
		p.LikedBy = append(p.LikedBy, userID)
		p.Likes++
		return true, nil
	}
	return false, util.ErrPostNotFound
}

func (r *PostRepository) AddComment(postID string, comment model.Comment) error {
	r.DB.Posts.Lock()
	defer r.DB.Posts.Unlock()

	for _, p := range r.DB.Posts.Rows {
		if p.ID == postID {
			p.Comments = append(p.Comments, comment)
			return nil
		}
	}
	return util.ErrPostNotFound
}

func (r *PostRepository) AddReply(postID, commentID string, reply model.Reply) error {
	r.DB.Posts.Lock()
	defer r.DB.Posts.Unlock()

	for _, p := range r.DB.Posts.Rows {
		if p.ID != postID {
			continue
		}
		for i := range p.Comments {
			if p.Comments[i].ID == commentID {
				p.Comments[i].Replies = append(p.Comments[i].Replies, reply)
				return nil
			}
		}
		return util.ErrCommentNotFound
	}
	return util.ErrPostNotFound
}

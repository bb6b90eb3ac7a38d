package model

type Post struct {
	ID       string    `json:"id"`
	Author   string    `json:"author"`
	Avatar   string    `json:"avatar,omitempty"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Likes    int       `json:"likes"`
	LikedBy  []string  `json:"likedBy"`
	Comments []Comment `json:"comments"`
	Time     string    `json:"time"`
}

type Comment struct {
	ID      string  `json:"id"`
	Author  string  `json:"author"`
	Avatar  string  `json:"avatar,omitempty"`
	Content string  `json:"content"`
	Time    string  `json:"time"`
	Replies []Reply `json:"replies"`
}

// Reply deliberately has no Replies field: the discussion tree is two
// levels deep and that limit is structural, not a convention.
type Reply struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Avatar  string `json:"avatar,omitempty"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

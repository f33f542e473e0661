package models

import (
	"time"

	"myblog/internal/patch"
)

type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"articleId"`
	Author    string    `json:"author"`
	Body      *string   `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCommentRequest carries no article id: the parent always comes from
// the articleId query parameter.
type CreateCommentRequest struct {
	Author string  `json:"author" validate:"required" example:"Bob"`
	Body   *string `json:"body,omitempty"              example:"Nice post"`
}

// CommentUpdate is the sparse PATCH payload for a Comment. The parent
// article is fixed at creation and cannot be patched.
type CommentUpdate struct {
	Author patch.Field[string] `json:"author"`
	Body   patch.Field[string] `json:"body"`
}

func (u CommentUpdate) Apply(c Comment) Comment {
	out := c
	u.Author.Apply(&out.Author)
	u.Body.ApplyPtr(&out.Body)
	return out
}

func (u CommentUpdate) IsEmpty() bool { return len(u.Fields()) == 0 }

func (u CommentUpdate) Fields() []string {
	var f []string
	if u.Author.IsSet() {
		f = append(f, "author")
	}
	if u.Body.IsSet() {
		f = append(f, "body")
	}
	return f
}

type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

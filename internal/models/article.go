package models

import (
	"time"

	"myblog/internal/patch"
)

type Article struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Body      *string   `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Author string  `json:"author" validate:"required" example:"Alice"`
	Title  string  `json:"title"  validate:"required" example:"Hi"`
	Body   *string `json:"body,omitempty"              example:"First post"`
}

// ArticleUpdate is the sparse PATCH payload for an Article.
type ArticleUpdate struct {
	Author patch.Field[string] `json:"author"`
	Title  patch.Field[string] `json:"title"`
	Body   patch.Field[string] `json:"body"`
}

// Apply returns a copy of a with every present field overwritten.
// ID and CreatedAt are not part of the payload and are never touched.
func (u ArticleUpdate) Apply(a Article) Article {
	out := a
	u.Author.Apply(&out.Author)
	u.Title.Apply(&out.Title)
	u.Body.ApplyPtr(&out.Body)
	return out
}

func (u ArticleUpdate) IsEmpty() bool { return len(u.Fields()) == 0 }

// Fields lists the present payload keys.
func (u ArticleUpdate) Fields() []string {
	var f []string
	if u.Author.IsSet() {
		f = append(f, "author")
	}
	if u.Title.IsSet() {
		f = append(f, "title")
	}
	if u.Body.IsSet() {
		f = append(f, "body")
	}
	return f
}

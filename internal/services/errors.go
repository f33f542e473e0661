package services

import (
	"fmt"
	"strings"
)

type NotFoundKind string

const (
	ArticleNotFound NotFoundKind = "ArticleNotFound"
	CommentNotFound NotFoundKind = "CommentNotFound"
	UserNotFound    NotFoundKind = "UserNotFound"
	// ParentMissing is returned when a comment names an article that does not exist.
	ParentMissing NotFoundKind = "ParentMissing"
)

type NotFoundError struct {
	Kind NotFoundKind
	ID   int64
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case ArticleNotFound:
		return fmt.Sprintf("article %d not found", e.ID)
	case CommentNotFound:
		return fmt.Sprintf("comment %d not found", e.ID)
	case UserNotFound:
		return fmt.Sprintf("user %d not found", e.ID)
	case ParentMissing:
		return fmt.Sprintf("parent article %d does not exist", e.ID)
	default:
		return fmt.Sprintf("%s: %d", e.Kind, e.ID)
	}
}

// ValidationError lists the problems found in a create payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string { return "invalid username or password" }

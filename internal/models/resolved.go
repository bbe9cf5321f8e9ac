package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolvedComment mirrors Comment with the commentBy reference replaced by
// the full user document.
type ResolvedComment struct {
	Comment     string    `json:"comment"`
	CommentDate time.Time `json:"commentDate"`
	CommentBy   *User     `json:"commentBy,omitempty"`
}

type ResolvedEntry struct {
	Article     string            `json:"article"`
	PublishDate time.Time         `json:"publishDate"`
	Comment     []ResolvedComment `json:"comment"`
}

// ResolvedBlog is the API shape of a Blog: author and comment authors are
// embedded full documents rather than bare ids.
type ResolvedBlog struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	URL       string             `json:"URL"`
	Author    *User              `json:"author"`
	BlogEntry []ResolvedEntry    `json:"blogEntry"`
	Tags      StringList         `json:"tags"`
}

// Resolve builds the API view of the blog using the given user lookup.
// References missing from the map stay nil rather than failing the whole
// document, matching how a populate on a dangling reference behaves.
func (b Blog) Resolve(users map[primitive.ObjectID]User) ResolvedBlog {
	resolved := ResolvedBlog{
		ID:        b.ID,
		Name:      b.Name,
		URL:       b.URL,
		BlogEntry: make([]ResolvedEntry, 0, len(b.BlogEntry)),
		Tags:      b.Tags,
	}
	if resolved.Tags == nil {
		resolved.Tags = StringList{}
	}

	if author, ok := users[b.Author]; ok {
		resolved.Author = &author
	}

	for _, entry := range b.BlogEntry {
		resolvedEntry := ResolvedEntry{
			Article:     entry.Article,
			PublishDate: entry.PublishDate,
			Comment:     make([]ResolvedComment, 0, len(entry.Comment)),
		}
		for _, comment := range entry.Comment {
			resolvedComment := ResolvedComment{
				Comment:     comment.Comment,
				CommentDate: comment.CommentDate,
			}
			if comment.CommentBy != nil {
				if by, ok := users[*comment.CommentBy]; ok {
					resolvedComment.CommentBy = &by
				}
			}
			resolvedEntry.Comment = append(resolvedEntry.Comment, resolvedComment)
		}
		resolved.BlogEntry = append(resolved.BlogEntry, resolvedEntry)
	}
	return resolved
}

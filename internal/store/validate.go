package store

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"blogapp/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their bson/json name, not the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("bson"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func validateDoc(doc interface{}) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return &ValidationError{
		Message: fmt.Sprintf("required field missing: %s", strings.Join(missing, ", ")),
	}
}

// normalizeBlog applies write-time defaults: nil slices become empty ones so
// the stored document always carries the arrays, and zero dates default to
// now, matching the schema's Date.now defaults.
func normalizeBlog(blog *models.Blog, now time.Time) {
	if blog.BlogEntry == nil {
		blog.BlogEntry = []models.Entry{}
	}
	if blog.Tags == nil {
		blog.Tags = models.StringList{}
	}
	for i := range blog.BlogEntry {
		if blog.BlogEntry[i].PublishDate.IsZero() {
			blog.BlogEntry[i].PublishDate = now
		}
		if blog.BlogEntry[i].Comment == nil {
			blog.BlogEntry[i].Comment = []models.Comment{}
		}
		for j := range blog.BlogEntry[i].Comment {
			if blog.BlogEntry[i].Comment[j].CommentDate.IsZero() {
				blog.BlogEntry[i].Comment[j].CommentDate = now
			}
		}
	}
}

func normalizeComment(comment *models.Comment, now time.Time) {
	if comment.CommentDate.IsZero() {
		comment.CommentDate = now
	}
}

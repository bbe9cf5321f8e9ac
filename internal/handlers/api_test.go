package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapp/internal/models"
	"blogapp/internal/store"
)

func newTestRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAPI(r, s)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func createUser(t *testing.T, s store.Store, name, email string) models.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), models.User{Name: name, EmailAddress: email})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	return user
}

func TestCreateAndListUsers(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)

	w := doJSON(t, r, "POST", "/api/users", gin.H{
		"name":         "John Doe",
		"emailAddress": "john@example.com",
		"author":       gin.H{"bio": "Tech enthusiast and blogger"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.User
	decodeBody(t, w, &created)
	if created.ID.IsZero() {
		t.Fatal("expected generated user id")
	}
	if created.Author == nil || created.Author.Bio != "Tech enthusiast and blogger" {
		t.Fatalf("expected author bio preserved, got %+v", created.Author)
	}

	w = doJSON(t, r, "GET", "/api/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var users []models.User
	decodeBody(t, w, &users)
	if len(users) != 1 || users[0].Name != "John Doe" {
		t.Fatalf("unexpected users list: %+v", users)
	}
}

func TestCreateUserDuplicateEmailReturns400(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	createUser(t, s, "John Doe", "john@example.com")

	w := doJSON(t, r, "POST", "/api/users", gin.H{
		"name":         "Impostor",
		"emailAddress": "john@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	decodeBody(t, w, &body)
	if body["message"] == "" {
		t.Fatalf("expected message in error body, got %s", w.Body.String())
	}
}

func TestBlogRoundTripResolvesAuthor(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")

	w := doJSON(t, r, "POST", "/api/blogs", gin.H{
		"name":   "Tech Trends 2024",
		"URL":    "https://x",
		"author": john.ID.Hex(),
		"blogEntry": []gin.H{
			{"article": "Latest trends in technology..."},
		},
		"tags": []string{"technology"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/api/blogs?author="+john.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var blogs []models.ResolvedBlog
	decodeBody(t, w, &blogs)
	if len(blogs) != 1 {
		t.Fatalf("expected exactly 1 blog, got %d", len(blogs))
	}

	blog := blogs[0]
	if blog.Name != "Tech Trends 2024" {
		t.Fatalf("unexpected blog name: %q", blog.Name)
	}
	if blog.Author == nil || blog.Author.Name != "John Doe" || blog.Author.EmailAddress != "john@example.com" {
		t.Fatalf("expected resolved author document, got %+v", blog.Author)
	}
	if len(blog.BlogEntry) != 1 || len(blog.BlogEntry[0].Comment) != 0 {
		t.Fatalf("expected one entry with no comments, got %+v", blog.BlogEntry)
	}
}

func TestGetBlogsForAuthorWithNoBlogs(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	bob := createUser(t, s, "Bob Wilson", "bob@example.com")

	w := doJSON(t, r, "GET", "/api/blogs?author="+bob.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty list, got %s", body)
	}
}

func TestCreateBlogMissingFieldsReturns400(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")

	bodies := []gin.H{
		{"URL": "https://x", "author": john.ID.Hex()},
		{"name": "x", "author": john.ID.Hex()},
		{"name": "x", "URL": "https://x"},
		{"name": "x", "URL": "https://x", "author": john.ID.Hex(), "blogEntry": []gin.H{{}}},
	}

	for i, body := range bodies {
		w := doJSON(t, r, "POST", "/api/blogs", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d: %s", i, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, "GET", "/api/blogs", nil)
	var blogs []models.ResolvedBlog
	decodeBody(t, w, &blogs)
	if len(blogs) != 0 {
		t.Fatalf("expected no partial records, got %d", len(blogs))
	}
}

func TestUpdateBlog(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")

	blog, err := s.CreateBlog(context.Background(), models.Blog{
		Name: "tech", URL: "https://x", Author: john.ID,
		BlogEntry: []models.Entry{{Article: "v1"}},
	})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	w := doJSON(t, r, "PUT", "/api/blogs/"+blog.ID.Hex(), gin.H{
		"name":      "tech v2",
		"URL":       "https://x/v2",
		"author":    john.ID.Hex(),
		"blogEntry": []gin.H{{"article": "v2"}},
		"tags":      []string{"technology"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Blog
	decodeBody(t, w, &updated)
	if updated.Name != "tech v2" || updated.BlogEntry[0].Article != "v2" {
		t.Fatalf("unexpected updated blog: %+v", updated)
	}
}

func TestUpdateMissingBlogReturns404(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")

	w := doJSON(t, r, "PUT", "/api/blogs/"+primitive.NewObjectID().Hex(), gin.H{
		"name":   "ghost",
		"URL":    "https://x",
		"author": john.ID.Hex(),
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteBlogIsIdempotent(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)

	w := doJSON(t, r, "DELETE", "/api/blogs/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown id, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	decodeBody(t, w, &body)
	if body["message"] != "Blog deleted" {
		t.Fatalf("expected deletion confirmation, got %s", w.Body.String())
	}
}

func TestAddComment(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")
	jane := createUser(t, s, "Jane Smith", "jane@example.com")

	blog, err := s.CreateBlog(context.Background(), models.Blog{
		Name: "tech", URL: "https://x", Author: john.ID,
		BlogEntry: []models.Entry{{Article: "v1"}},
	})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	w := doJSON(t, r, "POST", fmt.Sprintf("/api/blogs/%s/comments", blog.ID.Hex()), gin.H{
		"comment":   "Great insights!",
		"commentBy": jane.ID.Hex(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Blog
	decodeBody(t, w, &updated)
	comments := updated.BlogEntry[0].Comment
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].Comment != "Great insights!" {
		t.Fatalf("unexpected comment text: %q", comments[0].Comment)
	}
	if comments[0].CommentBy == nil || *comments[0].CommentBy != jane.ID {
		t.Fatalf("expected commentBy %s, got %+v", jane.ID.Hex(), comments[0].CommentBy)
	}
}

func TestAddCommentMissingBlogReturns404(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)

	w := doJSON(t, r, "POST", fmt.Sprintf("/api/blogs/%s/comments", primitive.NewObjectID().Hex()), gin.H{
		"comment": "hello",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddCommentToBlogWithoutEntriesReturns400(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")

	blog, err := s.CreateBlog(context.Background(), models.Blog{
		Name: "empty", URL: "https://x", Author: john.ID,
	})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	w := doJSON(t, r, "POST", fmt.Sprintf("/api/blogs/%s/comments", blog.ID.Hex()), gin.H{
		"comment": "hello",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTagSearch(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")
	bob := createUser(t, s, "Bob Wilson", "bob@example.com")

	_, err := s.CreateBlog(context.Background(), models.Blog{
		Name: "tech", URL: "https://x", Author: john.ID,
		BlogEntry: []models.Entry{{Article: "tech article"}},
		Tags:      []string{"technology", "trends"},
	})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}
	_, err = s.CreateBlog(context.Background(), models.Blog{
		Name: "travel", URL: "https://y", Author: bob.ID,
		BlogEntry: []models.Entry{{Article: "travel article"}},
		Tags:      []string{"travel"},
	})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	w := doJSON(t, r, "GET", "/api/blogs/tags/technology", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var blogs []models.ResolvedBlog
	decodeBody(t, w, &blogs)
	if len(blogs) != 1 {
		t.Fatalf("expected exactly 1 blog for tag, got %d", len(blogs))
	}
	if blogs[0].Name != "tech" {
		t.Fatalf("unexpected blog: %+v", blogs[0])
	}
	if blogs[0].Author == nil || blogs[0].Author.Name != "John Doe" {
		t.Fatalf("expected resolved author, got %+v", blogs[0].Author)
	}
}

func TestListTagsEndpoint(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")

	_, err := s.CreateBlog(context.Background(), models.Blog{
		Name: "tech", URL: "https://x", Author: john.ID,
		Tags: []string{"trends", "technology"},
	})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	w := doJSON(t, r, "GET", "/api/tags", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var tags []models.Tag
	decodeBody(t, w, &tags)
	if len(tags) != 2 || tags[0].Value != "technology" || tags[1].Value != "trends" {
		t.Fatalf("unexpected tags: %+v", tags)
	}
}

func TestGetSingleBlog(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)
	john := createUser(t, s, "John Doe", "john@example.com")

	blog, err := s.CreateBlog(context.Background(), models.Blog{
		Name: "tech", URL: "https://x", Author: john.ID,
		BlogEntry: []models.Entry{{Article: "v1"}},
	})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	w := doJSON(t, r, "GET", "/api/blogs/"+blog.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var fetched models.ResolvedBlog
	decodeBody(t, w, &fetched)
	if fetched.Author == nil || fetched.Author.Name != "John Doe" {
		t.Fatalf("expected resolved author, got %+v", fetched.Author)
	}

	w = doJSON(t, r, "GET", "/api/blogs/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing blog, got %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/api/blogs/not-a-hex-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}
}

func TestInvalidAuthorQueryReturns400(t *testing.T) {
	s := store.NewMemory()
	r := newTestRouter(s)

	w := doJSON(t, r, "GET", "/api/blogs?author=nope", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

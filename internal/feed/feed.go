package feed

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"
	"time"
)

var (
	ErrNoPosts = errors.New("posts document not exist")
)

type Media struct {
	Type     string  `json:"type"`
	URL      string  `json:"url"`
	ThumbURL string  `json:"thumb_url,omitempty"`
	Aspect   float64 `json:"aspect,omitempty"`
	Caption  string  `json:"caption,omitempty"`
}

type Post struct {
	PostID      string   `json:"post_id"`
	CreatedAt   string   `json:"created_at"`
	GroupTitle  string   `json:"group_title,omitempty"`
	GroupSlug   string   `json:"group_slug,omitempty"`
	CaptionText string   `json:"caption_text,omitempty"`
	Media       []*Media `json:"media"`
	Views       int      `json:"views"`
	Tags        []string `json:"tags,omitempty"`
	Pinned      bool     `json:"pinned,omitempty"`
}

type FeedRepo interface {
	GetAll() ([]*Post, error)
	GetByGroup(slug string) ([]*Post, error)
}

// FileRepo serves the prebuilt posts.json document. The file is the
// output of the content build step; this repo only loads, orders and
// filters it.
type FileRepo struct {
	posts []*Post
}

var _ FeedRepo = (*FileRepo)(nil)

// NewEmptyRepo is the fallback when no posts document has been built
// yet: the feed is empty but reactions and views still work.
func NewEmptyRepo() *FileRepo {
	return &FileRepo{}
}

func NewFileRepo(path string) (*FileRepo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoPosts
		}

		return nil, err
	}

	var posts []*Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, err
	}

	// Newest first.
	sort.SliceStable(posts, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339, posts[i].CreatedAt)
		tj, _ := time.Parse(time.RFC3339, posts[j].CreatedAt)
		return ti.After(tj)
	})

	return &FileRepo{posts: posts}, nil
}

func (r *FileRepo) GetAll() ([]*Post, error) {
	posts := make([]*Post, 0, len(r.posts))
	posts = append(posts, r.posts...)

	return posts, nil
}

// GetByGroup matches on group slug; older posts without a slug fall
// back to a case-insensitive title match.
func (r *FileRepo) GetByGroup(slug string) ([]*Post, error) {
	want := strings.ToLower(slug)
	posts := make([]*Post, 0, len(r.posts))

	for _, post := range r.posts {
		if post.GroupSlug != "" {
			if strings.ToLower(post.GroupSlug) == want {
				posts = append(posts, post)
			}
			continue
		}
		if strings.ToLower(post.GroupTitle) == want {
			posts = append(posts, post)
		}
	}

	return posts, nil
}

package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/models"
)

// Sort is the order of a post listing.
type Sort int

const (
	SortNewest Sort = iota
	SortPopular
)

// ParseSort accepts "newest" and "popular".
func ParseSort(s string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest":
		return SortNewest, nil
	case "popular":
		return SortPopular, nil
	}
	return 0, fmt.Errorf("%w: unknown sort %q", common.ErrValidation, s)
}

// Filter narrows a post listing. Zero fields match everything.
type Filter struct {
	Stream        models.Stream
	Query         string
	ExcludeAuthor string
}

func (f Filter) match(p models.Post) bool {
	if f.Stream != "" && p.Stream != f.Stream {
		return false
	}
	if f.Query != "" && !p.Matches(f.Query) {
		return false
	}
	if f.ExcludeAuthor != "" && p.Author == f.ExcludeAuthor {
		return false
	}
	return true
}

// PostService is the feed: posts, their comments and likes.
type PostService interface {
	Create(ctx context.Context, title, content string, stream models.Stream, authorEmail string) (models.Post, error)
	List(ctx context.Context, f Filter, sort Sort) ([]models.Post, error)
	Get(ctx context.Context, postID int64) (models.Post, error)
	ToggleLike(ctx context.Context, postID int64, userEmail string) error
	Edit(ctx context.Context, postID int64, actorEmail string, newTitle, newContent *string) error
	Delete(ctx context.Context, postID int64, actorEmail string) error
	AddComment(ctx context.Context, postID int64, authorEmail, text string) error
	EditComment(ctx context.Context, postID int64, index int, actorEmail, newText string) error
	DeleteComment(ctx context.Context, postID int64, index int, actorEmail string) error
}

type postService struct {
	base
	docs *docstore.Documents
}

func NewPostService(docs *docstore.Documents, opts ...Option) PostService {
	return &postService{base: newBase(opts), docs: docs}
}

func (s *postService) Create(ctx context.Context, title, content string, stream models.Stream, authorEmail string) (models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return models.Post{}, fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}
	if !stream.Valid() {
		return models.Post{}, fmt.Errorf("%w: unknown stream %q", common.ErrValidation, stream)
	}

	var post models.Post
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		posts, err := tx.Posts(ctx)
		if err != nil {
			return err
		}

		var maxID int64
		for _, p := range posts.Items() {
			maxID = max(maxID, p.ID)
		}
		now := s.now()
		post = models.Post{
			ID:        nextID(now, maxID),
			Title:     title,
			Content:   content,
			Stream:    stream,
			Author:    authorEmail,
			Timestamp: now.UTC(),
			Likes:     models.LikeSet{},
			Comments:  []models.Comment{},
		}
		posts.Append(post)
		return tx.PutPosts(ctx, posts)
	})
	if err != nil {
		s.log.Error(ctx, "create post failed", "author", authorEmail, "error", err)
		return models.Post{}, err
	}

	s.log.Info(ctx, "post created", "id", post.ID, "author", authorEmail)
	return post, nil
}

// List returns the matching posts. Both orders are stable with respect to
// storage order.
func (s *postService) List(ctx context.Context, f Filter, sort Sort) ([]models.Post, error) {
	var out []models.Post
	err := s.docs.View(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		posts, err := tx.Posts(ctx)
		if err != nil {
			return err
		}
		for _, p := range posts.Items() {
			if f.match(p) {
				out = append(out, p.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch sort {
	case SortPopular:
		slices.SortStableFunc(out, func(a, b models.Post) int {
			return cmp.Compare(len(b.Likes), len(a.Likes))
		})
	default:
		slices.SortStableFunc(out, func(a, b models.Post) int {
			return b.Timestamp.Compare(a.Timestamp)
		})
	}
	return out, nil
}

func (s *postService) Get(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post
	err := s.docs.View(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		posts, err := tx.Posts(ctx)
		if err != nil {
			return err
		}
		p, ok := posts.Get(postID)
		if !ok {
			return postNotFound(postID)
		}
		post = p.Clone()
		return nil
	})
	return post, err
}

// ToggleLike adds or removes userEmail from the post's likes. A missing
// post is not an error.
func (s *postService) ToggleLike(ctx context.Context, postID int64, userEmail string) error {
	var liked, found bool
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		posts, err := tx.Posts(ctx)
		if err != nil {
			return err
		}
		found = posts.Update(postID, func(p *models.Post) {
			p.Likes, liked = p.Likes.Toggle(userEmail)
		})
		if !found {
			return nil
		}
		return tx.PutPosts(ctx, posts)
	})
	if err != nil {
		return err
	}

	if found {
		s.log.Debug(ctx, "like toggled", "id", postID, "user", userEmail, "liked", liked)
	}
	return nil
}

// Edit replaces the title and content the caller passes; nil leaves a
// field as it is.
func (s *postService) Edit(ctx context.Context, postID int64, actorEmail string, newTitle, newContent *string) error {
	return s.mutateOwned(ctx, "edit post", postID, actorEmail, func(posts *docstore.Posts) {
		posts.Update(postID, func(p *models.Post) {
			if newTitle != nil {
				p.Title = *newTitle
			}
			if newContent != nil {
				p.Content = *newContent
			}
		})
	})
}

// Delete removes the post together with its comments.
func (s *postService) Delete(ctx context.Context, postID int64, actorEmail string) error {
	return s.mutateOwned(ctx, "delete post", postID, actorEmail, func(posts *docstore.Posts) {
		posts.Remove(postID)
	})
}

func (s *postService) mutateOwned(ctx context.Context, op string, postID int64, actorEmail string, fn func(posts *docstore.Posts)) error {
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		posts, err := tx.Posts(ctx)
		if err != nil {
			return err
		}
		p, ok := posts.Get(postID)
		if !ok {
			return postNotFound(postID)
		}
		if !p.OwnedBy(actorEmail) {
			return fmt.Errorf("%w: post %d is not yours", common.ErrPermission, postID)
		}
		fn(posts)
		return tx.PutPosts(ctx, posts)
	})
	if err != nil {
		s.log.Warn(ctx, op+" failed", "id", postID, "actor", actorEmail, "error", err)
		return err
	}

	s.log.Info(ctx, op, "id", postID, "actor", actorEmail)
	return nil
}

func (s *postService) AddComment(ctx context.Context, postID int64, authorEmail, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: comment is empty", common.ErrValidation)
	}

	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		posts, err := tx.Posts(ctx)
		if err != nil {
			return err
		}
		found := posts.Update(postID, func(p *models.Post) {
			p.Comments = append(p.Comments, models.NewComment(text, authorEmail, s.now().UTC()))
		})
		if !found {
			return postNotFound(postID)
		}
		return tx.PutPosts(ctx, posts)
	})
	if err != nil {
		s.log.Warn(ctx, "add comment failed", "id", postID, "author", authorEmail, "error", err)
		return err
	}

	s.log.Info(ctx, "comment added", "id", postID, "author", authorEmail)
	return nil
}

// EditComment replaces the text of comment index of the post.
func (s *postService) EditComment(ctx context.Context, postID int64, index int, actorEmail, newText string) error {
	return s.mutateComment(ctx, "edit comment", postID, index, actorEmail, func(p *models.Post) {
		p.Comments[index].Text = newText
	})
}

// DeleteComment removes comment index; later comments shift down by one.
func (s *postService) DeleteComment(ctx context.Context, postID int64, index int, actorEmail string) error {
	return s.mutateComment(ctx, "delete comment", postID, index, actorEmail, func(p *models.Post) {
		p.Comments = slices.Delete(slices.Clone(p.Comments), index, index+1)
	})
}

func (s *postService) mutateComment(ctx context.Context, op string, postID int64, index int, actorEmail string, fn func(p *models.Post)) error {
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		posts, err := tx.Posts(ctx)
		if err != nil {
			return err
		}
		p, ok := posts.Get(postID)
		if !ok {
			return postNotFound(postID)
		}
		if index < 0 || index >= len(p.Comments) {
			return fmt.Errorf("%w: post %d has no comment %d", common.ErrNotFound, postID, index)
		}
		if !p.Comments[index].OwnedBy(actorEmail) {
			return fmt.Errorf("%w: comment %d is not yours", common.ErrPermission, index)
		}
		posts.Update(postID, fn)
		return tx.PutPosts(ctx, posts)
	})
	if err != nil {
		s.log.Warn(ctx, op+" failed", "id", postID, "index", index, "actor", actorEmail, "error", err)
		return err
	}

	s.log.Info(ctx, op, "id", postID, "index", index, "actor", actorEmail)
	return nil
}

func postNotFound(id int64) error {
	return fmt.Errorf("%w: post %d", common.ErrNotFound, id)
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/services"
)

func parseID(args []string, what string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: usage: <%s id>", common.ErrValidation, what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %s id", common.ErrValidation, args[0], what)
	}
	return id, nil
}

// parseCommentRef reads "<post id> <n>" where n counts comments from 1.
func parseCommentRef(args []string) (int64, int, error) {
	id, err := parseID(args, "post")
	if err != nil {
		return 0, 0, err
	}
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("%w: usage: <post id> <comment number>", common.ErrValidation)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a comment number", common.ErrValidation, args[1])
	}
	return id, n - 1, nil
}

func (a *App) showPosts(ctx context.Context, f services.Filter, sort services.Sort, keep func(models.Post) bool) error {
	posts, err := a.posts.List(ctx, f, sort)
	if err != nil {
		return err
	}
	if keep != nil {
		kept := posts[:0]
		for _, p := range posts {
			if keep(p) {
				kept = append(kept, p)
			}
		}
		posts = kept
	}

	names, err := a.sessions.Usernames(ctx)
	if err != nil {
		return err
	}
	a.println(a.styles.feed(posts, a.session.Email(), names))
	return nil
}

// feed accepts its arguments in any order.
func (a *App) feed(ctx context.Context, args []string) error {
	var (
		f    services.Filter
		sort = services.SortNewest
	)
	for _, arg := range args {
		if s, err := models.ParseStream(arg); err == nil {
			f.Stream = s
			continue
		}
		if strings.EqualFold(arg, "others") {
			f.ExcludeAuthor = a.session.Email()
			continue
		}
		s, err := services.ParseSort(arg)
		if err != nil {
			return fmt.Errorf("%w: %q is neither a stream nor an order", common.ErrValidation, arg)
		}
		sort = s
	}
	return a.showPosts(ctx, f, sort, nil)
}

func (a *App) mine(ctx context.Context, _ []string) error {
	me := a.session.Email()
	return a.showPosts(ctx, services.Filter{}, services.SortNewest, func(p models.Post) bool {
		return p.Author == me
	})
}

func (a *App) search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = a.ask("Search posts"); err != nil {
			return err
		}
	}
	return a.showPosts(ctx, services.Filter{Query: query}, services.SortNewest, nil)
}

func (a *App) askStream(prompt string, def models.Stream) (models.Stream, error) {
	answer, err := a.ask(fmt.Sprintf("%s: Science, Commerce or Arts (blank for %s)", prompt, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	s, err := models.ParseStream(answer)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return s, nil
}

func (a *App) createPost(ctx context.Context, _ []string) error {
	title, err := a.ask("Title")
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	stream, err := a.askStream("Stream", models.StreamScience)
	if err != nil {
		return err
	}

	p, err := a.posts.Create(ctx, title, content, stream, a.session.Email())
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Post #%d published.", p.ID))
	return nil
}

func (a *App) like(ctx context.Context, args []string) error {
	id, err := parseID(args, "post")
	if err != nil {
		return err
	}
	if err := a.posts.ToggleLike(ctx, id, a.session.Email()); err != nil {
		return err
	}
	p, err := a.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.Likes.Has(a.session.Email()) {
		a.println(fmt.Sprintf("♥ Liked #%d (%d likes)", id, len(p.Likes)))
	} else {
		a.println(fmt.Sprintf("♡ Unliked #%d (%d likes)", id, len(p.Likes)))
	}
	return nil
}

// optional reads a replacement value; a blank answer means no change.
func (a *App) optional(prompt, current string) (*string, error) {
	answer, err := a.ask(fmt.Sprintf("%s [%s] (blank keeps it)", prompt, current))
	if err != nil || answer == "" {
		return nil, err
	}
	return &answer, nil
}

func (a *App) editPost(ctx context.Context, args []string) error {
	id, err := parseID(args, "post")
	if err != nil {
		return err
	}
	p, err := a.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	if !p.OwnedBy(a.session.Email()) {
		return fmt.Errorf("%w: post %d", common.ErrPermission, id)
	}

	title, err := a.optional("Edit title", p.Title)
	if err != nil {
		return err
	}
	content, err := a.optional("Edit content", p.Content)
	if err != nil {
		return err
	}
	if err := a.posts.Edit(ctx, id, a.session.Email(), title, content); err != nil {
		return err
	}
	a.println("Post updated.")
	return nil
}

func (a *App) deletePost(ctx context.Context, args []string) error {
	id, err := parseID(args, "post")
	if err != nil {
		return err
	}
	if err := a.posts.Delete(ctx, id, a.session.Email()); err != nil {
		return err
	}
	a.println("Post deleted.")
	return nil
}

func (a *App) comment(ctx context.Context, args []string) error {
	id, err := parseID(args, "post")
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
	if text == "" {
		if text, err = a.ask("Add comment"); err != nil {
			return err
		}
	}
	if err := a.posts.AddComment(ctx, id, a.session.Email(), text); err != nil {
		return err
	}
	a.println("Comment added.")
	return nil
}

func (a *App) editComment(ctx context.Context, args []string) error {
	id, index, err := parseCommentRef(args)
	if err != nil {
		return err
	}
	p, err := a.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(p.Comments) {
		return fmt.Errorf("%w: post %d has no comment %d", common.ErrNotFound, id, index+1)
	}
	if !p.Comments[index].OwnedBy(a.session.Email()) {
		return fmt.Errorf("%w: comment %d", common.ErrPermission, index+1)
	}

	text, err := a.ask(fmt.Sprintf("Edit comment [%s]", p.Comments[index].Text))
	if err != nil {
		return err
	}
	if err := a.posts.EditComment(ctx, id, index, a.session.Email(), text); err != nil {
		return err
	}
	a.println("Comment updated.")
	return nil
}

func (a *App) deleteComment(ctx context.Context, args []string) error {
	id, index, err := parseCommentRef(args)
	if err != nil {
		return err
	}
	if err := a.posts.DeleteComment(ctx, id, index, a.session.Email()); err != nil {
		return err
	}
	a.println("Comment deleted.")
	return nil
}

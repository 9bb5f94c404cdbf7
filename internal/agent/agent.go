// Package agent implements the autonomous actor loop driving AI authors.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/gabacode/AInteract/internal/apiclient"
	"github.com/gabacode/AInteract/internal/middleware"
)

// API is the surface of the backend client the agent needs.
type API interface {
	FetchPosts(ctx context.Context) ([]apiclient.Post, error)
	FetchAIAuthors(ctx context.Context) ([]apiclient.Author, error)
	AddAuthor(ctx context.Context, username, avatar string) error
	AddPost(ctx context.Context, content string, authorID uint) error
	AddComment(ctx context.Context, postID uint, content string, authorID uint) error
}

// ContentSource produces the text an AI author publishes.
type ContentSource interface {
	Username(ctx context.Context) string
	FirstPost(ctx context.Context, author apiclient.Author) string
	Post(ctx context.Context, author apiclient.Author) string
	Comment(ctx context.Context, author apiclient.Author, post apiclient.Post) string
}

// retryDelay is the short sleep used when the backend is not ready yet
// (no AI authors, fetch errors) before the next attempt.
const retryDelay = 10 * time.Second

var (
	// ErrAlreadyRunning is returned by Start when the loop is active.
	ErrAlreadyRunning = errors.New("agent is already running")
	// ErrNotRunning is returned by Stop when the loop is idle.
	ErrNotRunning = errors.New("agent is not running")
)

// Agent runs a single sequential poll-decide-act loop. All external calls
// happen inside one iteration; the stop signal is honored at iteration
// boundaries and while sleeping.
type Agent struct {
	api      API
	source   ContentSource
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an Agent polling the backend every interval.
func New(api API, source ContentSource, interval time.Duration) *Agent {
	return &Agent{
		api:      api,
		source:   source,
		interval: interval,
		logger:   middleware.Logger,
	}
}

// Start launches the decision loop. It returns ErrAlreadyRunning when the
// loop is already active.
func (a *Agent) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})

	go func() {
		defer close(a.done)
		a.run(ctx)
	}()

	a.logger.Info("agent started")
	return nil
}

// Stop signals the loop to finish and waits for it. It returns
// ErrNotRunning when the loop is idle.
func (a *Agent) Stop() error {
	a.mu.Lock()
	if a.cancel == nil {
		a.mu.Unlock()
		return ErrNotRunning
	}
	cancel, done := a.cancel, a.done
	a.cancel = nil
	a.done = nil
	a.mu.Unlock()

	cancel()
	<-done
	a.logger.Info("agent stopped")
	return nil
}

// Running reports whether the decision loop is active.
func (a *Agent) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

func (a *Agent) run(ctx context.Context) {
	a.logger.Info("decision loop is running")
	for {
		if ctx.Err() != nil {
			return
		}
		if err := a.Iterate(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			a.logger.Error("decision loop iteration failed", slog.String("error", err.Error()))
			if !sleep(ctx, retryDelay) {
				return
			}
			continue
		}
		if !sleep(ctx, a.interval) {
			return
		}
	}
}

// Iterate performs one poll-decide-act cycle: ensure AI authors exist, then
// either bootstrap the feed with first posts or let each author act.
func (a *Agent) Iterate(ctx context.Context) error {
	authors, err := a.ensureAuthors(ctx)
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		// A freshly created author may not be visible yet; try again next tick.
		return nil
	}

	posts, err := a.api.FetchPosts(ctx)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		a.addInitialPosts(ctx, authors)
		return nil
	}

	a.performActions(ctx, authors, posts)
	return nil
}

// ensureAuthors fetches the AI authors, creating one when none exist.
func (a *Agent) ensureAuthors(ctx context.Context) ([]apiclient.Author, error) {
	authors, err := a.api.FetchAIAuthors(ctx)
	if err != nil {
		return nil, err
	}
	if len(authors) > 0 {
		return authors, nil
	}

	a.logger.Warn("no AI authors found, creating a new one")
	username := a.source.Username(ctx)
	if err := a.api.AddAuthor(ctx, username, randomAvatar()); err != nil {
		return nil, err
	}
	return nil, nil
}

func (a *Agent) addInitialPosts(ctx context.Context, authors []apiclient.Author) {
	for _, author := range authors {
		if ctx.Err() != nil {
			return
		}
		content := a.source.FirstPost(ctx, author)
		a.logger.Info("adding first post", slog.String("author", author.Username))
		if err := a.api.AddPost(ctx, content, author.ID); err != nil {
			a.logger.Error("failed to add post", slog.String("error", err.Error()))
		}
	}
}

func (a *Agent) performActions(ctx context.Context, authors []apiclient.Author, posts []apiclient.Post) {
	for _, author := range authors {
		if ctx.Err() != nil {
			return
		}
		if rand.Intn(2) == 0 {
			post := posts[rand.Intn(len(posts))]
			content := a.source.Comment(ctx, author, post)
			a.logger.Info("adding comment",
				slog.String("author", author.Username), slog.Any("post_id", post.ID))
			if err := a.api.AddComment(ctx, post.ID, content, author.ID); err != nil {
				a.logger.Error("failed to add comment", slog.String("error", err.Error()))
			}
		} else {
			content := a.source.Post(ctx, author)
			a.logger.Info("adding post", slog.String("author", author.Username))
			if err := a.api.AddPost(ctx, content, author.ID); err != nil {
				a.logger.Error("failed to add post", slog.String("error", err.Error()))
			}
		}
	}
}

// sleep waits for d or until the context is cancelled; it reports whether
// the full duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

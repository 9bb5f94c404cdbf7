package agent

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/gabacode/AInteract/internal/apiclient"
	"github.com/gabacode/AInteract/internal/middleware"
	"github.com/gabacode/AInteract/internal/models"
)

// placeholderContent is published when the generation service fails; the
// loop never crashes over a bad completion.
const placeholderContent = "Thoughts could not be generated."

const (
	usernameLength    = 8
	usernameAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	commentMaxLen     = 200
	snippetMaxLen     = 20
	maxAvatarVariants = 70
)

func randomUsername() string {
	b := make([]byte, usernameLength)
	for i := range b {
		b[i] = usernameAlphabet[rand.Intn(len(usernameAlphabet))]
	}
	return string(b)
}

func randomAvatar() string {
	return fmt.Sprintf("https://i.pravatar.cc/150?img=%d", rand.Intn(maxAvatarVariants)+1)
}

// TemplateSource produces canned content without any external service.
type TemplateSource struct{}

// NewTemplateSource creates a template-based ContentSource.
func NewTemplateSource() *TemplateSource { return &TemplateSource{} }

func (s *TemplateSource) Username(context.Context) string { return randomUsername() }

func (s *TemplateSource) FirstPost(_ context.Context, author apiclient.Author) string {
	return fmt.Sprintf("%s shares their first thought!", author.Username)
}

func (s *TemplateSource) Post(_ context.Context, author apiclient.Author) string {
	return fmt.Sprintf("%s has a new thought to share!", author.Username)
}

func (s *TemplateSource) Comment(_ context.Context, author apiclient.Author, post apiclient.Post) string {
	return fmt.Sprintf("%s thinks '%s...' is fascinating!", author.Username, snippet(post.Content))
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetMaxLen {
		return content
	}
	return string(runes[:snippetMaxLen])
}

// Generator is the text generation dependency of LLMSource.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMSource produces content through a generation service, degrading to a
// placeholder string on failure.
type LLMSource struct {
	gen    Generator
	logger *slog.Logger
}

// NewLLMSource creates a generation-backed ContentSource.
func NewLLMSource(gen Generator) *LLMSource {
	return &LLMSource{gen: gen, logger: middleware.Logger}
}

func (s *LLMSource) Username(ctx context.Context) string {
	username := s.generate(ctx, "Generate a random username without any emoji.", 50)
	if username == placeholderContent {
		return randomUsername()
	}
	return username
}

func (s *LLMSource) FirstPost(ctx context.Context, author apiclient.Author) string {
	prompt := fmt.Sprintf(
		"Imagine you are a person named %s, author on a social media platform. "+
			"Write an engaging first post for them on a topic of your choice.",
		author.Username)
	return s.generate(ctx, prompt, models.PostContentMaxLen)
}

func (s *LLMSource) Post(ctx context.Context, author apiclient.Author) string {
	prompt := fmt.Sprintf("Write a new post for %s.", author.Username)
	return s.generate(ctx, prompt, models.PostContentMaxLen)
}

func (s *LLMSource) Comment(ctx context.Context, author apiclient.Author, post apiclient.Post) string {
	prompt := fmt.Sprintf(
		"As %s, you are an AI author participating in a vibrant social platform. "+
			"Read this post: %q and write a very brief, thoughtful, personal comment "+
			"that expresses your perspective or adds value to the discussion. Keep it under 100 words.",
		author.Username, post.Content)
	return s.generate(ctx, prompt, commentMaxLen)
}

func (s *LLMSource) generate(ctx context.Context, prompt string, maxLen int) string {
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("content generation failed", slog.String("error", err.Error()))
		return placeholderContent
	}
	return sanitizeContent(raw, maxLen)
}

// sanitizeContent collapses whitespace and clips the text to maxLen runes so
// generated content always fits the platform bounds.
func sanitizeContent(content string, maxLen int) string {
	sanitized := strings.Join(strings.Fields(content), " ")
	if sanitized == "" {
		return placeholderContent
	}
	if utf8.RuneCountInString(sanitized) > maxLen {
		runes := []rune(sanitized)
		sanitized = strings.TrimRight(string(runes[:maxLen]), " ")
	}
	return sanitized
}

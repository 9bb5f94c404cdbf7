package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gabacode/AInteract/internal/apiclient"
	"github.com/gabacode/AInteract/internal/models"

	"github.com/stretchr/testify/assert"
)

// generatorStub is a stub for the Generator interface.
type generatorStub struct {
	generateFn func(context.Context, string) (string, error)
}

func (s *generatorStub) Generate(ctx context.Context, prompt string) (string, error) {
	return s.generateFn(ctx, prompt)
}

func TestTemplateSource(t *testing.T) {
	t.Parallel()

	src := NewTemplateSource()
	author := apiclient.Author{ID: 1, Username: "bot-a"}

	assert.Equal(t, "bot-a shares their first thought!", src.FirstPost(context.Background(), author))
	assert.Equal(t, "bot-a has a new thought to share!", src.Post(context.Background(), author))

	comment := src.Comment(context.Background(), author, apiclient.Post{
		ID:      1,
		Content: "a very long post body that goes well past the snippet cut",
	})
	assert.Equal(t, "bot-a thinks 'a very long post bod...' is fascinating!", comment)

	username := src.Username(context.Background())
	assert.Len(t, username, 8)
}

func TestLLMSource_DegradesToPlaceholder(t *testing.T) {
	t.Parallel()

	src := NewLLMSource(&generatorStub{
		generateFn: func(context.Context, string) (string, error) {
			return "", errors.New("model unavailable")
		},
	})
	author := apiclient.Author{ID: 1, Username: "bot-a"}

	assert.Equal(t, placeholderContent, src.Post(context.Background(), author))
	assert.Equal(t, placeholderContent, src.FirstPost(context.Background(), author))
	assert.Equal(t, placeholderContent, src.Comment(context.Background(), author, apiclient.Post{}))

	// Username falls back to a random one instead of the placeholder text.
	username := src.Username(context.Background())
	assert.NotEqual(t, placeholderContent, username)
	assert.Len(t, username, 8)
}

func TestLLMSource_UsesGeneratedContent(t *testing.T) {
	t.Parallel()

	src := NewLLMSource(&generatorStub{
		generateFn: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "bot-a")
			return "A generated thought.", nil
		},
	})

	content := src.Post(context.Background(), apiclient.Author{Username: "bot-a"})
	assert.Equal(t, "A generated thought.", content)
}

func TestSanitizeContent(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b c", sanitizeContent("  a\n\nb\t c ", 100))
	})

	t.Run("clips to limit", func(t *testing.T) {
		t.Parallel()
		clipped := sanitizeContent(strings.Repeat("x", models.PostContentMaxLen+500), models.PostContentMaxLen)
		assert.Len(t, []rune(clipped), models.PostContentMaxLen)
	})

	t.Run("whitespace-only degrades to placeholder", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, placeholderContent, sanitizeContent("   \n\t ", 100))
	})

	t.Run("clipping never ends on a space", func(t *testing.T) {
		t.Parallel()
		clipped := sanitizeContent("ab cd ef", 6)
		assert.Equal(t, "ab cd", clipped)
	})
}

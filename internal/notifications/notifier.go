// Package notifications publishes fire-and-forget events onto Redis channels.
package notifications

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewPostChannel is the channel fed one message per created post.
const NewPostChannel = "new_post"

// Notifier provides helpers to publish notifications into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishNewPost announces a freshly created post. With no Redis client
// configured it is a no-op.
func (n *Notifier) PublishNewPost(ctx context.Context, postID uint) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	payload := fmt.Sprintf("Post %d added!", postID)
	return n.rdb.Publish(ctx, NewPostChannel, payload).Err()
}

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "job-notifications"

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// envelope is the message published for each intent. Subscribers turn it
// into email, push or in-app messages.
type envelope struct {
	entities.NotificationIntent
	DispatchedAt time.Time `json:"dispatched_at"`
}

// RedisDispatcher publishes one message per intent on a pub/sub channel.
type RedisDispatcher struct {
	client  publisher
	channel string
	now     func() time.Time
}

var _ interfaces.INotificationDispatcher = (*RedisDispatcher)(nil)

func NewRedisDispatcher(client *redis.Client, channel string) *RedisDispatcher {
	return newRedisDispatcher(client, channel)
}

func newRedisDispatcher(client publisher, channel string) *RedisDispatcher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisDispatcher{
		client:  client,
		channel: channel,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch attempts every intent and joins the failures.
func (d *RedisDispatcher) Dispatch(ctx context.Context, intents []entities.NotificationIntent) error {
	var errs []error
	for _, in := range intents {
		b, err := json.Marshal(envelope{NotificationIntent: in, DispatchedAt: d.now()})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := d.client.Publish(ctx, d.channel, b).Err(); err != nil {
			errs = append(errs, fmt.Errorf("publish %s for job %s: %w", in.Category, in.JobID, err))
		}
	}
	return errors.Join(errs...)
}

// NewDispatcher picks Redis when a client is available and the log sink
// otherwise.
func NewDispatcher(client *redis.Client, channel string) interfaces.INotificationDispatcher {
	if client == nil {
		return NewLogDispatcher()
	}
	return NewRedisDispatcher(client, channel)
}

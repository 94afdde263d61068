package realtime

import (
	"context"

	"github.com/jvboschetti/acai-storefront/pkg/logger"
	"github.com/jvboschetti/acai-storefront/pkg/redis"
)

// ordersChannel is the Redis pub/sub channel bridging order-change
// pings across API instances.
const ordersChannel = "orders:changed"

// Broadcaster routes order-change notifications. With Redis configured
// it publishes through the shared channel and a bridge goroutine
// delivers to the local hub, so every instance (including the
// publisher) sees exactly one ping. Without Redis it degrades to the
// local hub only.
type Broadcaster struct {
	hub    *Hub
	redis  *redis.Client
	logg   *logger.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// NewBroadcaster wires the hub to an optional Redis client. redisClient
// may be nil for single-instance deployments.
func NewBroadcaster(hub *Hub, redisClient *redis.Client, logg *logger.Logger) *Broadcaster {
	return &Broadcaster{hub: hub, redis: redisClient, logg: logg}
}

// Hub exposes the local hub for subscribers.
func (b *Broadcaster) Hub() *Hub {
	return b.hub
}

// NotifyOrdersChanged publishes one change ping.
func (b *Broadcaster) NotifyOrdersChanged(ctx context.Context) {
	if b.redis == nil {
		b.hub.Publish()
		return
	}
	if err := b.redis.Publish(ctx, ordersChannel, "1"); err != nil {
		b.logg.Error(ctx, "publishing order change to redis", err)
		// Local subscribers still get the ping.
		b.hub.Publish()
	}
}

// Start runs the Redis bridge until Close or ctx cancellation. No-op
// without Redis.
func (b *Broadcaster) Start(ctx context.Context) error {
	if b.redis == nil {
		return nil
	}

	pubsub, err := b.redis.Subscribe(ctx, ordersChannel)
	if err != nil {
		return err
	}

	bridgeCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})

	go func() {
		defer close(b.done)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-bridgeCtx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					b.logg.Warn(bridgeCtx, "redis order-change subscription closed")
					return
				}
				b.hub.Publish()
			}
		}
	}()

	b.logg.Info(ctx, "order-change redis bridge started")
	return nil
}

// Close stops the bridge goroutine and waits for it to exit.
func (b *Broadcaster) Close() {
	if b.cancel == nil {
		return
	}
	b.cancel()
	<-b.done
}

package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishDispatchesInOrder(t *testing.T) {
	b := NewBus()
	b.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	var calls []string
	b.Subscribe(TypeOrderPlaced, func(_ context.Context, e Event) {
		calls = append(calls, "first:"+e.Data["orderId"].(string))
	})
	b.Subscribe(TypeOrderPlaced, func(_ context.Context, _ Event) {
		calls = append(calls, "second")
	})
	b.Subscribe(TypeNotificationSent, func(_ context.Context, _ Event) {
		calls = append(calls, "unrelated")
	})

	b.Publish(context.Background(), TypeOrderPlaced, map[string]any{"orderId": "ORD-00001"})

	assert.Equal(t, []string{"first:ORD-00001", "second"}, calls)
}

func TestBus_RecentKeepsPublishOrder(t *testing.T) {
	b := NewBus()

	b.Publish(context.Background(), TypeOrderPlaced, map[string]any{"orderId": "ORD-00001"})
	b.Publish(context.Background(), TypeNotificationSent, map[string]any{"channel": "EMAIL"})

	got := b.Recent()
	require.Len(t, got, 2)
	assert.Equal(t, TypeOrderPlaced, got[0].Type)
	assert.Equal(t, TypeNotificationSent, got[1].Type)
}

func TestBus_LogBounded(t *testing.T) {
	b := NewBus()

	for range maxLog + 10 {
		b.Publish(context.Background(), TypeOrderPlaced, nil)
	}

	assert.Len(t, b.Recent(), maxLog)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	b := NewBus()

	// Must not panic; the event is still logged.
	b.Publish(context.Background(), TypeOrderPlaced, nil)
	assert.Len(t, b.Recent(), 1)
}

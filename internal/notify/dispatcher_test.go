package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in     string
		want   Channel
		wantOK bool
	}{
		{"EMAIL", ChannelEmail, true},
		{"email", ChannelEmail, true},
		{"Sms", ChannelSMS, true},
		{" push ", ChannelPush, true},
		{"FAX", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseChannel(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatch_RoutesByChannel(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	tests := []struct {
		name      string
		channel   string
		recipient string
	}{
		{"email", "EMAIL", "user@example.com"},
		{"sms", "sms", "+12345678901"},
		{"push", "PUSH", "device-token-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := d.Dispatch(ctx, tt.channel, tt.recipient, "hello")
			require.NoError(t, err)
			assert.True(t, res.OK)
			assert.Equal(t, tt.recipient, res.Recipient)
			assert.False(t, res.At.IsZero())
		})
	}

	assert.Len(t, d.Log(), 3)
}

func TestDispatch_RequestValidation(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	_, err := d.Dispatch(ctx, "CARRIER_PIGEON", "user@example.com", "hi")
	require.ErrorIs(t, err, ErrUnknownChannel)

	_, err = d.Dispatch(ctx, "EMAIL", "", "hi")
	require.ErrorIs(t, err, ErrEmptyRecipient)

	_, err = d.Dispatch(ctx, "EMAIL", "user@example.com", "")
	require.ErrorIs(t, err, ErrEmptyMessage)

	// Request-level failures are not logged as dispatch attempts.
	assert.Empty(t, d.Log())
}

func TestDispatch_InvalidRecipients(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	tests := []struct {
		name      string
		channel   string
		recipient string
	}{
		{"email without at sign", "EMAIL", "not-an-address"},
		{"phone too short", "SMS", "12345"},
		{"phone with letters", "SMS", "+12345abc901"},
		{"device token too short", "PUSH", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := d.Dispatch(ctx, tt.channel, tt.recipient, "hello")
			require.ErrorIs(t, err, ErrInvalidRecipient)
			assert.False(t, res.OK)
			assert.NotEmpty(t, res.Error)
		})
	}

	// Failed deliveries are logged.
	assert.Len(t, d.Log(), 4)
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 200)

	assert.Equal(t, "short", truncate("short", smsMaxLen))
	assert.Len(t, truncate(long, smsMaxLen), smsMaxLen)
	assert.True(t, strings.HasSuffix(truncate(long, smsMaxLen), "..."))
	assert.Len(t, truncate(long, pushMaxLen), pushMaxLen)
}

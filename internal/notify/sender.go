package notify

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// Channel is a delivery channel type.
type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
	ChannelPush  Channel = "PUSH"
)

// ParseChannel normalizes a raw channel string case-insensitively.
// Unrecognized values return ok=false.
func ParseChannel(s string) (Channel, bool) {
	switch Channel(strings.ToUpper(strings.TrimSpace(s))) {
	case ChannelEmail:
		return ChannelEmail, true
	case ChannelSMS:
		return ChannelSMS, true
	case ChannelPush:
		return ChannelPush, true
	default:
		return "", false
	}
}

// Sender delivers a message to a single recipient over one channel.
type Sender interface {
	Send(ctx context.Context, recipient, message string) error
}

// ErrInvalidRecipient is returned when a recipient fails channel-specific
// validation.
var ErrInvalidRecipient = errors.New("invalid recipient")

const (
	smsMaxLen  = 160
	pushMaxLen = 100
)

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

// EmailSender formats messages as a minimal HTML body and logs the delivery.
// Actual transport is out of scope; delivery is simulated.
type EmailSender struct{}

func (EmailSender) Send(ctx context.Context, recipient, message string) error {
	if !strings.Contains(recipient, "@") {
		return errors.Wrapf(ErrInvalidRecipient, "email %q", recipient)
	}

	body := "<html><body><h1>Notification</h1><p>" + message + "</p></body></html>"
	zctx.From(ctx).Info("sending email",
		zap.String("to", recipient),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}

// SMSSender truncates messages to the SMS length limit and logs the delivery.
type SMSSender struct{}

func (SMSSender) Send(ctx context.Context, recipient, message string) error {
	if !phonePattern.MatchString(recipient) {
		return errors.Wrapf(ErrInvalidRecipient, "phone %q", recipient)
	}

	zctx.From(ctx).Info("sending sms",
		zap.String("to", recipient),
		zap.String("text", truncate(message, smsMaxLen)),
	)
	return nil
}

// PushSender truncates messages to the push preview limit and logs the
// delivery.
type PushSender struct{}

func (PushSender) Send(ctx context.Context, recipient, message string) error {
	if len(recipient) < 10 {
		return errors.Wrapf(ErrInvalidRecipient, "device token %q", recipient)
	}

	zctx.From(ctx).Info("sending push",
		zap.String("device", recipient),
		zap.String("preview", truncate(message, pushMaxLen)),
	)
	return nil
}

// truncate shortens s to at most max bytes, appending "..." when cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

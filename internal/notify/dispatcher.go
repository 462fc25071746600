// Package notify routes notifications to channel-specific senders and keeps
// a log of dispatch results.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
)

var (
	// ErrUnknownChannel is returned for channel strings outside the closed
	// EMAIL/SMS/PUSH set.
	ErrUnknownChannel = errors.New("unknown notification channel")
	// ErrEmptyRecipient is returned when the recipient is blank.
	ErrEmptyRecipient = errors.New("recipient is empty")
	// ErrEmptyMessage is returned when the message is blank.
	ErrEmptyMessage = errors.New("message is empty")
)

// Result records the outcome of one dispatch attempt.
type Result struct {
	Channel   Channel
	Recipient string
	OK        bool
	Error     string
	At        time.Time
}

// Dispatcher routes notifications by channel type. The sender set is closed
// at construction; adding a channel means registering a new Sender, not
// editing dispatch logic.
type Dispatcher struct {
	senders map[Channel]Sender
	now     func() time.Time

	mu  sync.Mutex
	log []Result
}

// NewDispatcher creates a Dispatcher with the standard channel senders.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		senders: map[Channel]Sender{
			ChannelEmail: EmailSender{},
			ChannelSMS:   SMSSender{},
			ChannelPush:  PushSender{},
		},
		now: time.Now,
	}
}

// Dispatch validates the request, routes it to the channel's sender, and
// records the outcome. The returned Result reflects delivery; the error is
// non-nil for request-level problems (unknown channel, blank fields) and for
// sender failures.
func (d *Dispatcher) Dispatch(ctx context.Context, channel, recipient, message string) (Result, error) {
	ch, ok := ParseChannel(channel)
	if !ok {
		return Result{}, errors.Wrapf(ErrUnknownChannel, "%q", channel)
	}
	if recipient == "" {
		return Result{}, ErrEmptyRecipient
	}
	if message == "" {
		return Result{}, ErrEmptyMessage
	}

	err := d.senders[ch].Send(ctx, recipient, message)

	res := Result{
		Channel:   ch,
		Recipient: recipient,
		OK:        err == nil,
		At:        d.now(),
	}
	if err != nil {
		res.Error = err.Error()
	}

	d.mu.Lock()
	d.log = append(d.log, res)
	d.mu.Unlock()

	return res, err
}

// Log returns a snapshot of all dispatch results, oldest first.
func (d *Dispatcher) Log() []Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Result, len(d.log))
	copy(out, d.log)
	return out
}

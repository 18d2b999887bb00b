package bot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// LambdaEvent is what a serverless invocation receives. If ReplyChannel is
// set the move is also published there.
type LambdaEvent struct {
	GameID           string `json:"game_id"`
	Position         string `json:"position"`
	SecondsRemaining int    `json:"seconds_remaining"`
	ReplyChannel     string `json:"reply_channel"`
}

func (evt LambdaEvent) MoveRequest() MoveRequest {
	return MoveRequest{
		GameID:           evt.GameID,
		Position:         evt.Position,
		SecondsRemaining: evt.SecondsRemaining,
	}
}

// Requester is the part of *nats.Conn that SendReply needs.
type Requester interface {
	Request(subj string, data []byte, timeout time.Duration) (*nats.Msg, error)
}

const ReplyAckTimeout = 3 * time.Second

// SendReply publishes resp on subject and waits for an acknowledgement,
// retrying with backoff.
func SendReply(ctx context.Context, r Requester, subject string, resp *MoveResponse, opts ...retry.Option) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	logger := log.With().Str("gameID", resp.GameID).Logger()
	opts = append([]retry.Option{
		retry.Context(ctx),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			logger.Err(err).Uint("n", n).Msg("did-not-receive-ack-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	}, opts...)

	return retry.Do(
		func() error {
			// The ack's contents don't matter.
			_, err := r.Request(subject, data, ReplyAckTimeout)
			return err
		},
		opts...,
	)
}

package bot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// DefaultRequestTimeout applies when RequestMove's context has no deadline.
const DefaultRequestTimeout = 30 * time.Second

type Client struct {
	// NATS connection
	nc      *nats.Conn
	subject string
}

func NewClient(nc *nats.Conn, subject string) *Client {
	return &Client{nc: nc, subject: subject}
}

// RequestMove sends a position to the bot and waits for its move.
func (c *Client) RequestMove(ctx context.Context, req MoveRequest) (*MoveResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultRequestTimeout)
		defer cancel()
	}
	res, err := c.nc.RequestWithContext(ctx, c.subject, data)
	if err != nil {
		if c.nc.LastError() != nil {
			log.Error().Err(c.nc.LastError()).Msg("nats-last-error")
		}
		log.Error().Err(err).Msg("request-failed")
		return nil, err
	}
	log.Debug().Str("res", string(res.Data)).Msg("bot-response")

	resp := &MoveResponse{}
	if err := json.Unmarshal(res.Data, resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.New("bot returned: " + resp.Error)
	}
	return resp, nil
}

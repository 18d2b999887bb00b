package main

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/bot"
	"github.com/domino14/reversi/config"
)

var cfg *config.Config
var nc *nats.Conn

const HardTimeLimit = 180 // max seconds on a player's clock

func HandleRequest(ctx context.Context, evt bot.LambdaEvent) (string, error) {
	logger := log.With().
		Str("gameID", evt.GameID).
		Logger()

	if evt.SecondsRemaining <= 0 || evt.SecondsRemaining > HardTimeLimit {
		logger.Warn().Int("seconds-remaining", evt.SecondsRemaining).Msg("clamping-timer")
		evt.SecondsRemaining = min(max(evt.SecondsRemaining, 0), HardTimeLimit)
	}

	resp := bot.NewBot(cfg).Respond(ctx, evt.MoveRequest())
	if resp.Error != "" {
		return "", errors.New(resp.Error)
	}
	// The return value matters less than the reply on the NATS channel,
	// which is what the game server listens to.
	if evt.ReplyChannel != "" {
		logger.Info().Msg("move-success-sending-via-nats")
		if err := bot.SendReply(ctx, nc, evt.ReplyChannel, resp); err != nil {
			logger.Err(err).Msg("bot-move-failed")
		}
	}
	logger.Info().Msg("exiting-fn")
	return resp.Move, nil
}

func main() {
	cfg = &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	cfg.ApplyLogLevel()

	var err error
	nc, err = nats.Connect(cfg.GetString(config.ConfigNatsURL))
	if err != nil {
		log.Fatal().AnErr("natsConnectErr", err).Msg(":(")
	}

	lambda.Start(HandleRequest)
}

package bot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/notation"
	"github.com/domino14/reversi/search"
)

// MoveRequest asks the bot to move in a position.
type MoveRequest struct {
	GameID           string `json:"game_id"`
	Position         string `json:"position"`
	SecondsRemaining int    `json:"seconds_remaining"`
}

// MoveResponse is the bot's answer. Exactly one of Move or Error is set.
type MoveResponse struct {
	GameID string `json:"game_id"`
	Move   string `json:"move,omitempty"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Score  int    `json:"score"`
	Depth  int    `json:"depth"`
	Error  string `json:"error,omitempty"`
}

type Bot struct {
	config *config.Config
	solver *search.Solver
}

func NewBot(cfg *config.Config) *Bot {
	return &Bot{config: cfg, solver: search.NewSolver(cfg)}
}

// Solver returns the solver the bot moves with.
func (bot *Bot) Solver() *search.Solver {
	return bot.solver
}

func errorResponse(gameID, message string, err error) *MoveResponse {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &MoveResponse{GameID: gameID, Error: msg}
}

// Respond picks a move for req.
func (bot *Bot) Respond(ctx context.Context, req MoveRequest) *MoveResponse {
	b, side, err := notation.Parse(req.Position)
	if err != nil {
		return errorResponse(req.GameID, "Could not parse position", err)
	}
	dec, err := bot.solver.Solve(ctx, b, side, req.SecondsRemaining)
	if err != nil {
		return errorResponse(req.GameID, "Could not choose a move", err)
	}
	log.Info().Str("gameID", req.GameID).Stringer("move", dec.Move).Msg("generated-move")
	return &MoveResponse{
		GameID: req.GameID,
		Move:   dec.Move.String(),
		Row:    int(dec.Move.Row),
		Col:    int(dec.Move.Col),
		Score:  dec.Score,
		Depth:  dec.Depth,
	}
}

// Handle decodes a JSON MoveRequest and answers it.
func (bot *Bot) Handle(ctx context.Context, data []byte) *MoveResponse {
	req := MoveRequest{}
	if err := json.Unmarshal(data, &req); err != nil {
		return errorResponse("", "Could not parse request", err)
	}
	return bot.Respond(ctx, req)
}

func (bot *Bot) handleMsg(ctx context.Context, m *nats.Msg) {
	log.Info().Int("bytes", len(m.Data)).Msg("recv")
	resp := bot.Handle(ctx, m.Data)
	data, err := json.Marshal(resp)
	if err != nil {
		// Should never happen, but the requester is still waiting.
		m.Respond([]byte(err.Error()))
		return
	}
	m.Respond(data)
}

// Main answers move requests on subject until ctx is done.
func Main(ctx context.Context, subject string, bot *Bot) error {
	nc, err := nats.Connect(bot.config.GetString(config.ConfigNatsURL))
	if err != nil {
		return err
	}
	defer nc.Close()

	_, err = nc.Subscribe(subject, func(m *nats.Msg) {
		bot.handleMsg(ctx, m)
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}
	log.Info().Str("subject", subject).Msg("listening")

	<-ctx.Done()
	log.Info().Msg("draining")
	return nc.Drain()
}

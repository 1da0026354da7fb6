package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/hetulpatel/FantasySeed/internal/kafka"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/models"
)

const brokerWait = 45 * time.Second

// MessageWriter is satisfied by *kafkago.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes fantasy events as JSON. A nil writer turns a publish into a no-op.
type Publisher struct {
	roundScores MessageWriter
	statLines   MessageWriter
}

// NewPublisher takes one writer per topic; either may be nil.
func NewPublisher(roundScores, statLines MessageWriter) *Publisher {
	return &Publisher{roundScores: roundScores, statLines: statLines}
}

// Connect waits for the brokers, makes sure both topics exist and returns a publisher
// writing to them.
func Connect(ctx context.Context, brokers []string, roundScoresTopic, statLinesTopic string) (*Publisher, error) {
	waitCtx, cancel := context.WithTimeout(ctx, brokerWait)
	defer cancel()
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		return nil, fmt.Errorf("wait for broker: %w", err)
	}
	if err := kafka.EnsureTopics(waitCtx, brokers, roundScoresTopic, statLinesTopic); err != nil {
		logging.Errorf("[queue] ensure topics warning: %v", err)
	}
	return NewPublisher(
		kafka.NewWriter(brokers, roundScoresTopic),
		kafka.NewWriter(brokers, statLinesTopic),
	), nil
}

// PublishRoundScores writes one message per manager and round.
func (p *Publisher) PublishRoundScores(ctx context.Context, events []models.RoundScoreEvent) error {
	if p == nil || p.roundScores == nil || len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal round score user=%d round=%d: %w", ev.UserID, ev.Round, err)
		}
		msgs = append(msgs, kafkago.Message{Key: []byte(RoundScoreKey(ev.UserID, ev.Round)), Value: payload})
	}
	return p.roundScores.WriteMessages(ctx, msgs...)
}

// PublishStatLines writes one message per player and round.
func (p *Publisher) PublishStatLines(ctx context.Context, events []models.StatLineEvent) error {
	if p == nil || p.statLines == nil || len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal stat line player=%d round=%d: %w", ev.PlayerID, ev.Round, err)
		}
		msgs = append(msgs, kafkago.Message{Key: []byte(StatLineKey(ev.PlayerID, ev.Round)), Value: payload})
	}
	return p.statLines.WriteMessages(ctx, msgs...)
}

// Close closes both writers.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	var firstErr error
	for _, w := range []MessageWriter{p.roundScores, p.statLines} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func RoundScoreKey(userID int64, round int) string {
	return fmt.Sprintf("user-%d-round-%d", userID, round)
}

func StatLineKey(playerID int64, round int) string {
	return fmt.Sprintf("player-%d-round-%d", playerID, round)
}

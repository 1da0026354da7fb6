package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/hetulpatel/FantasySeed/internal/kafka"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/models"
)

// Handler processes one decoded stat line.
type Handler func(context.Context, *models.StatLineEvent) error

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() error
}

// Run starts workerCount consumers on topic and blocks until ctx is done.
func Run(ctx context.Context, brokers []string, topic, group string, workerCount int, handler Handler) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			reader := kafka.NewReader(brokers, topic, group)
			defer reader.Close()
			logging.Debugf("[worker %d] consuming %s as %s", id, topic, group)
			consume(ctx, reader, handler)
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
}

func consume(ctx context.Context, reader MessageReader, handler Handler) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Errorf("worker read error: %v", err)
			continue
		}

		event, err := decode(msg)
		if err != nil {
			logging.Errorf("worker unmarshal error: %v", err)
			continue
		}

		if handler != nil {
			if err := handler(ctx, event); err != nil {
				logging.Errorf("worker handler error key=%s: %v", msg.Key, err)
			}
		}
	}
}

var statFields = []string{"points", "rebounds", "assists", "steals", "blocks", "turnovers", "team_win"}

// decode parses a flat stat-line message. Every box score field must be present.
func decode(msg kafkago.Message) (*models.StatLineEvent, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg.Value, &fields); err != nil {
		return nil, fmt.Errorf("decode %s: %w", msg.Key, err)
	}
	var missing []string
	for _, name := range statFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("decode %s: %w: %s", msg.Key, ErrMissingStats, strings.Join(missing, ","))
	}

	var event models.StatLineEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, fmt.Errorf("decode %s: %w", msg.Key, err)
	}
	return &event, nil
}

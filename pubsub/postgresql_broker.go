// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pubsub fans out change notifications between launchpad instances
// using PostgreSQL LISTEN/NOTIFY.
package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/lib/pq"
)

// envelope is the NOTIFY payload. The payload limit of postgres is 8000
// bytes, messages are expected to be small markers.
type envelope struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"senderId"`
}

type PostgreSQLBroker struct {
	db       *sql.DB
	listener *pq.Listener

	subscribers  map[shared.PubSubChannel][]chan map[string]any
	subscribeMux sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once

	// ID tags published messages so an instance can skip its own notifications.
	ID                       string
	shouldReceiveOwnMessages bool
}

var _ shared.PubSubBroker = &PostgreSQLBroker{}

func NewPostgreSQLBroker(dsn string) (*PostgreSQLBroker, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("postgres listener error", "event", ev, "err", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	return &PostgreSQLBroker{
		db:          db,
		listener:    listener,
		subscribers: make(map[shared.PubSubChannel][]chan map[string]any),
		ctx:         ctx,
		cancel:      cancel,
		ID:          uuid.New().String(),
	}, nil
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	raw, err := json.Marshal(envelope{
		ID:        uuid.New().String(),
		Channel:   message.GetChannel(),
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := b.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", string(message.GetChannel()), string(raw)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	slog.Debug("message published", "topic", message.GetChannel())
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	if _, exists := b.subscribers[topic]; !exists {
		if err := b.listener.Listen(string(topic)); err != nil {
			return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
		}
		b.subscribers[topic] = nil
		slog.Info("listening on topic", "topic", topic)
	}

	ch := make(chan map[string]any, 100)
	b.subscribers[topic] = append(b.subscribers[topic], ch)

	b.once.Do(func() {
		b.wg.Add(1)
		go b.processMessages()
	})
	return ch, nil
}

func (b *PostgreSQLBroker) processMessages() {
	defer b.wg.Done()

	ticker := time.NewTicker(90 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			return
		case notification := <-b.listener.Notify:
			// nil is sent after a reconnect, notifications may have been lost
			if notification == nil {
				b.dispatch(shared.LaunchesChanged, map[string]any{"reason": "reconnect"})
				continue
			}
			b.handleNotification(notification)
		case <-ticker.C:
			if err := b.listener.Ping(); err != nil {
				slog.Error("failed to ping listener", "err", err)
			}
		}
	}
}

func (b *PostgreSQLBroker) handleNotification(notification *pq.Notification) {
	var message envelope
	if err := json.Unmarshal([]byte(notification.Extra), &message); err != nil {
		slog.Error("failed to unmarshal message", "err", err, "payload", notification.Extra)
		return
	}
	if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
		return
	}
	b.dispatch(shared.PubSubChannel(notification.Channel), message.Payload)
}

func (b *PostgreSQLBroker) dispatch(topic shared.PubSubChannel, payload map[string]any) {
	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	for _, subscriber := range b.subscribers[topic] {
		select {
		case subscriber <- payload:
		default:
			slog.Warn("subscriber channel full, dropping message", "topic", topic)
		}
	}
}

// Close stops the listener and closes every subscriber channel.
func (b *PostgreSQLBroker) Close() error {
	b.cancel()
	b.wg.Wait()

	b.subscribeMux.Lock()
	for topic, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
	b.subscribeMux.Unlock()

	if err := b.listener.Close(); err != nil {
		return fmt.Errorf("failed to close listener: %w", err)
	}
	return b.db.Close()
}

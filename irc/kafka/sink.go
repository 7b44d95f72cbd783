// Copyright (c) 2026 ircclient authors
// released under the MIT license

// Package kafka publishes received messages to a Kafka topic as JSON.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/ergochat/ircclient/irc/logger"
	"github.com/ergochat/ircclient/irc/message"
)

const (
	defaultQueueSize = 1024
)

var (
	ErrSinkClosed = errors.New("kafka sink is closed")
	ErrQueueFull  = errors.New("kafka sink queue is full")
)

// Config controls publishing of received messages to Kafka.
type Config struct {
	Enabled      bool
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration `yaml:"batch-timeout"`
	QueueSize    int           `yaml:"queue-size"`
}

// Event is the JSON form of a published message.
type Event struct {
	Time    time.Time `json:"time"`
	Network string    `json:"network,omitempty"`
	Origin  string    `json:"origin,omitempty"`
	Nick    string    `json:"nick,omitempty"`
	Command string    `json:"command"`
	Reply   string    `json:"reply,omitempty"`
	Params  []string  `json:"params"`
}

// NewEvent describes m as received at the given time.
func NewEvent(m *message.Message, network string, received time.Time) Event {
	event := Event{
		Time:    received.UTC(),
		Network: network,
		Origin:  m.Origin,
		Nick:    m.Nick(),
		Command: m.Kind.Token(),
		Params:  m.Params,
	}
	if m.Kind.Numeric {
		event.Reply = m.Kind.Reply.Name()
	}
	if event.Params == nil {
		event.Params = []string{}
	}
	return event
}

// Key partitions events by their first parameter, usually the target.
func (event *Event) Key() string {
	if len(event.Params) == 0 {
		return ""
	}
	return event.Params[0]
}

// Marshal returns the JSON encoding of the event.
func (event *Event) Marshal() ([]byte, error) {
	return json.Marshal(event)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Sink queues events and writes them to Kafka from a single goroutine, so
// a slow broker never blocks the read loop.
type Sink struct {
	writer  messageWriter
	logger  *logger.Manager
	network string
	events  chan Event
	done    chan struct{}
	now     func() time.Time
}

// NewWriter returns a kafka-go writer for the configured brokers and topic.
func NewWriter(config Config) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: config.BatchTimeout,
	}
}

// NewSink returns a sink publishing to the configured topic. Start it with Run.
func NewSink(config Config, network string, logger *logger.Manager) *Sink {
	return newSink(NewWriter(config), config.QueueSize, network, logger)
}

func newSink(writer messageWriter, queueSize int, network string, logger *logger.Manager) *Sink {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Sink{
		writer:  writer,
		logger:  logger,
		network: network,
		events:  make(chan Event, queueSize),
		done:    make(chan struct{}),
		now:     time.Now,
	}
}

// Publish queues m for publishing. It never blocks; when the queue is
// full the message is dropped and ErrQueueFull returned.
func (sink *Sink) Publish(m *message.Message) error {
	select {
	case <-sink.done:
		return ErrSinkClosed
	default:
	}
	select {
	case sink.events <- NewEvent(m, sink.network, sink.now()):
		return nil
	default:
		sink.logger.Warning("kafka", "Queue full, dropping", m.Kind.String())
		return ErrQueueFull
	}
}

// Run writes queued events until ctx is done, then flushes what is left
// and closes the writer.
func (sink *Sink) Run(ctx context.Context) error {
	defer close(sink.done)
	for {
		select {
		case <-ctx.Done():
			return sink.drain()
		case event := <-sink.events:
			if ctx.Err() != nil {
				return sink.drain(event)
			}
			sink.write(ctx, event)
		}
	}
}

func (sink *Sink) write(ctx context.Context, event Event) {
	value, err := event.Marshal()
	if err != nil {
		sink.logger.Error("kafka", "Could not marshal event", err.Error())
		return
	}
	msg := kafkago.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "command", Value: []byte(event.Command)},
		},
	}
	if err := sink.writer.WriteMessages(ctx, msg); err != nil {
		sink.logger.Error("kafka", "Could not write event", err.Error())
	}
}

// drain writes pending and everything still queued, with a bounded
// grace period.
func (sink *Sink) drain(pending ...Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, event := range pending {
		sink.write(ctx, event)
	}
	for {
		select {
		case event := <-sink.events:
			sink.write(ctx, event)
		default:
			return sink.writer.Close()
		}
	}
}

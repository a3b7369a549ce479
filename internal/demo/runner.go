// Package demo exercises the piece model end to end. Each scenario runs
// against a fresh registry and reports the first thing that does not behave
// as advertised.
package demo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tecu23/chess-pieces/pkg/events"
	"github.com/tecu23/chess-pieces/pkg/registry"
)

// Runner executes the demonstration scenarios.
type Runner struct {
	logger    *zap.Logger
	publisher *events.Publisher
	out       io.Writer
}

// NewRunner wires a runner to the given logger. Every registry event is
// echoed at debug level so piece lifecycles stay visible in debug runs.
func NewRunner(logger *zap.Logger) *Runner {
	publisher := events.NewPublisher()
	publisher.SubscribeAll(func(event events.Event) {
		logger.Debug("piece event",
			zap.String("type", string(event.Type)),
			zap.String("piece_id", event.PieceID),
			zap.Any("payload", event.Payload))
	})

	return &Runner{
		logger:    logger,
		publisher: publisher,
		out:       os.Stdout,
	}
}

type scenario struct {
	name string
	run  func(*registry.Registry) error
}

func (r *Runner) scenarios() []scenario {
	return []scenario{
		{"creation", r.creation},
		{"movement", r.movement},
		{"polymorphism", r.polymorphism},
		{"copying", r.copying},
		{"counters", r.counters},
		{"queen", r.queen},
		{"miniboard", r.miniBoard},
	}
}

// Names lists the scenario names in execution order.
func (r *Runner) Names() []string {
	all := r.scenarios()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.name)
	}
	return names
}

// RunAll executes every scenario in order, stopping at the first failure.
func (r *Runner) RunAll() error {
	for _, s := range r.scenarios() {
		if err := r.runOne(s); err != nil {
			return err
		}
	}
	return nil
}

// RunNamed executes a single scenario, matched case-insensitively.
func (r *Runner) RunNamed(name string) error {
	for _, s := range r.scenarios() {
		if strings.EqualFold(s.name, name) {
			return r.runOne(s)
		}
	}
	return fmt.Errorf("unknown scenario %q", name)
}

func (r *Runner) runOne(s scenario) error {
	r.logger.Info("scenario started", zap.String("scenario", s.name))

	reg := registry.New(r.logger, r.publisher)
	if err := s.run(reg); err != nil {
		return fmt.Errorf("scenario %s: %w", s.name, err)
	}

	r.logger.Info("scenario complete", zap.String("scenario", s.name))
	return nil
}

package results

import (
	"context"
	"errors"

	"percolate/internal/model"
)

// Sink receives the result of every completed run of a sweep.
type Sink interface {
	Record(ctx context.Context, res model.Result) error
	Close() error
}

// Multi forwards every result to each of its sinks in order.
type Multi []Sink

// Record stops at the first failing sink.
func (m Multi) Record(ctx context.Context, res model.Result) error {
	for _, s := range m {
		if err := s.Record(ctx, res); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard is a Sink that drops every result.
type Discard struct{}

func (Discard) Record(context.Context, model.Result) error { return nil }
func (Discard) Close() error                               { return nil }

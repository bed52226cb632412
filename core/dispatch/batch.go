package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/josephlewis42/batchsh/core/fetch"
)

// batch is one SERIAL or PARALLEL directive being processed.
type batch struct {
	engine    *Engine
	id        string
	directive string
	url       string
	stream    *fetch.Stream
	count     int
}

func (e *Engine) openBatch(ctx context.Context, directive, url string) (*batch, error) {
	b := &batch{
		engine:    e,
		id:        uuid.NewString(),
		directive: directive,
		url:       url,
	}

	endpoint := fetch.ParseEndpoint(url)
	b.tracef("%s %s (host %q, path %q)", directive, url, endpoint.Host, endpoint.Path)

	stream, err := e.Fetcher.Open(ctx, endpoint)
	if err != nil {
		return nil, b.wrap(err)
	}
	if err := stream.SkipHeaders(); err != nil {
		stream.Close()
		return nil, b.wrap(err)
	}

	b.stream = stream
	return b, nil
}

func (b *batch) tracef(format string, args ...interface{}) {
	if b.engine.Verbose {
		b.engine.Log.Printf("batch %s: "+format, append([]interface{}{b.id}, args...)...)
	}
}

func (b *batch) wrap(err error) error {
	return fmt.Errorf("%s %s: %w", b.directive, b.url, err)
}

// Close closes the connection, it may be called more than once.
func (b *batch) Close() error {
	return b.stream.Close()
}

// finish reports read errors that cut the batch short.
func (b *batch) finish() error {
	b.tracef("done, %d commands", b.count)
	if err := b.stream.Err(); err != nil {
		return b.wrap(err)
	}
	return nil
}

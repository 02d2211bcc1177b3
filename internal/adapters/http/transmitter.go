package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/internal/ports"
	"github.com/bft-labs/concordlog/pkg/log"
)

// Config configures a Transmitter.
type Config struct {
	// Endpoint is the full logging URL, including the key query parameter.
	Endpoint string

	// Timeout bounds each request. Zero means no per-request deadline.
	Timeout time.Duration

	// Gzip compresses request bodies and sets Content-Encoding: gzip.
	Gzip bool
}

// Transmitter implements ports.Transmitter with an HTTP POST per batch.
//
// Send serializes the batch and returns; the request runs on its own
// goroutine and its outcome only reaches the logger and the SendObserver.
type Transmitter struct {
	config   Config
	client   ports.HTTPClient
	logger   log.Logger
	observer ports.SendObserver

	wg sync.WaitGroup
}

// NewTransmitter creates a new HTTP transmitter.
// logger and observer may be nil.
func NewTransmitter(config Config, client ports.HTTPClient, logger log.Logger, observer ports.SendObserver) *Transmitter {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Transmitter{
		config:   config,
		client:   client,
		logger:   logger,
		observer: observer,
	}
}

// Send transmits a batch, fire-and-forget.
func (t *Transmitter) Send(batch *domain.OutboundBatch) {
	if batch == nil || batch.Empty() {
		return
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		t.fail(fmt.Errorf("marshal batch: %w", err), batch.Size())
		return
	}

	count := batch.Size()
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				t.fail(fmt.Errorf("send panicked: %v", r), count)
			}
		}()
		t.post(payload, count)
	}()
}

// Wait blocks until every in-flight send has finished or ctx is done.
// Hosts call it before exiting so a final flush is not cut off.
func (t *Transmitter) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		t.logger.Warn("gave up waiting for in-flight sends", log.Err(ctx.Err()))
		return ctx.Err()
	}
}

func (t *Transmitter) post(payload []byte, count int) {
	ctx := context.Background()
	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	body := payload
	if t.config.Gzip {
		compressed, err := gzipBytes(payload)
		if err != nil {
			t.fail(fmt.Errorf("compress batch: %w", err), count)
			return
		}
		body = compressed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		t.fail(fmt.Errorf("create request: %w", err), count)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if t.config.Gzip {
		req.Header.Set("Content-Encoding", "gzip")
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.fail(fmt.Errorf("send request: %w", err), count)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		t.fail(fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody)), count)
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	duration := time.Since(start)
	t.logger.Debug("sent batch",
		log.Int("events", count),
		log.Int("bytes", len(body)),
		log.Duration("duration", duration),
	)
	if t.observer != nil {
		t.observer.OnSendSuccess(count, len(body), duration)
	}
}

func (t *Transmitter) fail(err error, count int) {
	t.logger.Warn("dropping batch", log.Int("events", count), log.Err(err))
	if t.observer != nil {
		t.observer.OnSendError(err, count)
	}
}

func gzipBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(p); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ ports.Transmitter = (*Transmitter)(nil)

// Package analytics is an embeddable client for the Concord logging
// endpoint.
//
// A CloudAnalytics value normalizes application events and survey
// responses into wire events, buffers them, and posts them as batches.
// Delivery is best effort: a batch that fails to send is logged and
// dropped, never retried.
//
// # Basic Usage
//
//	a, err := analytics.New("my-console", "api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a.LogEvent(analytics.CloudEvent{Type: "ui", Name: "open"})
//
// A new client starts in immediate mode: every logged event is posted
// right away in its own batch.
//
// # Batch Mode
//
// EnableBatchMode switches to batched delivery for the rest of the
// client's life. StartBatching arms the flush timer and any flush
// triggers; StopBatching disarms them and flushes what is left:
//
//	a.EnableBatchMode(5 * time.Second)
//	a.StartBatching()
//	defer a.Close(context.Background())
//
// The interval is clamped to [1s, 60s]; zero selects 10s.
//
// # Flush Triggers
//
// Triggers flush early when the host is about to go away. WithExitContext
// installs the usual pair for a server process: a flush when the given
// context is cancelled and one on SIGHUP. Embedders with their own
// shutdown hooks can use NewHooks and WithTriggers(NewHookTrigger(h)),
// then call h.Emit(EventBeforeUnload).
package analytics

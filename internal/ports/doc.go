// Package ports defines the interfaces (ports) that connect the batching core
// to infrastructure adapters.
//
// Ports are the boundaries between the core and the outside world. They
// define what the core needs from external systems without specifying how
// those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Transmitter]: Sends one outbound batch, fire-and-forget
//   - [FlushTrigger]: A lifecycle condition that forces a flush
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [FlushObserver], [SendObserver]: Optional hooks for metrics
//
// # Usage
//
// The core (internal/app) depends only on these interfaces. Adapters
// (internal/adapters) implement them with net/http, os/signal and
// Prometheus.
package ports

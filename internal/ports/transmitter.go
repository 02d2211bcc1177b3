package ports

import "github.com/bft-labs/concordlog/internal/domain"

// Transmitter sends outbound batches to the logging endpoint.
//
// Send is fire-and-forget: it must return promptly without waiting for the
// network and never reports failure to its caller. Implementations swallow
// send errors (logging or observing them as they see fit).
type Transmitter interface {
	Send(batch *domain.OutboundBatch)
}

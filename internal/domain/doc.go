// Package domain contains the core entities and wire types for concordlog.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (HTTP, signals, logging) and holds only the
// shapes of the data flowing through the logger.
//
// # Entities
//
//   - [CloudEvent]: An application event as supplied by callers
//   - [SurveyResponse]: A HaTS survey response as supplied by callers
//   - [ClientInfo]: Information about the device the logger runs on
//   - [LogEvent]: A normalized, serialized event awaiting transmission
//   - [OutboundBatch]: The envelope handed to a transmitter on each flush
//
// # Wire Types
//
// [ConcordEvent], [HatsResponse] and [FirelogClientInfo] mirror the JSON
// accepted by the Firelog legacy logging endpoint. Field order in these
// structs is the order fields appear in the serialized payload.
package domain

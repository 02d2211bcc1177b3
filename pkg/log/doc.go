// Package log provides the logging abstraction used across concordlog.
//
// Components log through the Logger interface so the batching core never
// depends on a concrete logging library. A zerolog-backed implementation is
// provided, plus a no-op logger for embedding and tests.
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//
// Or, with a level and a rotating log file:
//
//	logger, err := log.New(log.Options{Level: "debug", File: "/var/log/concordlog.log"})
//
// # Custom Loggers
//
// Implement Logger to route concordlog output into an existing logging
// setup:
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log

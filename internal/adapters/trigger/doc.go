// Package trigger provides ports.FlushTrigger implementations.
//
// A trigger is armed with a flush callback when batching starts and
// disarmed when it stops. Arm and Disarm are idempotent; arming an armed
// trigger replaces nothing and registers nothing twice.
package trigger

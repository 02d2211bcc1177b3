package ports

// FlushTrigger is a condition, other than the flush timer, that should cause
// a flush while batching is active (process signals, host shutdown hooks).
type FlushTrigger interface {
	// Name identifies the trigger in logs and metrics.
	Name() string

	// Arm registers flush to be invoked whenever the trigger's condition
	// occurs. Exactly one registration is made per underlying signal or hook;
	// arming an already armed trigger is a no-op.
	Arm(flush func())

	// Disarm removes every registration made by Arm. Disarming a trigger
	// that is not armed is a no-op.
	Disarm()
}

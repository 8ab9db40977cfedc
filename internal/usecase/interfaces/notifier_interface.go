package interfaces

// INotifier is the user-visible notification surface. All methods are
// best-effort and must never fail the caller.
//
// Critical additionally schedules a forced session reload: the system's only
// recovery path when local state is considered unrecoverable.
type INotifier interface {
	Info(message, details string)
	Warning(message, details string)
	Error(message, details string)
	Critical(message, details string)
}

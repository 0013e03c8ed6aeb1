package ports

// Notifier surfaces user-visible notices. Calls are fire-and-forget: no
// return values, and implementations must never let a rendering problem
// reach the caller. Cache reconciliation may not depend on a notice
// getting through.
type Notifier interface {
	Success(message string)
	// Info carries soft outcomes that are neither success nor failure, such
	// as "already bookmarked".
	Info(message string)
	Failure(message string, detail string)
}

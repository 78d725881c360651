// Package workers starts the client's background jobs: restoring the
// session and watching the backend session for expiry.
package workers

// Worker is one background job. Run must not block; long work belongs in a
// goroutine the worker starts itself.
type Worker interface {
	Run()
}

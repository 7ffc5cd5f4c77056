package srv

import "context"

// cleanupService lets a plain teardown func (db handle, redis client)
// ride the service lifecycle: nothing to start, one thing to close.
type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

// NewCleanup wraps fn as a shutdown-only Service.
func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}

package clone

import "context"

// Submitter defines the request side of the cloning service.
// The sequence number is for correlation only and is never inspected.
type Submitter interface {
	Submit(ctx context.Context, url string, seq uint64) (string, error)
}

// HealthChecker probes whether the service is up
type HealthChecker interface {
	Health(ctx context.Context) error
}

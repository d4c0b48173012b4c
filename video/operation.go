// Package video drives asynchronous video generation: submitting a Veo
// job, polling the resulting long-running operation at a fixed interval,
// and materializing the finished asset as a data URI.
package video

import "context"

// Operation is the closed projection of a remote long-running video job.
// Remote response shapes are mapped into it at the client boundary so the
// rest of the pipeline never touches provider types.
type Operation struct {
	Name         string
	Done         bool
	ErrorMessage string // set when the service reports an explicit failure
	MediaURL     string // delivery URL of the produced video
	MediaBytes   []byte // inline bytes when the backend returns them directly

	// Provider-specific handle needed to re-query status.
	raw any
}

// HasMedia reports whether the operation produced a usable asset.
func (o Operation) HasMedia() bool {
	return o.MediaURL != "" || len(o.MediaBytes) > 0
}

// Submitter starts a video-generation job and returns its operation handle.
type Submitter interface {
	Submit(ctx context.Context, prompt string, cfg Config, referenceImage string) (Operation, error)
}

// StatusChecker re-queries the status of an in-flight operation.
type StatusChecker interface {
	CheckOperation(ctx context.Context, op Operation) (Operation, error)
}

// Config is the structured configuration submitted with a video prompt.
type Config struct {
	DurationSeconds int
	AspectRatio     string
	NegativePrompt  string
}

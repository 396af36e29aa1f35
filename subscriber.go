package sitedraft

import "context"

// Submission is one prompt, the response it produced, and the extraction of
// that response. Raw is the model output as received; Response is Raw after
// CleanResponse.
type Submission struct {
	ID       string            `json:"id"`
	Prompt   string            `json:"prompt"`
	Raw      string            `json:"raw"`
	Response string            `json:"response"`
	Result   *ExtractionResult `json:"result"`
}

// Subscriber is notified after a response has been extracted.
// Failures are reported to the caller but never undo the extraction.
type Subscriber interface {
	Notify(ctx context.Context, s *Submission) error
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(ctx context.Context, s *Submission) error

// Notify calls f(ctx, s).
func (f SubscriberFunc) Notify(ctx context.Context, s *Submission) error {
	return f(ctx, s)
}

// Submitter turns a prompt into a published submission.
type Submitter interface {
	// Submit generates a response for prompt, extracts it and notifies
	// subscribers. Returns EINVALID if the prompt is blank.
	Submit(ctx context.Context, prompt string) (*Submission, error)
}

package audit

import "time"

// Result classifies how a pipeline request ended.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

// Record is one pipeline request outcome. Failed requests carry a zero
// OptimizedSize and the error text.
type Record struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Credential    string    `json:"credential,omitempty"`
	Filename      string    `json:"filename"`
	OriginalSize  int       `json:"originalSize"`
	OptimizedSize int       `json:"optimizedSize"`
	Cached        bool      `json:"cached"`
	Sanitized     bool      `json:"sanitized"`
	Result        Result    `json:"result"`
	Error         string    `json:"error,omitempty"`
}

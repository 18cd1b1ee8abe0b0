package optimize

import "fmt"

// DefaultFilename is reported when the caller omits one.
const DefaultFilename = "untitled.svg"

// Request is one document submitted to the pipeline. CamelCase and Sanitize
// are tri-state so "not specified" can fall back to the configured defaults.
type Request struct {
	Content   string `json:"content"`
	Filename  string `json:"filename,omitempty"`
	CamelCase *bool  `json:"camelCase,omitempty"`
	Sanitize  *bool  `json:"sanitize,omitempty"`
	MaxSize   int    `json:"maxSize,omitempty"`

	// Credential identifies the caller for audit purposes only; admission
	// control happens in front of the pipeline, not inside it.
	Credential string `json:"-"`
}

func (r Request) camelCase() bool {
	return r.CamelCase == nil || *r.CamelCase
}

func (r Request) sanitize(def bool) bool {
	if r.Sanitize == nil {
		return def
	}
	return *r.Sanitize
}

func (r Request) filename() string {
	if r.Filename == "" {
		return DefaultFilename
	}
	return r.Filename
}

// Optimization summarizes the size effect of one pipeline run.
type Optimization struct {
	OriginalSize  int    `json:"originalSize"`
	OptimizedSize int    `json:"optimizedSize"`
	SavedBytes    int    `json:"savedBytes"`
	SavedPercent  string `json:"savedPercent"`
	Ratio         string `json:"ratio"`
}

func newOptimization(originalSize, optimizedSize int) Optimization {
	saved := originalSize - optimizedSize
	opt := Optimization{
		OriginalSize:  originalSize,
		OptimizedSize: optimizedSize,
		SavedBytes:    saved,
		SavedPercent:  "0.0%",
		Ratio:         "1.000",
	}
	if originalSize > 0 {
		opt.SavedPercent = fmt.Sprintf("%.1f%%", float64(saved)/float64(originalSize)*100)
		opt.Ratio = fmt.Sprintf("%.3f", float64(optimizedSize)/float64(originalSize))
	}
	return opt
}

// Response is the success shape shared by all entry points.
type Response struct {
	Success          bool         `json:"success"`
	Filename         string       `json:"filename"`
	Optimization     Optimization `json:"optimization"`
	CamelCaseApplied bool         `json:"camelCaseApplied"`
	Sanitized        bool         `json:"sanitized"`
	SecurityWarnings []string     `json:"securityWarnings,omitempty"`
	Result           string       `json:"result"`

	// Cached reports whether the result came from the cache. Internal
	// bookkeeping, not part of the response contract.
	Cached bool `json:"-"`
}

// ErrorResponse is the failure shape shared by all entry points.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

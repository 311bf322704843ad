package server

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// WebLogger implements core.Logger by tagging every message with its render ID
// before handing it to the server logger
type WebLogger struct {
	renderID string
	next     core.Logger
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, next core.Logger) core.Logger {
	if next == nil {
		next = core.NopLogger{}
	}
	return &WebLogger{
		renderID: renderID,
		next:     next,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	wl.next.Printf("[%s] %s", wl.renderID, fmt.Sprintf(format, args...))
}

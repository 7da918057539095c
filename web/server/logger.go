package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RequestLogger implements core.Logger by tagging messages with a render ID
type RequestLogger struct {
	renderID string
	logger   *log.Logger
}

// NewRequestLogger creates a logger for a specific render
func NewRequestLogger(renderID string, logger *log.Logger) core.Logger {
	if logger == nil {
		logger = log.Default()
	}
	return &RequestLogger{
		renderID: renderID,
		logger:   logger,
	}
}

// Printf implements core.Logger interface
func (rl *RequestLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	rl.logger.Printf("[%s] %s", rl.renderID, message)
}

// Package workflow holds the client-side state machines behind the
// Generate and History views. Network calls are returned as tea.Cmds so
// the caller decides where they run; their results come back as messages
// tagged with a request token and are applied only if still current.
package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/abhisek/wikiquiz/internal/client"
)

// Options configures how workflow commands reach the service.
type Options struct {
	// Context is the parent of every request context. Default: Background.
	Context context.Context

	// Timeout bounds a single request. Zero means no limit.
	Timeout time.Duration
}

func (o Options) requestContext() (context.Context, context.CancelFunc) {
	parent := o.Context
	if parent == nil {
		parent = context.Background()
	}
	if o.Timeout > 0 {
		return context.WithTimeout(parent, o.Timeout)
	}
	return context.WithCancel(parent)
}

// failureMessage is the text shown for err, or fallback when err carries
// no message. A ServiceError counts only its service-provided Message.
func failureMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var se *client.ServiceError
	if errors.As(err, &se) {
		if strings.TrimSpace(se.Message) == "" {
			return fallback
		}
		return se.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return err.Error()
	}
	return fallback
}

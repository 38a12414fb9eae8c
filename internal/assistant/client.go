package assistant

import (
	"context"
	"errors"
)

// ErrEmptyReply marks a provider response that carried no usable text.
var ErrEmptyReply = errors.New("provider returned an empty reply")

// Session is a live provider conversation. The provider keeps its own
// history; Send appends the user turn and returns the model's reply.
type Session interface {
	Send(ctx context.Context, message string) (string, error)
}

// Client creates provider sessions. The session is created lazily on the
// first user message so that an unused conversation costs nothing.
type Client interface {
	CreateSession(ctx context.Context) (Session, error)
}

package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

// Fallback replies shown in place of a model response. Provider failures
// never surface to the user as errors; the transcript absorbs them.
const (
	fallbackEmptyReply  = "Mainframe error."
	fallbackSendFailure = "Error processing request."
)

// Manager serializes the coach conversation. At most one user message is in
// flight at a time; a second post while busy is rejected rather than queued.
type Manager struct {
	client Client
	logg   *logger.Logger
	now    func() time.Time

	mu   sync.Mutex
	sess Session
	conv []Message
	busy bool
	idle chan struct{}
}

// ManagerParams wires assistant dependencies.
type ManagerParams struct {
	Client Client
	Logger *logger.Logger
}

// NewManager returns a conversation seeded with the welcome message.
func NewManager(params ManagerParams) (*Manager, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "assistant client required")
	}
	m := &Manager{
		client: params.Client,
		logg:   params.Logger,
		now:    time.Now,
	}
	m.conv = []Message{welcomeMessage(m.now())}
	return m, nil
}

// Messages returns a copy of the transcript in order.
func (m *Manager) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.conv))
	copy(out, m.conv)
	return out
}

// Busy reports whether a reply is currently in flight.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

// PostUserMessage appends the user turn and dispatches it to the provider.
// The user message lands in the transcript before any network work happens,
// so it survives a provider failure. Returns the appended message; the reply
// arrives asynchronously.
func (m *Manager) PostUserMessage(ctx context.Context, text string) (Message, error) {
	if text = strings.TrimSpace(text); text == "" {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "message text required")
	}

	m.mu.Lock()
	if m.busy {
		m.mu.Unlock()
		return Message{}, pkgerrors.New(pkgerrors.CodeConflict, "a reply is already in flight")
	}

	msg := newMessage(enums.ChatRoleUser, text, m.now())
	m.conv = append(m.conv, msg)
	m.busy = true
	m.idle = make(chan struct{})
	m.mu.Unlock()

	// The reply outlives the triggering request, so it must not inherit
	// its cancellation.
	go m.deliver(context.WithoutCancel(ctx), text)

	return msg, nil
}

func (m *Manager) deliver(ctx context.Context, text string) {
	reply, err := m.send(ctx, text)
	if err != nil {
		if m.logg != nil {
			m.logg.Error(ctx, "assistant reply failed", err)
		}
		if errors.Is(err, ErrEmptyReply) {
			reply = fallbackEmptyReply
		} else {
			reply = fallbackSendFailure
		}
	}

	m.mu.Lock()
	m.conv = append(m.conv, newMessage(enums.ChatRoleAssistant, reply, m.now()))
	m.busy = false
	close(m.idle)
	m.mu.Unlock()
}

// send lazily creates the provider session on first use and forwards the
// user turn. A failed session create leaves sess nil so the next post
// retries it.
func (m *Manager) send(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	sess := m.sess
	m.mu.Unlock()

	if sess == nil {
		created, err := m.client.CreateSession(ctx)
		if err != nil {
			return "", err
		}
		m.mu.Lock()
		m.sess = created
		m.mu.Unlock()
		sess = created
	}

	return sess.Send(ctx, text)
}

// Reset discards the transcript and provider session, reseeding the welcome
// message. Rejected while a reply is in flight.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy {
		return pkgerrors.New(pkgerrors.CodeConflict, "a reply is already in flight")
	}

	m.sess = nil
	m.conv = []Message{welcomeMessage(m.now())}
	if m.logg != nil {
		m.logg.Info(ctx, "conversation reset")
	}
	return nil
}

// AwaitIdle blocks until the in-flight reply, if any, has landed.
func (m *Manager) AwaitIdle(ctx context.Context) error {
	m.mu.Lock()
	if !m.busy {
		m.mu.Unlock()
		return nil
	}
	idle := m.idle
	m.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "waiting for assistant reply")
	}
}

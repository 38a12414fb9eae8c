package session

import (
	"strings"
	"sync"
	"time"

	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
)

// User is the in-memory identity and entitlement record for the signed-in
// athlete. It lives for the process session and is replaced wholesale on
// login/logout.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	PictureURL string     `json:"picture"`
	JoinedDate time.Time  `json:"joinedDate"`

	ProfileComplete bool       `json:"profileComplete"`
	Tier            enums.Tier `json:"tier"`

	Phone         string    `json:"phone,omitempty"`
	Age           int       `json:"age,omitempty"`
	Sex           enums.Sex `json:"sex,omitempty"`
	PhoneVerified bool      `json:"phoneVerified"`
}

// Identity is the decoded credential payload used to create a User.
type Identity struct {
	Subject    string
	Name       string
	Email      string
	PictureURL string
}

// Snapshot is a point-in-time copy of the session handed to the gatekeeper.
// The embedded User is a copy; mutating it does not touch the store.
type Snapshot struct {
	User          *User
	RequestedView enums.View
}

// Store owns the single current session. All mutation goes through the
// named transition methods below; each is atomic with respect to reads.
type Store struct {
	mu            sync.RWMutex
	user          *User
	requestedView enums.View
}

// NewStore returns an anonymous session pointed at the home view.
func NewStore() *Store {
	return &Store{requestedView: enums.ViewHome}
}

// Login replaces the current user with a fresh, incomplete profile built
// from the decoded identity. A prior session, if any, is discarded.
func (s *Store) Login(id Identity, now time.Time) (*User, error) {
	if strings.TrimSpace(id.Subject) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "identity subject required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &User{
		ID:         id.Subject,
		Name:       id.Name,
		Email:      id.Email,
		PictureURL: id.PictureURL,
		JoinedDate: now.UTC(),
		Tier:       enums.TierStandard,
	}
	return copyUser(s.user), nil
}

// Logout discards the current user and returns navigation to home.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.requestedView = enums.ViewHome
}

// CompleteProfileParams carries the validated profile-completion fields.
type CompleteProfileParams struct {
	Name  string
	Phone string
	Age   int
	Sex   enums.Sex
}

// CompleteProfile applies the onboarding submission. The transition is only
// legal from an authenticated, incomplete profile; the whole update is
// applied atomically or not at all.
func (s *Store) CompleteProfile(params CompleteProfileParams) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if s.user.ProfileComplete {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "profile already complete")
	}

	s.user.Name = params.Name
	s.user.Phone = params.Phone
	s.user.Age = params.Age
	s.user.Sex = params.Sex
	s.user.ProfileComplete = true
	s.user.PhoneVerified = false

	return copyUser(s.user), nil
}

// UpgradeTier moves a complete profile onto a paid tier.
func (s *Store) UpgradeTier(tier enums.Tier) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if !s.user.ProfileComplete {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "profile completion required before upgrading")
	}
	if !tier.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid tier")
	}

	s.user.Tier = tier
	return copyUser(s.user), nil
}

// SetPhoneVerified marks the session phone as verified. Legal only once a
// phone number exists on the profile.
func (s *Store) SetPhoneVerified() (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if strings.TrimSpace(s.user.Phone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no phone number on profile")
	}

	s.user.PhoneVerified = true
	return copyUser(s.user), nil
}

// RequestView records the screen the UI asked for.
func (s *Store) RequestView(view enums.View) error {
	if !view.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid view")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestedView = view
	return nil
}

// Snapshot returns an isolated copy of the current session.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		User:          copyUser(s.user),
		RequestedView: s.requestedView,
	}
}

func copyUser(u *User) *User {
	if u == nil {
		return nil
	}
	dup := *u
	return &dup
}

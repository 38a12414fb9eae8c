package session

import (
	"testing"
	"time"

	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
)

func testIdentity() Identity {
	return Identity{
		Subject:    "google-sub-42",
		Name:       "Nexus Athlete",
		Email:      "athlete@nexus.fit",
		PictureURL: "https://i.pravatar.cc/150?u=nexus",
	}
}

func TestLoginCreatesIncompleteStandardUser(t *testing.T) {
	store := NewStore()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	user, err := store.Login(testIdentity(), now)
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if user.ProfileComplete {
		t.Fatal("fresh user must have incomplete profile")
	}
	if user.Tier != enums.TierStandard {
		t.Fatalf("fresh user must start standard, got %s", user.Tier)
	}
	if user.PhoneVerified {
		t.Fatal("fresh user must not be phone verified")
	}
	if !user.JoinedDate.Equal(now) {
		t.Fatalf("joined date not set, got %v", user.JoinedDate)
	}
}

func TestLoginRejectsEmptySubject(t *testing.T) {
	store := NewStore()
	if _, err := store.Login(Identity{}, time.Now()); err == nil {
		t.Fatal("expected error for empty subject")
	}
	if snap := store.Snapshot(); snap.User != nil {
		t.Fatal("failed login must not mutate the session")
	}
}

func TestCompleteProfileTransition(t *testing.T) {
	store := NewStore()
	if _, err := store.CompleteProfile(CompleteProfileParams{}); pkgerrors.As(err).Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized without session, got %v", err)
	}

	store.Login(testIdentity(), time.Now())
	user, err := store.CompleteProfile(CompleteProfileParams{
		Name:  "A",
		Phone: "555-0100",
		Age:   30,
		Sex:   enums.SexMale,
	})
	if err != nil {
		t.Fatalf("unexpected complete error: %v", err)
	}
	if !user.ProfileComplete || user.Phone != "555-0100" || user.Age != 30 {
		t.Fatalf("transition not applied: %+v", user)
	}
	if user.PhoneVerified {
		t.Fatal("completion must initialize phoneVerified=false")
	}

	if _, err := store.CompleteProfile(CompleteProfileParams{Name: "B", Phone: "x", Age: 1, Sex: enums.SexOther}); pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict on double completion, got %v", err)
	}
}

func TestUpgradeTierRequiresCompleteProfile(t *testing.T) {
	store := NewStore()
	store.Login(testIdentity(), time.Now())

	if _, err := store.UpgradeTier(enums.TierPro); pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict before completion, got %v", err)
	}

	store.CompleteProfile(CompleteProfileParams{Name: "A", Phone: "555-0100", Age: 30, Sex: enums.SexMale})
	user, err := store.UpgradeTier(enums.TierPro)
	if err != nil {
		t.Fatalf("unexpected upgrade error: %v", err)
	}
	if user.Tier != enums.TierPro {
		t.Fatalf("expected pro tier, got %s", user.Tier)
	}
}

func TestSetPhoneVerifiedRequiresPhone(t *testing.T) {
	store := NewStore()
	store.Login(testIdentity(), time.Now())

	if _, err := store.SetPhoneVerified(); pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict without phone, got %v", err)
	}

	store.CompleteProfile(CompleteProfileParams{Name: "A", Phone: "555-0100", Age: 30, Sex: enums.SexMale})
	user, err := store.SetPhoneVerified()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !user.PhoneVerified {
		t.Fatal("phone verification flag not set")
	}
}

func TestLogoutDiscardsUserAndResetsView(t *testing.T) {
	store := NewStore()
	store.Login(testIdentity(), time.Now())
	store.RequestView(enums.ViewDashboard)

	store.Logout()

	snap := store.Snapshot()
	if snap.User != nil {
		t.Fatal("logout must discard the user")
	}
	if snap.RequestedView != enums.ViewHome {
		t.Fatalf("logout must reset view to home, got %s", snap.RequestedView)
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	store := NewStore()
	store.Login(testIdentity(), time.Now())

	snap := store.Snapshot()
	snap.User.Name = "Tampered"

	if got := store.Snapshot().User.Name; got != "Nexus Athlete" {
		t.Fatalf("snapshot mutation leaked into store: %q", got)
	}
}

func TestRequestViewRejectsUnknown(t *testing.T) {
	store := NewStore()
	if err := store.RequestView(enums.View("garage")); err == nil {
		t.Fatal("expected invalid view error")
	}
}

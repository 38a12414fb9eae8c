package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitnexus/fitnexus-backend/internal/identity"
	"github.com/fitnexus/fitnexus-backend/internal/profile/otpstore"
	"github.com/fitnexus/fitnexus-backend/internal/session"
	"github.com/fitnexus/fitnexus-backend/pkg/config"
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
)

type fakeIdentity struct {
	claims identity.Claims
	err    error
}

func (f *fakeIdentity) Decode(credential string) (identity.Claims, error) {
	if f.err != nil {
		return identity.Claims{}, f.err
	}
	return f.claims, nil
}

type captureDispatcher struct {
	phones []string
	codes  []string
	err    error
}

func (d *captureDispatcher) Deliver(ctx context.Context, phone, code string) error {
	if d.err != nil {
		return d.err
	}
	d.phones = append(d.phones, phone)
	d.codes = append(d.codes, code)
	return nil
}

func newTestService(t *testing.T) (*Service, *session.Store, *captureDispatcher) {
	t.Helper()

	store := session.NewStore()
	dispatch := &captureDispatcher{}
	svc, err := NewService(ServiceParams{
		Store: store,
		Identity: &fakeIdentity{claims: identity.Claims{
			Subject: "user-1",
			Name:    "Jordan Vega",
			Email:   "jordan@example.com",
		}},
		Codes:      otpstore.NewMemory(),
		Dispatcher: dispatch,
		OTPConfig: config.OTPConfig{
			CodeTTL: 5 * time.Minute,
			LockTTL: 10 * time.Second,
		},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, store, dispatch
}

func completeProfile(t *testing.T, svc *Service) {
	t.Helper()
	if _, err := svc.CompleteProfile(context.Background(), CompleteProfileInput{
		Name:  "Jordan Vega",
		Phone: "+15550100",
		Age:   29,
		Sex:   "male",
	}); err != nil {
		t.Fatalf("CompleteProfile: %v", err)
	}
}

func TestLoginCreatesIncompleteProfile(t *testing.T) {
	svc, store, _ := newTestService(t)

	user, err := svc.Login(context.Background(), "credential")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("expected subject user-1, got %q", user.ID)
	}
	if user.ProfileComplete {
		t.Fatal("fresh login must start incomplete")
	}
	if user.Tier != enums.TierStandard {
		t.Fatalf("expected standard tier, got %q", user.Tier)
	}

	snap := store.Snapshot()
	if snap.User == nil || snap.User.ID != "user-1" {
		t.Fatal("store should hold the logged-in user")
	}
}

func TestLoginDecodeFailureLeavesSessionUntouched(t *testing.T) {
	store := session.NewStore()
	svc, err := NewService(ServiceParams{
		Store:      store,
		Identity:   &fakeIdentity{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "malformed credential")},
		Codes:      otpstore.NewMemory(),
		Dispatcher: &captureDispatcher{},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.Login(context.Background(), "junk"); err == nil {
		t.Fatal("expected decode error")
	}
	if store.Snapshot().User != nil {
		t.Fatal("failed login must not create a session")
	}
}

func TestCompleteProfileValidation(t *testing.T) {
	svc, store, _ := newTestService(t)
	if _, err := svc.Login(context.Background(), "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err := svc.CompleteProfile(context.Background(), CompleteProfileInput{
		Name:  "  ",
		Phone: "",
		Age:   0,
		Sex:   "robot",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	for _, field := range []string{"name", "phone", "age", "sex"} {
		if _, present := details[field]; !present {
			t.Fatalf("expected detail for %q, got %v", field, details)
		}
	}
	if store.Snapshot().User.ProfileComplete {
		t.Fatal("rejected submission must not mark the profile complete")
	}
}

func TestCompleteProfileTransition(t *testing.T) {
	svc, store, _ := newTestService(t)
	if _, err := svc.Login(context.Background(), "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	completeProfile(t, svc)

	user := store.Snapshot().User
	if !user.ProfileComplete {
		t.Fatal("profile should be complete")
	}
	if user.Phone != "+15550100" || user.Age != 29 || user.Sex != enums.SexMale {
		t.Fatalf("profile fields not applied: %+v", user)
	}
	if user.PhoneVerified {
		t.Fatal("new phone number must start unverified")
	}

	_, err := svc.CompleteProfile(context.Background(), CompleteProfileInput{
		Name: "Jordan Vega", Phone: "+15550100", Age: 30, Sex: "male",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict on repeat completion, got %v", err)
	}
}

func TestUpgradeTier(t *testing.T) {
	svc, store, _ := newTestService(t)
	if _, err := svc.Login(context.Background(), "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.UpgradeTier(context.Background(), "pro"); pkgerrors.As(err) == nil {
		t.Fatalf("expected rejection before profile completion, got %v", err)
	}

	completeProfile(t, svc)

	if _, err := svc.UpgradeTier(context.Background(), "standard"); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("standard is not an upgrade target, got %v", err)
	}
	if _, err := svc.UpgradeTier(context.Background(), "platinum"); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown tier, got %v", err)
	}

	user, err := svc.UpgradeTier(context.Background(), "pro")
	if err != nil {
		t.Fatalf("UpgradeTier: %v", err)
	}
	if user.Tier != enums.TierPro {
		t.Fatalf("expected pro tier, got %q", user.Tier)
	}
	if store.Snapshot().User.Tier != enums.TierPro {
		t.Fatal("upgrade not persisted in session")
	}
}

func TestRequestOtpGuards(t *testing.T) {
	svc, _, dispatch := newTestService(t)
	ctx := context.Background()

	err := svc.RequestOtp(ctx)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized without session, got %v", err)
	}

	if _, err := svc.Login(ctx, "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	err = svc.RequestOtp(ctx)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict without phone, got %v", err)
	}

	completeProfile(t, svc)
	if err := svc.RequestOtp(ctx); err != nil {
		t.Fatalf("RequestOtp: %v", err)
	}
	if len(dispatch.codes) != 1 || len(dispatch.codes[0]) != 6 {
		t.Fatalf("expected one 6-digit dispatch, got %v", dispatch.codes)
	}
	if dispatch.phones[0] != "+15550100" {
		t.Fatalf("dispatched to wrong phone: %q", dispatch.phones[0])
	}
}

func TestRequestOtpDispatchFailureLeavesNoPendingCode(t *testing.T) {
	svc, _, dispatch := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Login(ctx, "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	completeProfile(t, svc)

	dispatch.err = errors.New("provider down")
	err := svc.RequestOtp(ctx)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}

	err = svc.VerifyOtp(ctx, "000000")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected no pending code after failed dispatch, got %v", err)
	}
}

func TestVerifyOtpLifecycle(t *testing.T) {
	svc, store, dispatch := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Login(ctx, "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	completeProfile(t, svc)
	if err := svc.RequestOtp(ctx); err != nil {
		t.Fatalf("RequestOtp: %v", err)
	}
	code := dispatch.codes[0]
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	// Malformed input rejects without consuming the pending code.
	err := svc.VerifyOtp(ctx, "12")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for short code, got %v", err)
	}
	if store.Snapshot().User.PhoneVerified {
		t.Fatal("short code must not verify the phone")
	}

	// Wrong 6-digit code rejects and keeps the pending code usable.
	err = svc.VerifyOtp(ctx, wrong)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for wrong code, got %v", err)
	}
	if store.Snapshot().User.PhoneVerified {
		t.Fatal("wrong code must not verify the phone")
	}

	if err := svc.VerifyOtp(ctx, code); err != nil {
		t.Fatalf("VerifyOtp: %v", err)
	}
	if !store.Snapshot().User.PhoneVerified {
		t.Fatal("correct code must verify the phone")
	}

	// Verified is terminal: every further OTP operation is rejected.
	err = svc.VerifyOtp(ctx, code)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict after verification, got %v", err)
	}
	err = svc.RequestOtp(ctx)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict on resend after verification, got %v", err)
	}
}

func TestRequestOtpEnforcesResendWindow(t *testing.T) {
	store := session.NewStore()
	dispatch := &captureDispatcher{}
	svc, err := NewService(ServiceParams{
		Store: store,
		Identity: &fakeIdentity{claims: identity.Claims{
			Subject: "user-1",
			Name:    "Jordan Vega",
			Email:   "jordan@example.com",
		}},
		Codes:      otpstore.NewMemory(),
		Dispatcher: dispatch,
		OTPConfig: config.OTPConfig{
			CodeTTL:      5 * time.Minute,
			LockTTL:      10 * time.Second,
			ResendWindow: 30 * time.Second,
		},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	ctx := context.Background()
	if _, err := svc.Login(ctx, "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	completeProfile(t, svc)

	if err := svc.RequestOtp(ctx); err != nil {
		t.Fatalf("first RequestOtp: %v", err)
	}
	err = svc.RequestOtp(ctx)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict inside resend window, got %v", err)
	}
	if len(dispatch.codes) != 1 {
		t.Fatalf("expected a single dispatched code, got %d", len(dispatch.codes))
	}

	// The original code still verifies.
	if err := svc.VerifyOtp(ctx, dispatch.codes[0]); err != nil {
		t.Fatalf("VerifyOtp: %v", err)
	}
}

func TestRequestOtpReplacesPendingCode(t *testing.T) {
	svc, store, dispatch := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Login(ctx, "credential"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	completeProfile(t, svc)

	if err := svc.RequestOtp(ctx); err != nil {
		t.Fatalf("first RequestOtp: %v", err)
	}
	if err := svc.RequestOtp(ctx); err != nil {
		t.Fatalf("resend RequestOtp: %v", err)
	}
	if len(dispatch.codes) != 2 {
		t.Fatalf("expected two dispatches, got %d", len(dispatch.codes))
	}

	first, second := dispatch.codes[0], dispatch.codes[1]
	if first != second {
		// The superseded code must no longer verify.
		err := svc.VerifyOtp(ctx, first)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected superseded code to be rejected, got %v", err)
		}
	}
	if err := svc.VerifyOtp(ctx, second); err != nil {
		t.Fatalf("VerifyOtp with latest code: %v", err)
	}
	if !store.Snapshot().User.PhoneVerified {
		t.Fatal("latest code must verify the phone")
	}
}

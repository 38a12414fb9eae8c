// Package profile owns the user lifecycle: credential login, onboarding
// completion, tier upgrades, and the phone-verification sub-flow.
package profile

import (
	"context"
	"strings"
	"time"

	"github.com/fitnexus/fitnexus-backend/internal/identity"
	"github.com/fitnexus/fitnexus-backend/internal/profile/otpstore"
	"github.com/fitnexus/fitnexus-backend/internal/session"
	"github.com/fitnexus/fitnexus-backend/pkg/config"
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

// Service drives every session transition. All session mutation funnels
// through the store's named operations; this layer adds validation and the
// OTP machinery on top.
type Service struct {
	store    *session.Store
	ids      identity.Adapter
	codes    otpstore.Store
	dispatch Dispatcher
	otpCfg   config.OTPConfig
	logg     *logger.Logger
	now      func() time.Time
}

// ServiceParams wires profile dependencies.
type ServiceParams struct {
	Store      *session.Store
	Identity   identity.Adapter
	Codes      otpstore.Store
	Dispatcher Dispatcher
	OTPConfig  config.OTPConfig
	Logger     *logger.Logger
}

// NewService validates and wires the profile lifecycle service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "session store required")
	}
	if params.Identity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "identity adapter required")
	}
	if params.Codes == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "otp store required")
	}
	if params.Dispatcher == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "otp dispatcher required")
	}
	return &Service{
		store:    params.Store,
		ids:      params.Identity,
		codes:    params.Codes,
		dispatch: params.Dispatcher,
		otpCfg:   params.OTPConfig,
		logg:     params.Logger,
		now:      time.Now,
	}, nil
}

// Login decodes the credential and replaces the session user with a fresh,
// incomplete profile. A decode failure leaves the session untouched.
func (s *Service) Login(ctx context.Context, credential string) (*session.User, error) {
	claims, err := s.ids.Decode(credential)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Login(session.Identity{
		Subject:    claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		PictureURL: claims.PictureURL,
	}, s.now())
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID), "user authenticated")
	}
	return user, nil
}

// Logout discards the session user.
func (s *Service) Logout(ctx context.Context) {
	s.store.Logout()
	if s.logg != nil {
		s.logg.Info(ctx, "user logged out")
	}
}

// CompleteProfileInput carries the onboarding submission.
type CompleteProfileInput struct {
	Name  string
	Phone string
	Age   int
	Sex   string
}

// CompleteProfile validates the submission and applies the onboarding
// transition. On any validation failure the user record stays unmodified.
func (s *Service) CompleteProfile(ctx context.Context, input CompleteProfileInput) (*session.User, error) {
	details := map[string]string{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		details["name"] = "is required"
	}
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		details["phone"] = "is required"
	}
	if input.Age <= 0 {
		details["age"] = "must be a positive integer"
	}
	sex, err := enums.ParseSex(strings.ToLower(strings.TrimSpace(input.Sex)))
	if err != nil {
		details["sex"] = "must be one of male, female, other"
	}

	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}

	user, err := s.store.CompleteProfile(session.CompleteProfileParams{
		Name:  name,
		Phone: phone,
		Age:   input.Age,
		Sex:   sex,
	})
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID), "profile completed")
	}
	return user, nil
}

// UpgradeTier moves the user onto a paid tier. Payment is out of scope; the
// transition itself always succeeds for a valid target.
func (s *Service) UpgradeTier(ctx context.Context, rawTier string) (*session.User, error) {
	tier, err := enums.ParseTier(strings.ToLower(strings.TrimSpace(rawTier)))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tier")
	}
	if tier == enums.TierStandard {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upgrade target must be a paid tier")
	}

	user, err := s.store.UpgradeTier(tier)
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"user_id": user.ID, "tier": user.Tier.String()})
		s.logg.Info(ctx, "tier upgraded")
	}
	return user, nil
}

// RequestOtp issues a fresh verification code for the session phone number
// and hands it to the dispatcher. Allowed before any code exists and as a
// resend while one is pending; never after verification.
func (s *Service) RequestOtp(ctx context.Context) error {
	user, err := s.verifiableUser()
	if err != nil {
		return err
	}

	acquired, err := s.codes.AcquireLock(ctx, user.ID, s.otpCfg.LockTTL)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire otp lock")
	}
	if !acquired {
		return pkgerrors.New(pkgerrors.CodeConflict, "verification already in progress")
	}
	defer s.releaseLock(ctx, user.ID)

	if s.otpCfg.ResendWindow > 0 {
		recent, err := s.codes.RecentlySent(ctx, user.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check resend window")
		}
		if recent {
			return pkgerrors.New(pkgerrors.CodeConflict, "a verification code was sent recently")
		}
	}

	code, err := generateCode()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate code")
	}

	// The code becomes verifiable only once dispatch has completed; a
	// failed dispatch leaves the sub-machine where it was.
	if err := s.dispatch.Deliver(ctx, user.Phone, code); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dispatch verification code")
	}
	if err := s.codes.SaveCode(ctx, user.ID, code, s.otpCfg.CodeTTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store verification code")
	}
	if err := s.codes.MarkSent(ctx, user.ID, s.otpCfg.ResendWindow); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithUserID(ctx, user.ID), "failed to record resend window")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID), "verification code sent")
	}
	return nil
}

// VerifyOtp checks the submitted code against the pending one. A wrong or
// malformed code rejects without consuming the pending code, so the user
// can retry. Success marks the phone verified; the verified state is
// terminal.
func (s *Service) VerifyOtp(ctx context.Context, code string) error {
	user, err := s.verifiableUser()
	if err != nil {
		return err
	}

	code = strings.TrimSpace(code)
	if !isSixDigits(code) {
		return pkgerrors.New(pkgerrors.CodeValidation, "code must be exactly 6 digits")
	}

	acquired, err := s.codes.AcquireLock(ctx, user.ID, s.otpCfg.LockTTL)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire otp lock")
	}
	if !acquired {
		return pkgerrors.New(pkgerrors.CodeConflict, "verification already in progress")
	}
	defer s.releaseLock(ctx, user.ID)

	pending, err := s.codes.Code(ctx, user.ID)
	if err != nil {
		if err == otpstore.ErrNoCode {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "no verification code pending")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load verification code")
	}

	if pending != code {
		return pkgerrors.New(pkgerrors.CodeValidation, "incorrect code")
	}

	if err := s.codes.DeleteCode(ctx, user.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear verification code")
	}
	if _, err := s.store.SetPhoneVerified(); err != nil {
		return err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID), "phone verified")
	}
	return nil
}

// verifiableUser returns the session user when the OTP sub-machine is
// active: authenticated, phone on file, not yet verified.
func (s *Service) verifiableUser() (*session.User, error) {
	snap := s.store.Snapshot()
	if snap.User == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if strings.TrimSpace(snap.User.Phone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no phone number on profile")
	}
	if snap.User.PhoneVerified {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "phone already verified")
	}
	return snap.User, nil
}

func (s *Service) releaseLock(ctx context.Context, userID string) {
	if err := s.codes.ReleaseLock(ctx, userID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithUserID(ctx, userID), "failed to release otp lock")
	}
}

func isSixDigits(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

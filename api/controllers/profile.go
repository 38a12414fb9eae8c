package controllers

import (
	"net/http"

	"github.com/fitnexus/fitnexus-backend/api/responses"
	"github.com/fitnexus/fitnexus-backend/api/validators"
	"github.com/fitnexus/fitnexus-backend/internal/profile"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

type completeProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Age   int    `json:"age" validate:"required,gt=0"`
	Sex   string `json:"sex" validate:"required,oneof=male female other"`
}

// ProfileComplete applies the onboarding submission.
func ProfileComplete(svc *profile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req completeProfileRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.CompleteProfile(r.Context(), profile.CompleteProfileInput{
			Name:  req.Name,
			Phone: req.Phone,
			Age:   req.Age,
			Sex:   req.Sex,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

type upgradeTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=pro elite"`
}

// ProfileUpgrade moves the user onto a paid tier.
func ProfileUpgrade(svc *profile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upgradeTierRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.UpgradeTier(r.Context(), req.Tier)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// OtpRequest issues a verification code for the session phone number.
func OtpRequest(svc *profile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RequestOtp(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "code_sent"})
	}
}

type otpVerifyRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// OtpVerify checks the submitted code and marks the phone verified.
func OtpVerify(svc *profile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req otpVerifyRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.VerifyOtp(r.Context(), req.Code); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "verified"})
	}
}

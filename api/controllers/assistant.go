package controllers

import (
	"net/http"

	"github.com/fitnexus/fitnexus-backend/api/responses"
	"github.com/fitnexus/fitnexus-backend/api/validators"
	"github.com/fitnexus/fitnexus-backend/internal/assistant"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

type postMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type postMessageResponse struct {
	Message assistant.Message `json:"message"`
	Busy    bool              `json:"busy"`
}

type transcriptResponse struct {
	Messages []assistant.Message `json:"messages"`
	Busy     bool                `json:"busy"`
}

// AssistantPostMessage appends a user turn to the coach conversation. The
// reply lands asynchronously; clients poll the transcript for it.
func AssistantPostMessage(manager *assistant.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postMessageRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg, err := manager.PostUserMessage(r.Context(), req.Text)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, postMessageResponse{
			Message: msg,
			Busy:    manager.Busy(),
		})
	}
}

// AssistantMessages returns the conversation transcript.
func AssistantMessages(manager *assistant.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, transcriptResponse{
			Messages: manager.Messages(),
			Busy:     manager.Busy(),
		})
	}
}

// AssistantReset starts the conversation over.
func AssistantReset(manager *assistant.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := manager.Reset(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, transcriptResponse{
			Messages: manager.Messages(),
			Busy:     false,
		})
	}
}

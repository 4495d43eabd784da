package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"connected/internal/common"
	"connected/internal/user"
)

// OktaHandler ingests identity-provider event hooks and turns their
// loosely-shaped payloads into typed user create/update requests. It sits
// outside the command pipeline: user sync is a synchronous path.
type OktaHandler struct {
	service     user.UserService
	eventSecret string
}

func NewOktaHandler(service user.UserService, eventSecret string) *OktaHandler {
	return &OktaHandler{service: service, eventSecret: eventSecret}
}

func (h *OktaHandler) Register(r *mux.Router) {
	r.HandleFunc("/okta/create", h.verify).Methods(http.MethodGet)
	r.HandleFunc("/okta/update", h.verify).Methods(http.MethodGet)
	r.HandleFunc("/okta/create", h.createUser).Methods(http.MethodPost)
	r.HandleFunc("/okta/update", h.updateUser).Methods(http.MethodPost)
}

// oktaActor is the slice of the event payload we care about.
type oktaActor struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	AlternateID string `json:"alternateId"`
	DisplayName string `json:"displayName"`
}

// verify answers the provider's one-time endpoint verification challenge.
func (h *OktaHandler) verify(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		writeError(w, fmt.Errorf("event hook authorization key is invalid: %w", common.ErrUnauthorized))
		return
	}

	challenge := r.Header.Get("X-Okta-Verification-Challenge")
	writeJSON(w, http.StatusOK, map[string]string{"verification": challenge})
}

func (h *OktaHandler) createUser(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		writeError(w, fmt.Errorf("event hook authorization key is invalid: %w", common.ErrUnauthorized))
		return
	}

	dto, err := decodeEventHook(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.CreateUser(r.Context(), dto); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HttpResponse{Status: "OK", Message: "User created"})
}

func (h *OktaHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		writeError(w, fmt.Errorf("event hook authorization key is invalid: %w", common.ErrUnauthorized))
		return
	}

	dto, err := decodeEventHook(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.service.UpdateUser(r.Context(), dto.ID, dto); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HttpResponse{Status: "OK", Message: "User updated"})
}

func (h *OktaHandler) authenticated(r *http.Request) bool {
	return h.eventSecret != "" && r.Header.Get("Authorization") == h.eventSecret
}

// decodeEventHook extracts the actor from the provider's event envelope: a
// JSON array whose first element holds a "target" list, the first entry of
// which is the affected user.
func decodeEventHook(r *http.Request) (user.UserDto, error) {
	var envelope []struct {
		Target []oktaActor `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		return user.UserDto{}, fmt.Errorf("cannot parse event hook payload: %w", common.ErrInvalidArgument)
	}
	if len(envelope) == 0 || len(envelope[0].Target) == 0 {
		return user.UserDto{}, fmt.Errorf("event hook payload has no target: %w", common.ErrInvalidArgument)
	}

	actor := envelope[0].Target[0]
	firstName, lastName, _ := strings.Cut(actor.DisplayName, " ")

	return user.UserDto{
		ID:        actor.ID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     actor.AlternateID,
	}, nil
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"connected/internal/comment"
	"connected/internal/common"
)

type CommentHandler struct {
	service comment.CommentService
}

func NewCommentHandler(service comment.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) Register(r *mux.Router) {
	r.HandleFunc("/comments", h.getAllComments).Methods(http.MethodGet)
	r.HandleFunc("/comments/user/{id}", h.getAllCommentsByUser).Methods(http.MethodGet)
	r.HandleFunc("/comments/{id:[0-9]+}", h.getComment).Methods(http.MethodGet)
	r.HandleFunc("/comments", h.createComment).Methods(http.MethodPost)
	r.HandleFunc("/comments/{id:[0-9]+}", h.deleteComment).Methods(http.MethodDelete)
}

func (h *CommentHandler) getAllComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.AllComments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) getAllCommentsByUser(w http.ResponseWriter, r *http.Request) {
	authorID := mux.Vars(r)["id"]

	comments, err := h.service.AllCommentsByUser(r.Context(), authorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) getComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	target, err := h.service.VerifyComment(r.Context(), commentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, target)
}

func (h *CommentHandler) createComment(w http.ResponseWriter, r *http.Request) {
	callerID, ok := common.CallerID(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	var dto comment.CommentDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, fmt.Errorf("cannot parse comment information: %w", common.ErrInvalidArgument))
		return
	}

	if err := h.service.ProcessComment(r.Context(), callerID, dto); err != nil {
		writeError(w, err)
		return
	}
	writeAccepted(w, "The comment has been sent for processing")
}

func (h *CommentHandler) deleteComment(w http.ResponseWriter, r *http.Request) {
	callerID, ok := common.CallerID(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	commentID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.ProcessCommentDeletion(r.Context(), callerID, commentID); err != nil {
		writeError(w, err)
		return
	}
	writeAccepted(w, "The comment deletion has been sent for processing")
}

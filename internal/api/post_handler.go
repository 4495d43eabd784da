package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"connected/internal/common"
	"connected/internal/post"
)

type PostHandler struct {
	service post.PostService
}

func NewPostHandler(service post.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func (h *PostHandler) Register(r *mux.Router) {
	r.HandleFunc("/posts", h.getAllPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts/user/{id}", h.getAllPostsByUser).Methods(http.MethodGet)
	r.HandleFunc("/posts/likes", h.modifyLikes).Methods(http.MethodPatch)
	r.HandleFunc("/posts/{id:[0-9]+}", h.getPost).Methods(http.MethodGet)
	r.HandleFunc("/posts", h.createPost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}", h.deletePost).Methods(http.MethodDelete)
}

func (h *PostHandler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.AllPosts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) getAllPostsByUser(w http.ResponseWriter, r *http.Request) {
	authorID := mux.Vars(r)["id"]

	posts, err := h.service.AllPostsByUser(r.Context(), authorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	target, err := h.service.VerifyPost(r.Context(), postID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, target)
}

// createPost accepts a multipart form with a "post" JSON part and an
// optional "media" file part.
func (h *PostHandler) createPost(w http.ResponseWriter, r *http.Request) {
	callerID, ok := common.CallerID(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, fmt.Errorf("cannot parse multipart form: %w", common.ErrInvalidArgument))
		return
	}

	var dto post.PostDto
	if err := json.Unmarshal([]byte(r.FormValue("post")), &dto); err != nil {
		writeError(w, fmt.Errorf("cannot parse post information: %w", common.ErrInvalidArgument))
		return
	}

	var media *post.MediaUpload
	if file, header, err := r.FormFile("media"); err == nil {
		defer file.Close()
		media = &post.MediaUpload{
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	}

	if err := h.service.ProcessPost(r.Context(), callerID, dto, media); err != nil {
		writeError(w, err)
		return
	}
	writeAccepted(w, "The post has been sent for processing")
}

func (h *PostHandler) modifyLikes(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.URL.Query().Get("postId"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("postId must be an integer: %w", common.ErrInvalidArgument))
		return
	}
	addLike, err := strconv.ParseBool(r.URL.Query().Get("addLike"))
	if err != nil {
		writeError(w, fmt.Errorf("addLike must be a boolean: %w", common.ErrInvalidArgument))
		return
	}

	if err := h.service.ProcessLike(r.Context(), postID, addLike); err != nil {
		writeError(w, err)
		return
	}
	writeAccepted(w, "The like has been sent for processing")
}

func (h *PostHandler) deletePost(w http.ResponseWriter, r *http.Request) {
	callerID, ok := common.CallerID(r.Context())
	if !ok {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.ProcessPostDeletion(r.Context(), callerID, postID); err != nil {
		writeError(w, err)
		return
	}
	writeAccepted(w, "The post deletion has been sent for processing")
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be an integer: %w", common.ErrInvalidArgument)
	}
	return id, nil
}

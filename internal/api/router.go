package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"connected/internal/common"
)

// NewRouter assembles the REST surface. Post and comment endpoints require a
// verified caller identity; the event-hook endpoints authenticate with their
// own shared secret instead.
func NewRouter(posts *PostHandler, comments *CommentHandler, okta *OktaHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", health).Methods(http.MethodGet)

	base := router.PathPrefix("/v1/api").Subrouter()

	okta.Register(base)

	protected := base.NewRoute().Subrouter()
	protected.Use(common.AuthMiddleware)
	posts.Register(protected)
	comments.Register(protected)

	return router
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package app

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	handlers "weddingsite/internal/handler"
	"weddingsite/internal/middleware"
	"weddingsite/internal/storage"
)

// NewRouter registers every route. uploads, when non-nil, is served under the
// configured URL prefix.
func NewRouter(h *handlers.Handlers, uploads *storage.LocalStorage) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/config", h.PublicConfig).Methods(http.MethodGet)
	api.HandleFunc("/invitation", h.GetInvitation).Methods(http.MethodGet)
	api.HandleFunc("/gallery", h.GetGallery).Methods(http.MethodGet)
	api.HandleFunc("/contacts", h.GetContacts).Methods(http.MethodGet)
	api.HandleFunc("/guestbook", h.GetGuestbook).Methods(http.MethodGet)
	api.HandleFunc("/guestbook", h.CreateEntry).Methods(http.MethodPost)
	api.HandleFunc("/guestbook/{id:[0-9]+}", h.UpdateEntry).Methods(http.MethodPut)
	api.HandleFunc("/guestbook/{id:[0-9]+}", h.DeleteEntry).Methods(http.MethodDelete)

	api.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", h.Logout).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.AdminAuth(h.AuthService, h.Cfg.Session.CookieName)))
	admin.HandleFunc("/session", h.Session).Methods(http.MethodGet)
	admin.HandleFunc("/stats", h.GetStats).Methods(http.MethodGet)

	admin.HandleFunc("/gallery", h.AdminGetGallery).Methods(http.MethodGet)
	admin.HandleFunc("/gallery", h.UploadImage).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/reorder", h.ReorderGallery).Methods(http.MethodPut)
	admin.HandleFunc("/gallery/{id:[0-9]+}", h.DeleteImage).Methods(http.MethodDelete)

	admin.HandleFunc("/guestbook", h.AdminGetGuestbook).Methods(http.MethodGet)
	admin.HandleFunc("/guestbook/{id:[0-9]+}", h.AdminDeleteEntry).Methods(http.MethodDelete)
	admin.HandleFunc("/guestbook/{id:[0-9]+}/restore", h.AdminRestoreEntry).Methods(http.MethodPost)

	admin.HandleFunc("/contacts", h.GetContacts).Methods(http.MethodGet)
	admin.HandleFunc("/contacts", h.CreateContact).Methods(http.MethodPost)
	admin.HandleFunc("/contacts/{id:[0-9]+}", h.UpdateContact).Methods(http.MethodPut)
	admin.HandleFunc("/contacts/{id:[0-9]+}", h.DeleteContact).Methods(http.MethodDelete)

	admin.HandleFunc("/invitation", h.UpdateInvitation).Methods(http.MethodPut)

	if uploads != nil {
		prefix := strings.TrimRight(h.Cfg.Storage.URLPrefix, "/") + "/"
		r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, noDirListing(http.FileServer(http.Dir(uploads.Root())))))
	}

	return middleware.Chain(r,
		middleware.RecoverMiddleware(h.Log),
		middleware.LoggingMiddleware(h.Log),
		middleware.CORSMiddleware(h.Cfg.CORSAllowedOrigin),
	)
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

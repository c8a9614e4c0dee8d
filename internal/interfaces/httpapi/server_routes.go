package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerClubRoutes(mux *http.ServeMux, handler *Handler) {
	// The collection is served with and without the trailing slash.
	mux.HandleFunc("GET /clubs/{$}", handler.ListClubs)
	mux.HandleFunc("GET /clubs", handler.ListClubs)
	mux.HandleFunc("POST /clubs/{$}", handler.CreateClub)
	mux.HandleFunc("POST /clubs", handler.CreateClub)

	mux.HandleFunc("PUT /clubs/{club_id}", handler.ReplaceClub)
	mux.HandleFunc("PATCH /clubs/{club_id}", handler.PatchClub)
	mux.HandleFunc("DELETE /clubs/{club_id}", handler.DeleteClub)
}

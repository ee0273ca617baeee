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

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/top", handler.TopPlayers)
	mux.HandleFunc("GET /v1/players/headline", handler.HeadlineStats)
	mux.HandleFunc("GET /v1/players/top-performers", handler.ListTopPerformers)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}/summary", handler.GetMatchSummary)
	mux.HandleFunc("GET /v1/venues", handler.ListVenues)

	mux.HandleFunc("GET /v1/duels", handler.GetDuel)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/compare", handler.CompareTeams)

	mux.HandleFunc("GET /v1/toss/win-rate", handler.GetTossWinRate)
	mux.HandleFunc("GET /v1/toss/impact", handler.GetTossImpact)
	mux.HandleFunc("GET /v1/seasons/wins", handler.ListSeasonWins)

	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/predictions", handler.PredictWinner)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/reload-dataset", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunDatasetReload)))
}

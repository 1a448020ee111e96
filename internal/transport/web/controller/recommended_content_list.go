package controller

import (
	"net/http"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

type RecommendedContentList struct {
	RecommendCmd command.Command[command.GetRecommendationsRequest, []domain.ScoredContent]
}

type RecommendedContentListResponse struct {
	Data []domain.ScoredContent `json:"data"`
}

func (c RecommendedContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, "unable to parse limit in query string", err)
		return
	}

	recs, err := c.RecommendCmd.Execute(r.Context(), command.GetRecommendationsRequest{
		UserAddress: domain.UserAddressFromContext(r.Context()),
		Limit:       limit,
	})
	if err != nil {
		writeError(w, r, "unable to get recommendations", err)
		return
	}

	if recs == nil {
		recs = []domain.ScoredContent{}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, RecommendedContentListResponse{Data: recs})
}

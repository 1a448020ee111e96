package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/BotGJ16/ContentVault/internal/transport/web/controller"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands holds the use cases served over HTTP.
type Commands struct {
	ListContent              command.Command[command.ListContentRequest, command.ContentPage]
	ListFeaturedContent      command.Command[command.Empty, []domain.Content]
	GetTrendingContent       command.Command[command.GetTrendingContentRequest, []domain.Content]
	GetRecommendations       command.Command[command.GetRecommendationsRequest, []domain.ScoredContent]
	GetContent               command.Command[string, domain.Content]
	ListSimilarContent       command.Command[command.ListSimilarContentRequest, []domain.Content]
	UploadContent            command.Command[command.UploadContentRequest, domain.Content]
	UpdateContent            command.Command[command.UpdateContentRequest, domain.Content]
	DeleteContent            command.Command[command.DeleteContentRequest, command.Empty]
	PurchaseContent          command.Command[command.PurchaseContentRequest, command.PurchaseContentResponse]
	TipContent               command.Command[command.TipContentRequest, command.Empty]
	RecordInteraction        command.Command[command.RecordInteractionRequest, command.Empty]
	DownloadContent          command.Command[command.DownloadContentRequest, command.DownloadContentResponse]
	CheckContentAvailability command.Command[string, bool]
	GetUser                  command.Command[string, domain.User]
	ListPurchasedContent     command.Command[command.ListPurchasedContentRequest, command.ContentPage]
	GetStorageStatus         command.Command[command.Empty, json.RawMessage]
	EstimateStorageCost      command.Command[int64, json.RawMessage]
}

type Config struct {
	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string

	// PublicCacheMaxAge is sent on anonymous catalogue responses.
	PublicCacheMaxAge time.Duration

	// WriteRateLimit requests per WriteRateWindow are allowed per client IP on write endpoints.
	WriteRateLimit  int
	WriteRateWindow time.Duration
}

func MakeRouter(
	cmds Commands,
	config Config,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(metricsMiddleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	writeLimit := writeRateLimitMiddleware(config.WriteRateLimit, config.WriteRateWindow)
	authedWrite := func(h http.Handler) http.Handler {
		return writeLimit(requireAuthMiddleware(h))
	}

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.Handle("/content", controller.ContentList{
		ListCmd:     cmds.ListContent,
		CacheMaxAge: config.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/content", authedWrite(controller.ContentUpload{
		UploadCmd: cmds.UploadContent,
	})).Methods(http.MethodPost, http.MethodOptions)

	// Fixed paths must be registered before /content/{content_id}.
	v1.Handle("/content/featured", controller.ContentFeaturedList{
		ListCmd:     cmds.ListFeaturedContent,
		CacheMaxAge: config.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/content/trending", controller.ContentTrendingList{
		TrendingCmd: cmds.GetTrendingContent,
		CacheMaxAge: config.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/content/recommended", requireAuthMiddleware(controller.RecommendedContentList{
		RecommendCmd: cmds.GetRecommendations,
	})).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/content/{content_id}", controller.ContentGet{
		GetCmd:      cmds.GetContent,
		CacheMaxAge: config.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/content/{content_id}", authedWrite(controller.ContentUpdate{
		UpdateCmd: cmds.UpdateContent,
	})).Methods(http.MethodPut, http.MethodOptions)

	v1.Handle("/content/{content_id}", authedWrite(controller.ContentDelete{
		DeleteCmd: cmds.DeleteContent,
	})).Methods(http.MethodDelete, http.MethodOptions)

	v1.Handle("/content/{content_id}/similar", controller.SimilarContentList{
		SimilarCmd:  cmds.ListSimilarContent,
		CacheMaxAge: config.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/content/{content_id}/purchase", authedWrite(controller.ContentPurchase{
		PurchaseCmd: cmds.PurchaseContent,
	})).Methods(http.MethodPost, http.MethodOptions)

	v1.Handle("/content/{content_id}/tip", authedWrite(controller.ContentTip{
		TipCmd: cmds.TipContent,
	})).Methods(http.MethodPost, http.MethodOptions)

	v1.Handle("/content/{content_id}/interactions/{type}", authedWrite(controller.ContentInteraction{
		RecordCmd: cmds.RecordInteraction,
	})).Methods(http.MethodPost, http.MethodOptions)

	v1.Handle("/content/{content_id}/download", requireAuthMiddleware(controller.ContentDownload{
		DownloadCmd: cmds.DownloadContent,
	})).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/content/{content_id}/availability", controller.ContentAvailability{
		AvailabilityCmd: cmds.CheckContentAvailability,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/creators/{address}/content", controller.CreatorContentList{
		ListCmd:     cmds.ListContent,
		CacheMaxAge: config.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/users/{address}", controller.UserGet{
		GetCmd:      cmds.GetUser,
		CacheMaxAge: config.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/users/{address}/purchased", requireAuthMiddleware(controller.PurchasedContentList{
		ListCmd: cmds.ListPurchasedContent,
	})).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/storage/status", controller.StorageStatus{
		StatusCmd: cmds.GetStorageStatus,
	}).Methods(http.MethodGet, http.MethodOptions)

	v1.Handle("/storage/cost", controller.StorageCost{
		CostCmd: cmds.EstimateStorageCost,
	}).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.TrendingRSS{
		{
			FeedHostname:    config.RSSFeedBaseURL,
			FeedPath:        "/rss/trending",
			FeedAuthorName:  config.RSSFeedAuthorName,
			FeedAuthorEmail: config.RSSFeedAuthorEmail,
			TrendingCmd:     cmds.GetTrendingContent,
			CacheMaxAge:     config.PublicCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet, http.MethodOptions)
	}

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}

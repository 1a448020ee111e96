package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/gorilla/feeds"
)

const rssTrendingLimit = 20

// TrendingRSS publishes the trending list as an RSS feed.
type TrendingRSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	TrendingCmd     command.Command[command.GetTrendingContentRequest, []domain.Content]
	CacheMaxAge     time.Duration
}

func (c TrendingRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "ContentVault Trending",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Content gaining the most attention on ContentVault",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	contents, err := c.TrendingCmd.Execute(ctx, command.GetTrendingContentRequest{Limit: rssTrendingLimit})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch trending content for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, content := range contents {
		description := content.Description
		if !content.IsPublic {
			description = fmt.Sprintf("%s (%.2f)", description, content.Price)
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          content.ID,
			IsPermaLink: "false",
			Title:       content.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/content/" + content.ID},
			Description: description,
			Author:      &feeds.Author{Name: content.CreatorAddress},
			Created:     content.UploadedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

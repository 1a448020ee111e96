package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/datasources/mongo"
	"github.com/BotGJ16/ContentVault/internal/datasources/mysql"
	"github.com/BotGJ16/ContentVault/internal/datasources/pinecone"
	"github.com/BotGJ16/ContentVault/internal/datasources/redis"
	"github.com/BotGJ16/ContentVault/internal/datasources/walrus"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/BotGJ16/ContentVault/internal/transport/web/router"
	"github.com/BotGJ16/ContentVault/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// cacheRepository is satisfied by both the Redis cache and NullCache.
type cacheRepository interface {
	datasources.RecommendationCache
	datasources.TrendingCache
}

// repositories holds the storage shared by the API server and the batch job.
type repositories struct {
	contents     *mongo.ContentRepository
	users        *mongo.UserRepository
	interactions datasources.InteractionLog
	similarity   datasources.SimilarityRepository
	cache        cacheRepository
}

func setupRepositories(ctx context.Context) (repositories, error) {
	db, err := mongo.Connect(ctx, MustGetEnvAsString(ctx, "MONGODB_URI"), MustGetEnvAsString(ctx, "MONGODB_DATABASE"))
	if err != nil {
		return repositories{}, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return repositories{}, fmt.Errorf("ensuring MongoDB indexes: %w", err)
	}

	interactions, err := setupInteractionLog(ctx)
	if err != nil {
		return repositories{}, fmt.Errorf("setting up interaction log: %w", err)
	}

	similarity, err := setupSimilarityRepository(ctx)
	if err != nil {
		return repositories{}, fmt.Errorf("setting up similarity repository: %w", err)
	}

	cache, err := setupCache(ctx)
	if err != nil {
		return repositories{}, fmt.Errorf("setting up cache: %w", err)
	}

	return repositories{
		contents:     mongo.NewContentRepository(db),
		users:        mongo.NewUserRepository(db),
		interactions: interactions,
		similarity:   similarity,
		cache:        cache,
	}, nil
}

func newGetRecommendations(repos repositories) *command.GetRecommendations {
	return command.NewGetRecommendations(
		repos.interactions,
		repos.contents,
		repos.cache,
		domain.CosineScorer{},
		DefaultGetRecommendationsConfig(),
	)
}

// Setup builds the API server and everything it depends on.
func Setup(ctx context.Context) ([]Component, error) {
	repos, err := setupRepositories(ctx)
	if err != nil {
		return nil, err
	}

	walrusClient := setupWalrusClient(ctx)
	cipher := walrus.Cipher{}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	contents, users := repos.contents, repos.users

	cmds := router.Commands{
		ListContent:         command.NewListContent(contents, contents),
		ListFeaturedContent: &command.ListFeaturedContent{Lister: contents},
		GetTrendingContent: command.NewGetTrendingContent(
			contents, repos.cache, DefaultGetTrendingContentConfig(),
		),
		GetRecommendations: newGetRecommendations(repos),
		GetContent:         &command.GetContent{Fetcher: contents},
		ListSimilarContent: command.NewListSimilarContent(contents, repos.similarity, contents),
		UploadContent: command.NewUploadContent(
			cipher, walrusClient, contents, users, repos.similarity,
		),
		UpdateContent: command.NewUpdateContent(contents, contents, repos.similarity),
		DeleteContent: command.NewDeleteContent(contents, contents),
		PurchaseContent: command.NewPurchaseContent(
			contents, contents, repos.interactions, repos.cache, users,
		),
		TipContent: command.NewTipContent(
			contents, contents, repos.interactions, repos.cache, users,
		),
		RecordInteraction: command.NewRecordInteraction(
			contents, contents, repos.interactions, repos.cache, users,
		),
		DownloadContent: command.NewDownloadContent(contents, repos.interactions, walrusClient, cipher),
		CheckContentAvailability: &command.CheckContentAvailability{
			Fetcher:   contents,
			Inspector: walrusClient,
		},
		GetUser:              &command.GetUser{Getter: users},
		ListPurchasedContent: command.NewListPurchasedContent(repos.interactions, contents),
		GetStorageStatus:     &command.GetStorageStatus{Inspector: walrusClient},
		EstimateStorageCost:  &command.EstimateStorageCost{Inspector: walrusClient},
	}

	httpRouter, err := router.MakeRouter(
		cmds,
		router.Config{
			RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			PublicCacheMaxAge:  MustGetEnvAsDuration(ctx, "PUBLIC_CACHE_MAX_AGE"),
			WriteRateLimit:     MustGetEnvAsInt(ctx, "WRITE_RATE_LIMIT"),
			WriteRateWindow:    MustGetEnvAsDuration(ctx, "WRITE_RATE_WINDOW"),
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			AutocertCacheDir:  GetEnvAsStringOr("HTTP_AUTOCERT_CACHE_DIR", ""),
			Router:            httpRouter,
		},
	}, nil
}

// SetupRecommendationGeneration builds the batch job that warms the recommendation cache.
func SetupRecommendationGeneration(ctx context.Context) (*command.RunRecommendationGeneration, error) {
	repos, err := setupRepositories(ctx)
	if err != nil {
		return nil, err
	}

	return command.NewRunRecommendationGeneration(
		repos.interactions,
		newGetRecommendations(repos),
		DefaultRunRecommendationGenerationConfig(),
	), nil
}

func setupInteractionLog(ctx context.Context) (datasources.InteractionLog, error) {
	switch driver := MustGetEnvAsString(ctx, "INTERACTION_LOG_DRIVER"); driver {
	case "null":
		return datasources.NullInteractionLog{}, nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrating MySQL: %w", err)
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown interaction log driver [%s]", driver)
	}
}

func setupSimilarityRepository(ctx context.Context) (datasources.SimilarityRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
			GetEnvAsStringOr("PINECONE_NAMESPACE", "content"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupCache(ctx context.Context) (cacheRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullCache{}, nil
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_URL"))
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		return redis.New(client, defaultRecommendationsCacheTTL, defaultTrendingCacheTTL), nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupWalrusClient(ctx context.Context) *walrus.Client {
	config := walrus.DefaultConfig()
	config.RPCURL = GetEnvAsStringOr("WALRUS_RPC_URL", config.RPCURL)
	config.PublisherURL = GetEnvAsStringOr("WALRUS_PUBLISHER_URL", config.PublisherURL)
	config.AggregatorURL = GetEnvAsStringOr("WALRUS_AGGREGATOR_URL", config.AggregatorURL)
	config.APIKey = GetEnvAsStringOr("WALRUS_API_KEY", "")

	domain.LoggerFromContext(ctx).InfoContext(ctx, "using walrus endpoints",
		"publisher_url", config.PublisherURL,
		"aggregator_url", config.AggregatorURL)

	// Per-call timeouts come from the config; the client itself has none.
	return walrus.NewClient(config, &http.Client{})
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "jwt":
			validators = append(validators, router.NewJWTValidator([]byte(MustGetEnvAsString(ctx, "JWT_SECRET"))))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}

// Package server provides the MCP server implementation.
package server

import (
	"github.com/BotGJ16/ContentVault/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	defaultLimit    = 10
	maxLimit        = 50
	defaultPageSize = 12
	maxPageSize     = 100
)

// Server is the MCP server for the ContentVault catalogue.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"contentvault",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("search_content",
		mcp.WithDescription(
			"Search the public ContentVault catalogue by keyword, category or creator. "+
				"Returns a page of content with pagination metadata."),
		mcp.WithString("search",
			mcp.Description("Text to match against titles, descriptions and tags"),
		),
		mcp.WithString("category",
			mcp.Description("Content type to restrict results to"),
			mcp.Enum("all", "image", "video", "audio", "document"),
		),
		mcp.WithString("creator",
			mcp.Description("Wallet address of a creator to restrict results to"),
		),
		mcp.WithString("sort_by",
			mcp.Description("Result ordering (default: newest)"),
			mcp.Enum("newest", "popular", "earnings"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of items per page (default: 12, max: 100)"),
		),
	), s.handleSearchContent)

	s.mcpServer.AddTool(mcp.NewTool("list_featured",
		mcp.WithDescription("List the content currently featured on ContentVault."),
	), s.handleListFeatured)

	s.mcpServer.AddTool(mcp.NewTool("list_trending",
		mcp.WithDescription("List content that is trending based on recent views, likes, purchases and tips."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return (default: 10, max: 50)"),
		),
	), s.handleListTrending)

	s.mcpServer.AddTool(mcp.NewTool("get_content",
		mcp.WithDescription("Get the catalogue entry for a piece of content by its ID."),
		mcp.WithString("content_id",
			mcp.Required(),
			mcp.Description("The ID of the content to retrieve"),
		),
	), s.handleGetContent)

	s.mcpServer.AddTool(mcp.NewTool("get_similar_content",
		mcp.WithDescription(
			"Find content similar to a given item using its type, tags, price and popularity. "+
				"Useful for discovering related work."),
		mcp.WithString("content_id",
			mcp.Required(),
			mcp.Description("The ID of the content to find similar items for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return (default: 10, max: 50)"),
		),
	), s.handleGetSimilarContent)

	s.mcpServer.AddTool(mcp.NewTool("list_creator_content",
		mcp.WithDescription("List content uploaded by a creator, newest first."),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Wallet address of the creator"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of items per page (default: 12, max: 100)"),
		),
	), s.handleListCreatorContent)

	s.mcpServer.AddTool(mcp.NewTool("get_user",
		mcp.WithDescription("Get a user's public profile and activity statistics."),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Wallet address of the user"),
		),
	), s.handleGetUser)

	s.mcpServer.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription(
			"Get personalized content recommendations with a score and reason for each item. "+
				"Requires authentication."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of recommendations to return (default: 10, max: 50)"),
		),
	), s.handleGetRecommendations)

	s.mcpServer.AddTool(mcp.NewTool("record_interaction",
		mcp.WithDescription(
			"Record an interaction with a piece of content. This affects your personalized "+
				"recommendations. Requires authentication."),
		mcp.WithString("content_id",
			mcp.Required(),
			mcp.Description("The ID of the content"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Kind of interaction to record"),
			mcp.Enum("view", "like", "share", "bookmark"),
		),
	), s.handleRecordInteraction)

	s.mcpServer.AddTool(mcp.NewTool("get_storage_status",
		mcp.WithDescription("Get the status of the Walrus storage network backing ContentVault."),
	), s.handleGetStorageStatus)
}

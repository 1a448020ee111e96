package server

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/BotGJ16/ContentVault/cmd/mcp/client"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

var recordableInteractions = []domain.InteractionType{
	domain.InteractionTypeView,
	domain.InteractionTypeLike,
	domain.InteractionTypeShare,
	domain.InteractionTypeBookmark,
}

func (s *Server) handleSearchContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters := parseSearchFilters(request.GetArguments())

	page, err := s.client.SearchContent(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search content: %v", err)), nil
	}

	return formatContentPageResult(page)
}

func parseSearchFilters(args map[string]any) client.SearchFilters {
	var filters client.SearchFilters

	if search, ok := args["search"].(string); ok {
		filters.Search = strings.TrimSpace(search)
	}
	if category, ok := args["category"].(string); ok && category != "all" {
		filters.Category = category
	}
	if creator, ok := args["creator"].(string); ok {
		filters.Creator = strings.TrimSpace(creator)
	}
	if sortBy, ok := args["sort_by"].(string); ok {
		filters.SortBy = sortBy
	}
	filters.Page, filters.PageSize = parsePagination(args)

	return filters
}

func (s *Server) handleListFeatured(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	items, err := s.client.ListFeatured(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list featured content: %v", err)), nil
	}

	return formatContentItemsResult(items)
}

func (s *Server) handleListTrending(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	items, err := s.client.ListTrending(ctx, parseLimit(request.GetArguments()))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list trending content: %v", err)), nil
	}

	return formatContentItemsResult(items)
}

func (s *Server) handleGetContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	contentID, ok := requiredString(request.GetArguments(), "content_id")
	if !ok {
		return mcp.NewToolResultError("content_id is required"), nil
	}

	content, err := s.client.GetContent(ctx, contentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get content: %v", err)), nil
	}

	return formatJSONResult(content)
}

func (s *Server) handleGetSimilarContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	contentID, ok := requiredString(args, "content_id")
	if !ok {
		return mcp.NewToolResultError("content_id is required"), nil
	}

	items, err := s.client.GetSimilarContent(ctx, contentID, parseLimit(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get similar content: %v", err)), nil
	}

	return formatContentItemsResult(items)
}

func (s *Server) handleListCreatorContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	address, ok := requiredString(args, "address")
	if !ok {
		return mcp.NewToolResultError("address is required"), nil
	}

	page, pageSize := parsePagination(args)
	result, err := s.client.ListCreatorContent(ctx, address, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list creator content: %v", err)), nil
	}

	return formatContentPageResult(result)
}

func (s *Server) handleGetUser(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	address, ok := requiredString(request.GetArguments(), "address")
	if !ok {
		return mcp.NewToolResultError("address is required"), nil
	}

	user, err := s.client.GetUser(ctx, address)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get user: %v", err)), nil
	}

	return formatJSONResult(user)
}

func (s *Server) handleGetRecommendations(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	items, err := s.client.GetRecommendations(ctx, parseLimit(request.GetArguments()))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get recommendations: %v", err)), nil
	}

	if len(items) == 0 {
		return mcp.NewToolResultText("No recommendations available yet."), nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format recommendations: %v", err)), nil
	}

	msg := fmt.Sprintf("Found %d recommendation(s):\n\n%s", len(items), string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleRecordInteraction(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	contentID, ok := requiredString(args, "content_id")
	if !ok {
		return mcp.NewToolResultError("content_id is required"), nil
	}

	rawType, _ := requiredString(args, "type")
	interactionType := domain.InteractionType(strings.ToLower(rawType))
	if !slices.Contains(recordableInteractions, interactionType) {
		return mcp.NewToolResultError("type must be 'view', 'like', 'share', or 'bookmark'"), nil
	}

	if err := s.client.RecordInteraction(ctx, contentID, interactionType); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record interaction: %v", err)), nil
	}

	msg := fmt.Sprintf("Recorded '%s' on content %s", interactionType, contentID)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleGetStorageStatus(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	status, err := s.client.StorageStatus(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get storage status: %v", err)), nil
	}

	return formatJSONResult(status)
}

func requiredString(args map[string]any, name string) (string, bool) {
	v, ok := args[name].(string)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func parseLimit(args map[string]any) int {
	if l, ok := args["limit"].(float64); ok && l > 0 {
		return min(int(l), maxLimit)
	}
	return defaultLimit
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1
	pageSize = defaultPageSize

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), maxPageSize)
	}
	return page, pageSize
}

func formatContentItemsResult(items []domain.Content) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No content found."), nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format content: %v", err)), nil
	}

	msg := fmt.Sprintf("Found %d item(s):\n\n%s", len(items), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatContentPageResult(page client.ContentPage) (*mcp.CallToolResult, error) {
	if len(page.Data) == 0 {
		return mcp.NewToolResultText("No content found."), nil
	}

	data, err := json.MarshalIndent(page.Data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format content: %v", err)), nil
	}

	msg := fmt.Sprintf("Page %d of %d (%d total):\n\n%s",
		page.Metadata.CurrentPage, page.Metadata.TotalPages, page.Metadata.Total, string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

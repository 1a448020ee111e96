package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const contentURIPrefix = "content://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			contentURIPrefix+"{content_id}",
			"Individual content item from the ContentVault catalogue",
			mcp.WithTemplateDescription(
				"Fetch a content item by its ID. Includes title, description, "+
					"creator address, type, price, tags and access statistics. "+
					"The content itself is not included."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleContentResource,
	)
}

func (s *Server) handleContentResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	contentID, err := contentIDFromURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := s.client.GetContent(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content %s: %w", contentID, err)
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func contentIDFromURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, contentURIPrefix) {
		return "", fmt.Errorf("invalid content URI format: %s", uri)
	}

	contentID := strings.TrimPrefix(uri, contentURIPrefix)
	if contentID == "" {
		return "", fmt.Errorf("missing content_id in URI: %s", uri)
	}
	return contentID, nil
}

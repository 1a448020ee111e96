package pinecone

import (
	"context"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarityRepository = (*Client)(nil)

const maxTopK = 10000

// Client stores content feature vectors in a Pinecone index whose dimension
// matches domain.FeatureVectorLength. Vector IDs are content IDs.
type Client struct {
	pinecone  *pinecone.Client
	index     *pinecone.Index
	namespace string
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
	namespace string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone:  pc,
		index:     idx,
		namespace: namespace,
	}, nil
}

func (c *Client) IndexContentVector(ctx context.Context, content domain.Content, vector []float64) error {
	metadata, err := structpb.NewStruct(map[string]any{
		"content_id":      content.ID,
		"type":            string(content.Type),
		"creator_address": content.CreatorAddress,
	})
	if err != nil {
		return fmt.Errorf("creating vector metadata: %w", err)
	}

	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       content.ID,
		Values:   toFloat32(vector),
		Metadata: metadata,
	}})
	if err != nil {
		return fmt.Errorf("upserting vector for content [%s]: %w", content.ID, err)
	}
	return nil
}

func (c *Client) ListSimilarContent(
	ctx context.Context,
	excludeIDs []string,
	vector []float64,
	limit int,
) ([]domain.SimilarContent, error) {
	if limit > maxTopK {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if limit <= 0 || len(vector) == 0 {
		return nil, nil
	}

	filter, err := createExclusionFilter(excludeIDs)
	if err != nil {
		return nil, err
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          toFloat32(vector),
		TopK:            uint32(limit), //nolint:gosec // bounds checked above
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	results := make([]domain.SimilarContent, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		if match == nil || match.Vector == nil {
			continue
		}
		results = append(results, domain.SimilarContent{
			ContentID: match.Vector.Id,
			Score:     float64(match.Score),
		})
	}
	return results, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: c.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func createExclusionFilter(excludeIDs []string) (*pinecone.MetadataFilter, error) {
	if len(excludeIDs) == 0 {
		return nil, nil
	}

	excluded := make([]any, 0, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded = append(excluded, id)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"content_id": map[string]any{
			"$nin": excluded,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

func toFloat32(vector []float64) []float32 {
	out := make([]float32, len(vector))
	for i, v := range vector {
		out[i] = float32(v)
	}
	return out
}

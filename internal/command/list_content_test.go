package command

import (
	"errors"
	"testing"

	"github.com/BotGJ16/ContentVault/internal/datasources/mocks"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewContentPage(t *testing.T) {
	cases := []struct {
		name           string
		total          int64
		page, pageSize int
		wantTotalPages int
		wantHasMore    bool
	}{
		{name: "empty", total: 0, page: 1, pageSize: 12, wantTotalPages: 0, wantHasMore: false},
		{name: "single_partial_page", total: 5, page: 1, pageSize: 12, wantTotalPages: 1, wantHasMore: false},
		{name: "exact_pages", total: 24, page: 1, pageSize: 12, wantTotalPages: 2, wantHasMore: true},
		{name: "last_page", total: 25, page: 3, pageSize: 12, wantTotalPages: 3, wantHasMore: false},
		{name: "middle_page", total: 25, page: 2, pageSize: 12, wantTotalPages: 3, wantHasMore: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := newContentPage(nil, tc.total, tc.page, tc.pageSize)
			assert.Equal(t, tc.wantTotalPages, page.TotalPages)
			assert.Equal(t, tc.wantHasMore, page.HasMore)
			assert.Equal(t, tc.page, page.CurrentPage)
			assert.Equal(t, tc.total, page.Total)
			assert.NotNil(t, page.Data)
		})
	}
}

func TestListContent_Execute(t *testing.T) {
	filters := domain.ContentFilters{Type: domain.ContentTypeVideo, Search: "cats"}
	options := domain.ContentListOptions{Ordering: domain.ContentOrderingPopular, Page: 2, PageSize: 12}
	contents := []domain.Content{{ID: "c1"}, {ID: "c2"}}

	t.Run("returns_page", func(t *testing.T) {
		lister := mocks.NewMockContentLister(t)
		counter := mocks.NewMockContentCounter(t)

		lister.EXPECT().ListContent(mock.Anything, filters, options).Return(contents, nil)
		counter.EXPECT().CountContent(mock.Anything, filters).Return(int64(26), nil)

		page, err := NewListContent(lister, counter).Execute(testContext(), ListContentRequest{
			Filters: filters,
			Options: options,
		})
		require.NoError(t, err)

		assert.Equal(t, ContentPage{
			Data:        contents,
			Total:       26,
			TotalPages:  3,
			CurrentPage: 2,
			HasMore:     true,
		}, page)
	})

	t.Run("list_error", func(t *testing.T) {
		lister := mocks.NewMockContentLister(t)
		counter := mocks.NewMockContentCounter(t)

		lister.EXPECT().ListContent(mock.Anything, filters, options).Return(nil, errors.New("database error"))

		_, err := NewListContent(lister, counter).Execute(testContext(), ListContentRequest{
			Filters: filters,
			Options: options,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing content")
	})

	t.Run("count_error", func(t *testing.T) {
		lister := mocks.NewMockContentLister(t)
		counter := mocks.NewMockContentCounter(t)

		lister.EXPECT().ListContent(mock.Anything, filters, options).Return(contents, nil)
		counter.EXPECT().CountContent(mock.Anything, filters).Return(int64(0), errors.New("database error"))

		_, err := NewListContent(lister, counter).Execute(testContext(), ListContentRequest{
			Filters: filters,
			Options: options,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "counting content")
	})
}

func TestListFeaturedContent_Execute(t *testing.T) {
	lister := mocks.NewMockContentLister(t)
	featured := []domain.Content{{ID: "f1", IsFeatured: true}}

	lister.EXPECT().
		ListContent(mock.Anything,
			domain.ContentFilters{FeaturedOnly: true},
			domain.ContentListOptions{Ordering: domain.ContentOrderingPopular, Page: 1, PageSize: 8},
		).
		Return(featured, nil)

	cmd := &ListFeaturedContent{Lister: lister}
	result, err := cmd.Execute(testContext(), Empty{})
	require.NoError(t, err)
	assert.Equal(t, featured, result)
}

func TestListPurchasedContent_Execute(t *testing.T) {
	t.Run("keeps_purchase_order_and_skips_deleted", func(t *testing.T) {
		purchases := mocks.NewMockPurchasedContentLister(t)
		lister := mocks.NewMockContentLister(t)

		purchases.EXPECT().CountPurchasedContent(mock.Anything, "0xbuyer").Return(int64(3), nil)
		purchases.EXPECT().
			ListPurchasedContentIDs(mock.Anything, "0xbuyer", 1, 12).
			Return([]string{"newest", "deleted", "oldest"}, nil)
		lister.EXPECT().
			ListContent(mock.Anything,
				domain.ContentFilters{IDs: []string{"newest", "deleted", "oldest"}},
				domain.ContentListOptions{Page: 1, PageSize: 3},
			).
			Return([]domain.Content{{ID: "oldest"}, {ID: "newest"}}, nil)

		page, err := NewListPurchasedContent(purchases, lister).Execute(testContext(), ListPurchasedContentRequest{
			UserAddress: "0xbuyer",
			Page:        1,
			PageSize:    12,
		})
		require.NoError(t, err)

		assert.Equal(t, []domain.Content{{ID: "newest"}, {ID: "oldest"}}, page.Data)
		assert.Equal(t, int64(3), page.Total)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasMore)
	})

	t.Run("no_purchases", func(t *testing.T) {
		purchases := mocks.NewMockPurchasedContentLister(t)
		lister := mocks.NewMockContentLister(t)

		purchases.EXPECT().CountPurchasedContent(mock.Anything, "0xbuyer").Return(int64(0), nil)
		purchases.EXPECT().ListPurchasedContentIDs(mock.Anything, "0xbuyer", 1, 12).Return(nil, nil)

		page, err := NewListPurchasedContent(purchases, lister).Execute(testContext(), ListPurchasedContentRequest{
			UserAddress: "0xbuyer",
			Page:        1,
			PageSize:    12,
		})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.NotNil(t, page.Data)
	})
}

func TestGetContent_Execute(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().FetchContent(mock.Anything, "missing").Return(domain.Content{}, domain.ErrContentNotFound)

	_, err := (&GetContent{Fetcher: fetcher}).Execute(testContext(), "missing")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

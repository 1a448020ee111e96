package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagHash(t *testing.T) {
	cases := []struct {
		tag      string
		expected int64
	}{
		{tag: "", expected: 0},
		{tag: "a", expected: 97},
		{tag: "ab", expected: 3105},
		{tag: "nft", expected: 108988},
		{tag: "photography", expected: 1671674269},
		// Wraps negative, so the absolute value is taken.
		{tag: "music video", expected: 211933504},
		{tag: "artwork", expected: 731949068},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.expected, TagHash(tc.tag))
		})
	}
}

func TestPriceBucket(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		expected int
	}{
		{name: "free", price: 0, expected: 0},
		{name: "low", price: 0.005, expected: 1},
		{name: "medium_lower_edge", price: 0.01, expected: 2},
		{name: "medium", price: 0.05, expected: 2},
		{name: "high_lower_edge", price: 0.1, expected: 3},
		{name: "high", price: 4, expected: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PriceBucket(tc.price))
		})
	}
}

func TestExtractContentFeatures(t *testing.T) {
	cases := []struct {
		name          string
		content       Content
		expectedType  int
		expectedPrice int
		expectedTags  map[int]float64
		expectedRep   float64
	}{
		{
			name:          "free_image_without_tags",
			content:       Content{Type: ContentTypeImage},
			expectedType:  0,
			expectedPrice: 4,
		},
		{
			name:          "video_medium_price",
			content:       Content{Type: ContentTypeVideo, Price: 0.05},
			expectedType:  1,
			expectedPrice: 6,
		},
		{
			name:          "audio_low_price_with_tags",
			content:       Content{Type: ContentTypeAudio, Price: 0.001, Tags: []string{"a", "ab"}},
			expectedType:  2,
			expectedPrice: 5,
			expectedTags:  map[int]float64{8 + 5: 1, 8 + 69: 1},
		},
		{
			name:          "repeated_tags_accumulate",
			content:       Content{Type: ContentTypeDocument, Price: 1, Tags: []string{"nft", "nft"}},
			expectedType:  3,
			expectedPrice: 7,
			expectedTags:  map[int]float64{8 + 60: 2},
		},
		{
			name:          "unknown_type_maps_to_first_slot",
			content:       Content{Type: "hologram"},
			expectedType:  0,
			expectedPrice: 4,
		},
		{
			name:          "reputation_scales_with_earnings",
			content:       Content{Type: ContentTypeImage, TotalEarnings: 2.5},
			expectedType:  0,
			expectedPrice: 4,
			expectedRep:   0.25,
		},
		{
			name:          "reputation_is_capped",
			content:       Content{Type: ContentTypeImage, TotalEarnings: 250},
			expectedType:  0,
			expectedPrice: 4,
			expectedRep:   1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			features := ExtractContentFeatures(tc.content)
			require.Len(t, features, FeatureVectorLength)

			var typeOnes, priceOnes int
			for i := 0; i < 4; i++ {
				if features[i] == 1 {
					typeOnes++
				}
				if features[4+i] == 1 {
					priceOnes++
				}
			}
			assert.Equal(t, 1, typeOnes, "exactly one type slot set")
			assert.Equal(t, 1, priceOnes, "exactly one price slot set")
			assert.Equal(t, 1.0, features[tc.expectedType])
			assert.Equal(t, 1.0, features[tc.expectedPrice])

			for i := 8; i < 99; i++ {
				assert.Equal(t, tc.expectedTags[i], features[i], "tag slot %d", i)
			}
			assert.InDelta(t, tc.expectedRep, features[99], 1e-9)
		})
	}
}

func TestExtractUserFeatures(t *testing.T) {
	t.Run("empty_history_is_zero_vector", func(t *testing.T) {
		features := ExtractUserFeatures(nil)
		require.Len(t, features, FeatureVectorLength)
		for i, v := range features {
			assert.Zero(t, v, "slot %d", i)
		}
	})

	t.Run("aggregates_counts_and_preferences", func(t *testing.T) {
		interactions := []Interaction{
			{Type: InteractionTypeView, ContentType: ContentTypeImage, ContentPrice: 0},
			{Type: InteractionTypeLike, ContentType: ContentTypeImage, ContentPrice: 0},
			{Type: InteractionTypePurchase, ContentType: ContentTypeVideo, ContentPrice: 0.5},
			{Type: InteractionTypeTip, ContentType: ContentTypeVideo, ContentPrice: 0.05},
			{Type: InteractionTypeBookmark, ContentType: ContentTypeDocument, ContentPrice: 0.005},
			{Type: "mystery", ContentType: "", ContentPrice: 0},
		}

		features := ExtractUserFeatures(interactions)
		require.Len(t, features, FeatureVectorLength)

		// view, like, purchase, tip, share
		assert.InDelta(t, 0.01, features[0], 1e-9)
		assert.InDelta(t, 0.01, features[1], 1e-9)
		assert.InDelta(t, 0.01, features[2], 1e-9)
		assert.InDelta(t, 0.01, features[3], 1e-9)
		assert.Zero(t, features[4])

		// image (1+3)/2, video (10+8)/2, audio none, document 4
		assert.InDelta(t, 2.0, features[5], 1e-9)
		assert.InDelta(t, 9.0, features[6], 1e-9)
		assert.Zero(t, features[7])
		assert.InDelta(t, 4.0, features[8], 1e-9)
		for i := 9; i < 95; i++ {
			assert.Zero(t, features[i], "reserved slot %d", i)
		}

		// free (1+3+1)/3, low 4, medium 8, high 10
		assert.InDelta(t, 5.0/3.0, features[95], 1e-9)
		assert.InDelta(t, 4.0, features[96], 1e-9)
		assert.InDelta(t, 8.0, features[97], 1e-9)
		assert.InDelta(t, 10.0, features[98], 1e-9)

		assert.InDelta(t, 0.006, features[99], 1e-9)
	})

	t.Run("counts_and_activity_are_capped", func(t *testing.T) {
		interactions := make([]Interaction, 1500)
		for i := range interactions {
			interactions[i] = Interaction{Type: InteractionTypeView, ContentType: ContentTypeAudio}
		}

		features := ExtractUserFeatures(interactions)
		assert.Equal(t, 1.0, features[0])
		assert.Equal(t, 1.0, features[7])
		assert.Equal(t, 1.0, features[99])
	})
}

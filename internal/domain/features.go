package domain

import (
	"math"
	"slices"
	"unicode/utf16"
)

// FeatureVectorLength is the width of both content and user feature vectors.
const FeatureVectorLength = 100

// Content vector layout.
const (
	contentTypeOffset  = 0
	priceBucketOffset  = 4
	tagOffset          = 8
	tagBuckets         = 92
	reputationIndex    = 99
	reputationEarnings = 10.0
)

// User vector layout. Slots 9-94 of the type preference region are reserved and stay zero.
const (
	interactionCountOffset = 0
	interactionCountCap    = 100.0
	typePreferenceOffset   = 5
	pricePreferenceOffset  = 95
	activityIndex          = 99
	activityCap            = 1000.0
)

var countedInteractionTypes = []InteractionType{
	InteractionTypeView,
	InteractionTypeLike,
	InteractionTypePurchase,
	InteractionTypeTip,
	InteractionTypeShare,
}

// PriceBucket places a price into one of four buckets: free, <0.01, <0.1, and the rest.
func PriceBucket(price float64) int {
	switch {
	case price == 0:
		return 0
	case price < 0.01:
		return 1
	case price < 0.1:
		return 2
	default:
		return 3
	}
}

// ContentTypeIndex returns the position of t in ValidContentTypes, or -1.
func ContentTypeIndex(t ContentType) int {
	return slices.Index(ValidContentTypes, t)
}

// TagHash is a 31-multiplier rolling hash over UTF-16 code units, wrapped to a
// signed 32-bit integer and made non-negative.
func TagHash(tag string) int64 {
	var h int32
	for _, unit := range utf16.Encode([]rune(tag)) {
		h = h*31 + int32(unit)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// ExtractContentFeatures encodes content type, price bucket, hashed tags and
// creator earnings into a fixed-length vector.
func ExtractContentFeatures(c Content) []float64 {
	features := make([]float64, FeatureVectorLength)

	typeIdx := ContentTypeIndex(c.Type)
	if typeIdx < 0 {
		typeIdx = 0
	}
	features[contentTypeOffset+typeIdx] = 1

	features[priceBucketOffset+PriceBucket(c.Price)] = 1

	for _, tag := range c.Tags {
		features[tagOffset+int(TagHash(tag)%tagBuckets)]++
	}

	features[reputationIndex] = math.Min(c.TotalEarnings/reputationEarnings, 1)

	return features
}

// ExtractUserFeatures aggregates an interaction history into a fixed-length vector.
// An empty history gives the zero vector.
func ExtractUserFeatures(interactions []Interaction) []float64 {
	features := make([]float64, FeatureVectorLength)
	if len(interactions) == 0 {
		return features
	}

	for _, interaction := range interactions {
		if idx := slices.Index(countedInteractionTypes, interaction.Type); idx >= 0 {
			features[interactionCountOffset+idx]++
		}
	}
	for i := range countedInteractionTypes {
		features[interactionCountOffset+i] = math.Min(features[interactionCountOffset+i]/interactionCountCap, 1)
	}

	typePrefs := averageWeights(interactions, len(ValidContentTypes), func(i Interaction) int {
		return ContentTypeIndex(i.ContentType)
	})
	copy(features[typePreferenceOffset:], typePrefs)

	pricePrefs := averageWeights(interactions, 4, func(i Interaction) int {
		return PriceBucket(i.ContentPrice)
	})
	copy(features[pricePreferenceOffset:], pricePrefs)

	features[activityIndex] = math.Min(float64(len(interactions))/activityCap, 1)

	return features
}

// averageWeights groups interactions into buckets and returns the mean interaction
// weight per bucket. Interactions whose bucket is negative are ignored.
func averageWeights(interactions []Interaction, buckets int, bucketOf func(Interaction) int) []float64 {
	sums := make([]float64, buckets)
	counts := make([]int, buckets)

	for _, interaction := range interactions {
		b := bucketOf(interaction)
		if b < 0 || b >= buckets {
			continue
		}
		sums[b] += interaction.Type.Weight()
		counts[b]++
	}

	for b := range sums {
		if counts[b] > 0 {
			sums[b] /= float64(counts[b])
		}
	}
	return sums
}

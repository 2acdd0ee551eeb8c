// Package usecase defines the application use case interfaces and their
// input/output documents.
package usecase

import (
	"context"
	"strings"
)

// DiscoverInput carries the validated inputs of a discovery request.
type DiscoverInput struct {
	SitterID      int64
	StreetAddress string
	City          string
	Postcode      string
}

// Address builds the free-form lookup string sent to the geocoder.
func (in *DiscoverInput) Address() string {
	return strings.Join([]string{in.StreetAddress, in.City, in.Postcode}, ", ")
}

// ReviewSummary is one review entry in the aggregated profile. No reviewer
// photo is available upstream, so the field is always null.
type ReviewSummary struct {
	ReviewerName string  `json:"reviewer_name"`
	ReviewerImg  *string `json:"reviewer_img"`
	Rating       int     `json:"rating"`
	Comment      string  `json:"comment"`
}

// AggregatedProfile is the discovery response document consumed by the mobile
// client. It is derived per request and never persisted; field names are fixed
// by the mobile contract.
type AggregatedProfile struct {
	SitterID             int64           `json:"sitter_id"`
	SitterName           string          `json:"sitter_name"`
	MainImg              *string         `json:"main_img"`
	AverageRating        int             `json:"average_rating"`
	StartDate            *string         `json:"start_date"`
	EndDate              *string         `json:"end_date"`
	SelectedPets         []string        `json:"selected_pets"`
	Distance             float64         `json:"distance"`
	ServiceTier          string          `json:"service_tier"`
	RelevancyScore       float64         `json:"relevancy_score"`
	SitterSubscription   string          `json:"sitter_subscription"`
	SitterExperience     int             `json:"sitter_experience"`
	SitterImages         []string        `json:"sitter_images"`
	SitterPersonality    string          `json:"sitter_personality"`
	SitterCertifications []string        `json:"sitter_certifications"`
	SitterReviews        []ReviewSummary `json:"sitter_reviews"`
	SupportedPets        []string        `json:"supported_pets"`
	RateNegotiable       bool            `json:"rate_negotiable"`
}

// DiscoveryUsecase defines the interface for the sitter discovery aggregation.
type DiscoveryUsecase interface {
	// Discover resolves the requester's address, aggregates the sitter's
	// relational data and returns the merged profile document.
	Discover(ctx context.Context, input *DiscoverInput) (*AggregatedProfile, error)
}

// internal/models/revenue.go
package models

// RevenueSplit allocates a completed module sale. The three amounts always sum to the sale total.
type RevenueSplit struct {
	CreatorAmount   int64 `json:"creatorAmount"`
	CommunityAmount int64 `json:"communityAmount"`
	PlatformAmount  int64 `json:"platformAmount"`
}

// Total returns the sum of the three shares.
func (s RevenueSplit) Total() int64 {
	return s.CreatorAmount + s.CommunityAmount + s.PlatformAmount
}

// SponsorshipFee is the two-way split applied to need-sponsorship checkouts.
type SponsorshipFee struct {
	PlatformFee int64 `json:"platformFee"`
	NetAmount   int64 `json:"netAmount"`
}

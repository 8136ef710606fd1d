// internal/pricing/revenue/revenue.go
package revenue

import (
	"errors"
	"fmt"

	"marketplace-workers/internal/models"

	"github.com/shopspring/decimal"
)

var ErrSplitMismatch = errors.New("revenue split does not add up to the sale total")

// Policy holds the share fractions. Platform always receives the remainder.
type Policy struct {
	CreatorShare          decimal.Decimal
	CommunityShare        decimal.Decimal
	DonatedCommunityShare decimal.Decimal
	SponsorshipFeeRate    decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		CreatorShare:          decimal.New(20, -2),
		CommunityShare:        decimal.New(50, -2),
		DonatedCommunityShare: decimal.New(80, -2),
		SponsorshipFeeRate:    decimal.New(15, -2),
	}
}

// Distribute splits a completed sale with the default policy.
func Distribute(total int64, isPlatformModule, creatorDonates bool) models.RevenueSplit {
	return DefaultPolicy().Distribute(total, isPlatformModule, creatorDonates)
}

// Distribute splits total between creator, community and platform.
// Creator and community shares are rounded and platform takes the exact remainder.
func (p Policy) Distribute(total int64, isPlatformModule, creatorDonates bool) models.RevenueSplit {
	if isPlatformModule {
		return models.RevenueSplit{PlatformAmount: total}
	}

	amount := decimal.NewFromInt(total)
	var split models.RevenueSplit
	if creatorDonates {
		split.CommunityAmount = share(amount, p.DonatedCommunityShare)
	} else {
		split.CreatorAmount = share(amount, p.CreatorShare)
		split.CommunityAmount = share(amount, p.CommunityShare)
	}
	split.PlatformAmount = total - split.CreatorAmount - split.CommunityAmount
	return split
}

// SponsorshipFee applies the need-sponsorship platform fee with the default policy.
func SponsorshipFee(amount int64) models.SponsorshipFee {
	return DefaultPolicy().SponsorshipFee(amount)
}

func (p Policy) SponsorshipFee(amount int64) models.SponsorshipFee {
	fee := share(decimal.NewFromInt(amount), p.SponsorshipFeeRate)
	return models.SponsorshipFee{PlatformFee: fee, NetAmount: amount - fee}
}

// Check verifies that split conserves total and has no negative share.
func Check(split models.RevenueSplit, total int64) error {
	if split.Total() != total {
		return fmt.Errorf("%w: %d != %d", ErrSplitMismatch, split.Total(), total)
	}
	if split.CreatorAmount < 0 || split.CommunityAmount < 0 || split.PlatformAmount < 0 {
		return fmt.Errorf("%w: negative share in %+v", ErrSplitMismatch, split)
	}
	return nil
}

func share(amount, fraction decimal.Decimal) int64 {
	return amount.Mul(fraction).Round(0).IntPart()
}

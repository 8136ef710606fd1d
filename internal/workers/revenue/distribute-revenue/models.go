// internal/workers/revenue/distribute-revenue/models.go
package distributerevenue

import (
	"time"

	"marketplace-workers/internal/models"
)

const (
	EventRevenueDistributed = "revenue.distributed"

	OwnerCreator   = "creator"
	OwnerCommunity = "community"
)

type Input struct {
	PaymentID        string `json:"paymentId"`
	ModuleID         string `json:"moduleId"`
	CreatorID        string `json:"creatorId"`
	CommunityID      string `json:"communityId"`
	TotalAmount      int64  `json:"totalAmount"`
	IsPlatformModule bool   `json:"isPlatformModule"`
	CreatorDonates   bool   `json:"creatorDonates"`
}

type Output struct {
	DistributionID   string              `json:"distributionId"`
	Split            models.RevenueSplit `json:"split"`
	AlreadyProcessed bool                `json:"alreadyProcessed"`
}

// DistributedEvent is published after a split has been credited.
type DistributedEvent struct {
	DistributionID string              `json:"distributionId"`
	PaymentID      string              `json:"paymentId"`
	ModuleID       string              `json:"moduleId"`
	CreatorID      string              `json:"creatorId,omitempty"`
	CommunityID    string              `json:"communityId,omitempty"`
	TotalAmount    int64               `json:"totalAmount"`
	Split          models.RevenueSplit `json:"split"`
	DistributedAt  time.Time           `json:"distributedAt"`
}

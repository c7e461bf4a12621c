package models

import "github.com/shopspring/decimal"

// Platform is the social network a service is delivered on.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
	PlatformX         Platform = "X"
	PlatformFacebook  Platform = "Facebook"
	PlatformTelegram  Platform = "Telegram"
)

// ServiceType is the kind of engagement a service sells.
type ServiceType string

const (
	ServiceTypeFollowers ServiceType = "Followers"
	ServiceTypeLikes     ServiceType = "Likes"
	ServiceTypeViews     ServiceType = "Views"
	ServiceTypeComments  ServiceType = "Comments"
	ServiceTypeShares    ServiceType = "Shares"
)

// Service is an immutable catalog offering. Rates are quoted per 1000 units.
type Service struct {
	ID            string          `json:"id"`
	Platform      Platform        `json:"platform"`
	Type          ServiceType     `json:"type"`
	Name          string          `json:"name"`
	RatePer1000   decimal.Decimal `json:"rate_per_1000"`
	Min           int             `json:"min"`
	Max           int             `json:"max"`
	Description   string          `json:"description"`
	EstimatedTime string          `json:"estimated_time"`
}

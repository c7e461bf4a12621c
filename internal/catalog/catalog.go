// Package catalog holds the static service catalog and the pure filtering rules over it.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"socialgrowth/internal/models"
)

// All is the selector value that disables a platform or type filter.
const All = "all"

var services = []models.Service{
	{
		ID:            "1",
		Platform:      models.PlatformInstagram,
		Type:          models.ServiceTypeFollowers,
		Name:          "Instagram Followers [Real & Active]",
		RatePer1000:   decimal.RequireFromString("2.50"),
		Min:           100,
		Max:           50000,
		Description:   "High quality followers with profile pictures and posts. Low drop rate.",
		EstimatedTime: "1-6 Hours",
	},
	{
		ID:            "2",
		Platform:      models.PlatformInstagram,
		Type:          models.ServiceTypeLikes,
		Name:          "Instagram Likes [Fast Speed]",
		RatePer1000:   decimal.RequireFromString("0.80"),
		Min:           50,
		Max:           100000,
		Description:   "Instant start. High speed delivery.",
		EstimatedTime: "5-30 Minutes",
	},
	{
		ID:            "7",
		Platform:      models.PlatformInstagram,
		Type:          models.ServiceTypeViews,
		Name:          "Instagram Reels Views [Viral Boost]",
		RatePer1000:   decimal.RequireFromString("0.05"),
		Min:           1000,
		Max:           10000000,
		Description:   "Instant views to boost your reels algorithm reach.",
		EstimatedTime: "Instant",
	},
	{
		ID:            "3",
		Platform:      models.PlatformTikTok,
		Type:          models.ServiceTypeViews,
		Name:          "TikTok Views [High Retention]",
		RatePer1000:   decimal.RequireFromString("0.15"),
		Min:           500,
		Max:           1000000,
		Description:   "Boost your TikTok reach with high retention views.",
		EstimatedTime: "Instant",
	},
	{
		ID:            "4",
		Platform:      models.PlatformTikTok,
		Type:          models.ServiceTypeFollowers,
		Name:          "TikTok Followers [Premium]",
		RatePer1000:   decimal.RequireFromString("3.20"),
		Min:           100,
		Max:           20000,
		Description:   "Organic-looking followers from worldwide locations.",
		EstimatedTime: "2-12 Hours",
	},
	{
		ID:            "8",
		Platform:      models.PlatformTikTok,
		Type:          models.ServiceTypeLikes,
		Name:          "TikTok Likes [Stable]",
		RatePer1000:   decimal.RequireFromString("1.10"),
		Min:           100,
		Max:           50000,
		Description:   "Permanent likes for your TikTok videos.",
		EstimatedTime: "1 Hour",
	},
	{
		ID:            "5",
		Platform:      models.PlatformYouTube,
		Type:          models.ServiceTypeFollowers,
		Name:          "YouTube Subscribers [Non-Drop]",
		RatePer1000:   decimal.RequireFromString("15.00"),
		Min:           50,
		Max:           10000,
		Description:   "Subscribers with 30-day refill guarantee.",
		EstimatedTime: "1-3 Days",
	},
	{
		ID:            "9",
		Platform:      models.PlatformYouTube,
		Type:          models.ServiceTypeViews,
		Name:          "YouTube Views [Ads Quality]",
		RatePer1000:   decimal.RequireFromString("4.50"),
		Min:           500,
		Max:           500000,
		Description:   "Safe, high-quality views for monetization safety.",
		EstimatedTime: "12 Hours",
	},
	{
		ID:            "6",
		Platform:      models.PlatformX,
		Type:          models.ServiceTypeFollowers,
		Name:          "X Followers [Verified Quality]",
		RatePer1000:   decimal.RequireFromString("5.50"),
		Min:           100,
		Max:           5000,
		Description:   "High quality X followers to boost your social proof.",
		EstimatedTime: "12-24 Hours",
	},
	{
		ID:            "10",
		Platform:      models.PlatformX,
		Type:          models.ServiceTypeLikes,
		Name:          "X Likes [Instant]",
		RatePer1000:   decimal.RequireFromString("1.80"),
		Min:           50,
		Max:           10000,
		Description:   "Get instant likes on your posts.",
		EstimatedTime: "5 Minutes",
	},
	{
		ID:            "11",
		Platform:      models.PlatformTelegram,
		Type:          models.ServiceTypeFollowers,
		Name:          "Telegram Channel Members [Premium]",
		RatePer1000:   decimal.RequireFromString("1.50"),
		Min:           100,
		Max:           100000,
		Description:   "High quality members for your channel or group.",
		EstimatedTime: "1 Hour",
	},
}

// Default returns a copy of the built-in catalog in display order.
func Default() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// Criteria selects a subset of the catalog. Empty or "all" selectors match everything.
type Criteria struct {
	Platform string
	Type     string
	Search   string
}

// Filter returns the services matching c, preserving their order in list.
// The result is never nil.
func Filter(list []models.Service, c Criteria) []models.Service {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]models.Service, 0, len(list))
	for _, s := range list {
		if !selects(c.Platform, string(s.Platform)) || !selects(c.Type, string(s.Type)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Description), search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func selects(selector, value string) bool {
	selector = strings.TrimSpace(selector)
	return selector == "" || strings.EqualFold(selector, All) || selector == value
}

// Find returns the service with the given id.
func Find(list []models.Service, id string) (models.Service, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

// Platforms lists the distinct platforms in first-seen order.
func Platforms(list []models.Service) []models.Platform {
	seen := make(map[models.Platform]struct{})
	var out []models.Platform
	for _, s := range list {
		if _, ok := seen[s.Platform]; ok {
			continue
		}
		seen[s.Platform] = struct{}{}
		out = append(out, s.Platform)
	}
	return out
}

// Types lists the distinct service types in first-seen order.
func Types(list []models.Service) []models.ServiceType {
	seen := make(map[models.ServiceType]struct{})
	var out []models.ServiceType
	for _, s := range list {
		if _, ok := seen[s.Type]; ok {
			continue
		}
		seen[s.Type] = struct{}{}
		out = append(out, s.Type)
	}
	return out
}

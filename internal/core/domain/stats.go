package domain

import "time"

// DashboardStats are the aggregate numbers shown on the ads dashboard.
type DashboardStats struct {
	TotalAds         int64   `json:"total_ads"`
	ActiveAds        int64   `json:"active_ads"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	CTR              float64 `json:"ctr"`
	ExpiringAds      int64   `json:"expiring_ads"`
}

// Totals is a count/impressions/clicks triple for a group of ads.
type Totals struct {
	Count       int64 `json:"count"`
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
}

// Analytics breaks ads scheduled within a period down by type and by
// placement.
type Analytics struct {
	From             time.Time         `json:"from"`
	To               time.Time         `json:"to"`
	TotalAds         int64             `json:"total_ads"`
	ActiveAds        int64             `json:"active_ads"`
	TotalImpressions int64             `json:"total_impressions"`
	TotalClicks      int64             `json:"total_clicks"`
	ByType           map[AdType]Totals `json:"by_type"`
	ByPlacement      map[string]Totals `json:"by_placement"`
}

// CTRPercent returns clicks/impressions*100 rounded to two decimals.
func CTRPercent(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	v := float64(clicks) / float64(impressions) * 100
	return float64(int64(v*100+0.5)) / 100
}

package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
)

// Seed inserts demo placements and ads through the admin repository so it
// works against either store. Existing placement codes are skipped.
func Seed(ctx context.Context, repo port.AdminRepository) error {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	now := time.Now().UTC()

	placements := []domain.Placement{
		{Name: "Header", Code: "header", Type: domain.PlacementHeader, Width: 728, Height: 90},
		{Name: "Sidebar", Code: "sidebar", Type: domain.PlacementSidebar},
		{Name: "Footer", Code: "footer", Type: domain.PlacementFooter, Width: 970, Height: 90},
	}
	for i := range placements {
		p := &placements[i]
		if _, err := repo.GetPlacementByCode(ctx, p.Code); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		p.Active = true
		p.ApplyDefaults()
		if err := repo.CreatePlacement(ctx, p); err != nil {
			return fmt.Errorf("seed placement %s: %w", p.Code, err)
		}

		for j := 1; j <= 4; j++ {
			var content domain.Content
			switch j % 4 {
			case 0:
				content = domain.Banner{ImageURL: fmt.Sprintf("/media/ads/banners/%s-%d.png", p.Code, j)}
			case 1:
				content = domain.Text{Body: fmt.Sprintf("Read more about offer %d", j)}
			case 2:
				content = domain.HTML{Code: fmt.Sprintf("<strong>Offer %d</strong>", j)}
			default:
				content = domain.Video{URL: fmt.Sprintf("https://example.com/video/%d.mp4", j)}
			}
			ad := &domain.Advertisement{
				Title:       fmt.Sprintf("%s ad %d", p.Name, j),
				Placement:   *p,
				Content:     content,
				Link:        fmt.Sprintf("https://example.com/landing/%s/%d", p.Code, j),
				TargetBlank: true,
				NoFollow:    true,
				StartDate:   now.Add(-time.Hour),
				EndDate:     now.AddDate(0, 1, 0),
				Active:      true,
				Priority:    r.IntN(5),
			}
			ad.ApplyDefaults()
			if err := repo.CreateAd(ctx, ad); err != nil {
				return fmt.Errorf("seed ad for %s: %w", p.Code, err)
			}
		}
	}
	return nil
}

package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/core/domain"
)

func ad(id int64, c domain.Content) domain.Advertisement {
	return domain.Advertisement{
		ID:          id,
		Title:       "Spring <sale>",
		Content:     c,
		TargetBlank: true,
		NoFollow:    true,
		Placement:   domain.Placement{Code: "header", Width: 728, Height: 90},
	}
}

func TestVariants(t *testing.T) {
	r := New("")

	tests := []struct {
		name    string
		content domain.Content
		want    []string
	}{
		{"banner", domain.Banner{ImageURL: "/media/a.png"}, []string{`class="ad ad-banner"`, `src="/media/a.png"`, `width="728"`}},
		{"text", domain.Text{Body: "Buy <now>"}, []string{`Buy &lt;now&gt;`}},
		{"html", domain.HTML{Code: "<b>raw</b>"}, []string{"<b>raw</b>"}},
		{"video", domain.Video{URL: "https://cdn.example.com/v.mp4"}, []string{`<source src="https://cdn.example.com/v.mp4"`, `Spring &lt;sale&gt;`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ad(5, tt.content)
			html, err := r.Ad(&a)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, html, w)
			}
			assert.Contains(t, html, `src="/ads/impression/5"`)
			if tt.name != "html" {
				assert.Contains(t, html, `href="/ads/click/5" target="_blank" rel="nofollow sponsored"`)
			}
		})
	}
}

func TestAbsoluteURLs(t *testing.T) {
	r := New("https://ads.example.com/")
	a := ad(9, domain.Banner{ImageURL: "/media/b.png"})

	html, err := r.Ad(&a)
	require.NoError(t, err)
	assert.Contains(t, html, `src="https://ads.example.com/media/b.png"`)
	assert.Contains(t, html, `href="https://ads.example.com/ads/click/9"`)
	assert.Equal(t, "https://ads.example.com/ads/impression/9", r.ImpressionURL(9))

	text := ad(9, domain.Text{Body: "/not/a/url"})
	assert.Equal(t, "/not/a/url", r.ContentURL(&text))
}

func TestLinkAttributesOptional(t *testing.T) {
	a := ad(1, domain.Text{Body: "x"})
	a.TargetBlank, a.NoFollow = false, false

	html, err := New("").Ad(&a)
	require.NoError(t, err)
	assert.NotContains(t, html, "_blank")
	assert.NotContains(t, html, "nofollow")
}

func TestPlacement(t *testing.T) {
	r := New("")

	html, err := r.Placement(nil)
	require.NoError(t, err)
	assert.Equal(t, EmptyPlacement, html)

	html, err = r.Placement([]domain.Advertisement{
		ad(1, domain.Text{Body: "first"}),
		ad(2, domain.Text{Body: "second"}),
	})
	require.NoError(t, err)
	assert.Less(t, strings.Index(html, "first"), strings.Index(html, "second"))
}

func TestMissingContent(t *testing.T) {
	a := domain.Advertisement{ID: 3}
	_, err := New("").Ad(&a)
	assert.Error(t, err)
}

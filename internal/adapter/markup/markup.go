// Package markup renders the HTML embed code for ads. Every variant links
// through the click endpoint and carries an impression pixel.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"kunooz-ads/internal/core/domain"
)

// EmptyPlacement is served when a placement has nothing to show.
const EmptyPlacement = "<!-- no ads -->"

const templates = `
{{define "link"}}href="{{.ClickURL}}"{{if .TargetBlank}} target="_blank"{{end}}{{if .NoFollow}} rel="nofollow sponsored"{{end}}{{end}}
{{define "pixel"}}<img src="{{.ImpressionURL}}" class="ad-impression" width="1" height="1" alt="" style="display:none">{{end}}

{{define "banner"}}<div class="ad ad-banner" data-ad-id="{{.ID}}" data-placement="{{.Placement}}">
<a {{template "link" .}}><img src="{{.Value}}" alt="{{.Title}}" width="{{.Width}}" height="{{.Height}}"></a>
{{template "pixel" .}}
</div>{{end}}

{{define "text"}}<div class="ad ad-text" data-ad-id="{{.ID}}" data-placement="{{.Placement}}">
<a {{template "link" .}}>{{.Value}}</a>
{{template "pixel" .}}
</div>{{end}}

{{define "html"}}<div class="ad ad-html" data-ad-id="{{.ID}}" data-placement="{{.Placement}}">
{{.Trusted}}
{{template "pixel" .}}
</div>{{end}}

{{define "video"}}<div class="ad ad-video" data-ad-id="{{.ID}}" data-placement="{{.Placement}}">
<video width="{{.Width}}" height="{{.Height}}" controls preload="metadata"><source src="{{.Value}}" type="video/mp4"></video>
<a {{template "link" .}}>{{.Title}}</a>
{{template "pixel" .}}
</div>{{end}}
`

// Renderer turns ads into embeddable HTML.
type Renderer struct {
	tmpl *template.Template
	// base is prefixed to tracking and media paths; empty keeps them
	// relative.
	base string
}

// New returns a renderer building URLs under base, for example
// "https://example.com". Pass "" for host-relative URLs.
func New(base string) *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("ads").Parse(templates)),
		base: strings.TrimRight(base, "/"),
	}
}

// WithBase returns a copy of r building URLs under base.
func (r *Renderer) WithBase(base string) *Renderer {
	return &Renderer{tmpl: r.tmpl, base: strings.TrimRight(base, "/")}
}

type view struct {
	ID            int64
	Title         string
	Placement     string
	Value         string
	Trusted       template.HTML
	ClickURL      string
	ImpressionURL string
	TargetBlank   bool
	NoFollow      bool
	Width         int
	Height        int
}

// ClickURL returns the tracked link for ad id.
func (r *Renderer) ClickURL(id int64) string {
	return r.base + "/ads/click/" + strconv.FormatInt(id, 10)
}

// ImpressionURL returns the pixel URL for ad id.
func (r *Renderer) ImpressionURL(id int64) string {
	return r.base + "/ads/impression/" + strconv.FormatInt(id, 10)
}

// ContentURL returns the content value, resolving host-relative media paths
// of banner and video ads against the base.
func (r *Renderer) ContentURL(ad *domain.Advertisement) string {
	v := ad.Content.Value()
	switch ad.Content.(type) {
	case domain.Banner, domain.Video:
		if strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "//") {
			return r.base + v
		}
	}
	return v
}

// Ad renders a single ad.
func (r *Renderer) Ad(ad *domain.Advertisement) (string, error) {
	if ad.Content == nil {
		return "", fmt.Errorf("markup: ad %d has no content", ad.ID)
	}
	v := view{
		ID:            ad.ID,
		Title:         ad.Title,
		Placement:     ad.Placement.Code,
		Value:         r.ContentURL(ad),
		ClickURL:      r.ClickURL(ad.ID),
		ImpressionURL: r.ImpressionURL(ad.ID),
		TargetBlank:   ad.TargetBlank,
		NoFollow:      ad.NoFollow,
		Width:         ad.Placement.Width,
		Height:        ad.Placement.Height,
	}
	if c, ok := ad.Content.(domain.HTML); ok {
		// Raw HTML is authored by admins and served as is.
		v.Trusted = template.HTML(c.Code)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, string(ad.Type()), v); err != nil {
		return "", fmt.Errorf("markup: render ad %d: %w", ad.ID, err)
	}
	return buf.String(), nil
}

// Placement concatenates the markup of ads in order, or returns
// EmptyPlacement when there are none.
func (r *Renderer) Placement(ads []domain.Advertisement) (string, error) {
	if len(ads) == 0 {
		return EmptyPlacement, nil
	}
	var sb strings.Builder
	for i := range ads {
		html, err := r.Ad(&ads[i])
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

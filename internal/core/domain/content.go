package domain

import "fmt"

// AdType is the discriminator of an advertisement's content.
type AdType string

const (
	AdTypeBanner AdType = "banner"
	AdTypeText   AdType = "text"
	AdTypeHTML   AdType = "html"
	AdTypeVideo  AdType = "video"
)

// Content is the type-specific payload of an advertisement. The set of
// implementations is closed: Banner, Text, HTML and Video.
type Content interface {
	Type() AdType
	// Value is the single stored field for the variant.
	Value() string

	sealed()
}

// Banner is an image banner; ImageURL points to the uploaded media.
type Banner struct{ ImageURL string }

// Text is a plain text ad rendered as a link.
type Text struct{ Body string }

// HTML is raw advertiser markup.
type HTML struct{ Code string }

// Video is a video ad played inline.
type Video struct{ URL string }

func (Banner) Type() AdType { return AdTypeBanner }
func (Text) Type() AdType   { return AdTypeText }
func (HTML) Type() AdType   { return AdTypeHTML }
func (Video) Type() AdType  { return AdTypeVideo }

func (c Banner) Value() string { return c.ImageURL }
func (c Text) Value() string   { return c.Body }
func (c HTML) Value() string   { return c.Code }
func (c Video) Value() string  { return c.URL }

func (Banner) sealed() {}
func (Text) sealed()   {}
func (HTML) sealed()   {}
func (Video) sealed()  {}

// NewContent builds the variant for t holding value. An unknown type is an
// error; an empty value is accepted here and rejected by validation.
func NewContent(t AdType, value string) (Content, error) {
	switch t {
	case AdTypeBanner:
		return Banner{ImageURL: value}, nil
	case AdTypeText:
		return Text{Body: value}, nil
	case AdTypeHTML:
		return HTML{Code: value}, nil
	case AdTypeVideo:
		return Video{URL: value}, nil
	}
	return nil, fmt.Errorf("unknown ad type %q", t)
}

// requiredContentMessage is the validation message shown when the variant's
// field is empty.
func requiredContentMessage(t AdType) string {
	switch t {
	case AdTypeBanner:
		return "image is required for banner ads"
	case AdTypeText:
		return "text content is required for text ads"
	case AdTypeHTML:
		return "HTML code is required for HTML ads"
	case AdTypeVideo:
		return "video URL is required for video ads"
	}
	return "content is required"
}

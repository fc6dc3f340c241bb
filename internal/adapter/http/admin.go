package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
)

type placementRequest struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	PlacementType string `json:"placement_type"`
	Description   string `json:"description"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Active        *bool  `json:"active"`
	MaxAds        int    `json:"max_ads"`
	Priority      int    `json:"priority"`
}

func (p placementRequest) toDomain(id int64) *domain.Placement {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return &domain.Placement{
		ID:          id,
		Name:        p.Name,
		Code:        p.Code,
		Type:        domain.PlacementType(p.PlacementType),
		Description: p.Description,
		Width:       p.Width,
		Height:      p.Height,
		Active:      active,
		MaxAds:      p.MaxAds,
		Priority:    p.Priority,
	}
}

type placementResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	PlacementType string    `json:"placement_type"`
	Description   string    `json:"description"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Active        bool      `json:"active"`
	MaxAds        int       `json:"max_ads"`
	Priority      int       `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newPlacementResponse(p *domain.Placement) placementResponse {
	return placementResponse{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		PlacementType: string(p.Type),
		Description:   p.Description,
		Width:         p.Width,
		Height:        p.Height,
		Active:        p.Active,
		MaxAds:        p.MaxAds,
		Priority:      p.Priority,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type adRequest struct {
	Title           string    `json:"title"`
	PlacementID     int64     `json:"placement_id"`
	Placement       string    `json:"placement"`
	AdType          string    `json:"ad_type"`
	Content         string    `json:"content"`
	Link            string    `json:"link"`
	TargetBlank     *bool     `json:"target_blank"`
	NoFollow        *bool     `json:"nofollow"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Active          *bool     `json:"active"`
	Priority        int       `json:"priority"`
	AdvertiserName  string    `json:"advertiser_name"`
	AdvertiserEmail string    `json:"advertiser_email"`
	Notes           string    `json:"notes"`
}

func orTrue(b *bool) bool { return b == nil || *b }

func (a adRequest) toDomain(id int64) *domain.Advertisement {
	// An unknown type leaves Content nil, which validation reports.
	content, _ := domain.NewContent(domain.AdType(a.AdType), a.Content)
	return &domain.Advertisement{
		ID:              id,
		Title:           a.Title,
		Placement:       domain.Placement{ID: a.PlacementID, Code: a.Placement},
		Content:         content,
		Link:            a.Link,
		TargetBlank:     orTrue(a.TargetBlank),
		NoFollow:        orTrue(a.NoFollow),
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		Active:          orTrue(a.Active),
		Priority:        a.Priority,
		AdvertiserName:  a.AdvertiserName,
		AdvertiserEmail: a.AdvertiserEmail,
		Notes:           a.Notes,
	}
}

type adResponse struct {
	ID              int64           `json:"id"`
	UUID            string          `json:"uuid"`
	Title           string          `json:"title"`
	Placement       string          `json:"placement"`
	PlacementID     int64           `json:"placement_id"`
	AdType          domain.AdType   `json:"ad_type"`
	Content         string          `json:"content"`
	Link            string          `json:"link"`
	TargetBlank     bool            `json:"target_blank"`
	NoFollow        bool            `json:"nofollow"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Active          bool            `json:"active"`
	Status          domain.AdStatus `json:"status"`
	Priority        int             `json:"priority"`
	Impressions     int64           `json:"impressions"`
	Clicks          int64           `json:"clicks"`
	CTR             float64         `json:"ctr"`
	DaysRemaining   int             `json:"days_remaining"`
	LastImpression  *time.Time      `json:"last_impression"`
	LastClick       *time.Time      `json:"last_click"`
	AdvertiserName  string          `json:"advertiser_name"`
	AdvertiserEmail string          `json:"advertiser_email"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func newAdResponse(ad *domain.Advertisement, now time.Time) adResponse {
	var content string
	if ad.Content != nil {
		content = ad.Content.Value()
	}
	return adResponse{
		ID:              ad.ID,
		UUID:            ad.UUID.String(),
		Title:           ad.Title,
		Placement:       ad.Placement.Code,
		PlacementID:     ad.Placement.ID,
		AdType:          ad.Type(),
		Content:         content,
		Link:            ad.Link,
		TargetBlank:     ad.TargetBlank,
		NoFollow:        ad.NoFollow,
		StartDate:       ad.StartDate,
		EndDate:         ad.EndDate,
		Active:          ad.Active,
		Status:          ad.Status(now),
		Priority:        ad.Priority,
		Impressions:     ad.Impressions,
		Clicks:          ad.Clicks,
		CTR:             ad.CTR(),
		DaysRemaining:   ad.DaysRemaining(now),
		LastImpression:  ad.LastImpression,
		LastClick:       ad.LastClick,
		AdvertiserName:  ad.AdvertiserName,
		AdvertiserEmail: ad.AdvertiserEmail,
		Notes:           ad.Notes,
		CreatedAt:       ad.CreatedAt,
		UpdatedAt:       ad.UpdatedAt,
	}
}

func (h *Handler) handleListPlacements(w http.ResponseWriter, r *http.Request) {
	placements, err := h.svc.Admin.ListPlacements(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list placements", err)
		return
	}
	out := make([]placementResponse, 0, len(placements))
	for i := range placements {
		out = append(out, newPlacementResponse(&placements[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreatePlacement(w http.ResponseWriter, r *http.Request) {
	var req placementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	p := req.toDomain(0)
	if err := h.svc.Admin.CreatePlacement(r.Context(), p); err != nil {
		h.writeServiceError(w, r, "create placement", err)
		return
	}
	writeJSON(w, http.StatusCreated, newPlacementResponse(p))
}

func (h *Handler) handleGetPlacement(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := h.svc.Admin.GetPlacement(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "get placement", err)
		return
	}
	writeJSON(w, http.StatusOK, newPlacementResponse(p))
}

func (h *Handler) handleUpdatePlacement(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req placementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	p := req.toDomain(id)
	if err := h.svc.Admin.UpdatePlacement(r.Context(), p); err != nil {
		h.writeServiceError(w, r, "update placement", err)
		return
	}
	writeJSON(w, http.StatusOK, newPlacementResponse(p))
}

// handleDeletePlacement removes a placement. Placements with ads are only
// removed with ?cascade=true, which deletes their ads too.
func (h *Handler) handleDeletePlacement(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	cascade, _ := strconv.ParseBool(r.URL.Query().Get("cascade"))
	if err := h.svc.Admin.DeletePlacement(r.Context(), id, cascade); err != nil {
		h.writeServiceError(w, r, "delete placement", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListAds supports placement, type, active, limit and offset query
// filters.
func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.AdFilter{
		PlacementCode: q.Get("placement"),
		Type:          domain.AdType(q.Get("type")),
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'active' filter")
			return
		}
		filter.Active = &active
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	ads, err := h.svc.Admin.ListAds(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, "list ads", err)
		return
	}
	now := h.now()
	out := make([]adResponse, 0, len(ads))
	for i := range ads {
		out = append(out, newAdResponse(&ads[i], now))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	ad := req.toDomain(0)
	if err := h.svc.Admin.CreateAd(r.Context(), ad); err != nil {
		h.writeServiceError(w, r, "create ad", err)
		return
	}
	writeJSON(w, http.StatusCreated, newAdResponse(ad, h.now()))
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	ad, err := h.svc.Admin.GetAd(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "get ad", err)
		return
	}
	writeJSON(w, http.StatusOK, newAdResponse(ad, h.now()))
}

func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req adRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	ad := req.toDomain(id)
	if err := h.svc.Admin.UpdateAd(r.Context(), ad); err != nil {
		h.writeServiceError(w, r, "update ad", err)
		return
	}
	writeJSON(w, http.StatusOK, newAdResponse(ad, h.now()))
}

func (h *Handler) handleToggleAd(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	ad, err := h.svc.Admin.ToggleAd(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "toggle ad", err)
		return
	}
	writeJSON(w, http.StatusOK, newAdResponse(ad, h.now()))
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Admin.DeleteAd(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "delete ad", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package ads

import "github.com/prospot/prospot-api/internal/domain"

// Advertisement is a paid placement as served over the API.
type Advertisement struct {
	ID             string `json:"id"             doc:"Unique identifier" example:"ad-sidebar-1"`
	Title          string `json:"title"          doc:"Headline"`
	AdvertiserName string `json:"advertiserName" doc:"Paying advertiser"`
	ImageURL       string `json:"imageUrl"       doc:"Creative image URL"`
	LinkURL        string `json:"linkUrl"        doc:"Click-through URL"`
	Position       string `json:"position"       doc:"Display slot" example:"sidebar"`
}

func toHTTPAd(a domain.Advertisement) Advertisement {
	return Advertisement{
		ID:             a.ID,
		Title:          a.Title,
		AdvertiserName: a.AdvertiserName,
		ImageURL:       a.ImageURL,
		LinkURL:        a.LinkURL,
		Position:       string(a.Position),
	}
}

func toHTTPAds(in []domain.Advertisement) []Advertisement {
	out := make([]Advertisement, len(in))
	for i, a := range in {
		out[i] = toHTTPAd(a)
	}
	return out
}

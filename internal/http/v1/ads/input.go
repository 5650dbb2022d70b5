package ads

// AdsListInput defines query parameters for listing advertisements.
type AdsListInput struct {
	Position string `query:"position" doc:"Filter by display slot" enum:"sidebar,feed" example:"sidebar"`
}

// AdCreateInput for POST /ads
type AdCreateInput struct {
	Body struct {
		Title          string `json:"title"          minLength:"1" maxLength:"200" required:"true" doc:"Headline"`
		AdvertiserName string `json:"advertiserName" minLength:"1" maxLength:"200" required:"true" doc:"Paying advertiser"`
		ImageURL       string `json:"imageUrl,omitempty" maxLength:"500" doc:"Creative image URL"`
		LinkURL        string `json:"linkUrl,omitempty"  maxLength:"500" doc:"Click-through URL"`
		Position       string `json:"position"       required:"true" doc:"Display slot" enum:"sidebar,feed"`
	}
}

// AdUpdateInput for PUT /ads/{id}
type AdUpdateInput struct {
	ID   string `path:"id" doc:"Advertisement identifier" example:"ad-feed-1"`
	Body struct {
		Title          *string `json:"title,omitempty"          minLength:"1" maxLength:"200" doc:"Headline"`
		AdvertiserName *string `json:"advertiserName,omitempty" minLength:"1" maxLength:"200" doc:"Paying advertiser"`
		ImageURL       *string `json:"imageUrl,omitempty"       maxLength:"500" doc:"Creative image URL"`
		LinkURL        *string `json:"linkUrl,omitempty"        maxLength:"500" doc:"Click-through URL"`
		Position       *string `json:"position,omitempty"       doc:"Display slot" enum:"sidebar,feed"`
	}
}

// AdDeleteInput for DELETE /ads/{id}
type AdDeleteInput struct {
	ID string `path:"id" doc:"Advertisement identifier" example:"ad-feed-1"`
}

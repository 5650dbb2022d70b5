package listings

// SearchData is the response body for the ranked search.
type SearchData struct {
	Listings []Listing `json:"listings" doc:"Ranked page of listings"`
	Total    int       `json:"total"    doc:"Total listings matching the filters" example:"12"`
}

// ListingsSearchOutput is the search response with pagination Link header.
type ListingsSearchOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body SearchData
}

// ListingGetOutput for GET /listings/{id}
type ListingGetOutput struct {
	Body Listing
}

// ListingCreateOutput for POST /listings (201 Created)
type ListingCreateOutput struct {
	Location string `header:"Location" doc:"URL of created listing"`
	Body     Listing
}

// ListingUpdateOutput for PUT /listings/{id}
type ListingUpdateOutput struct {
	Body Listing
}

// ReviewsData is the response body for a listing's reviews.
type ReviewsData struct {
	Reviews []Review `json:"reviews" doc:"Reviews for the listing"`
	Total   int      `json:"total"   doc:"Number of reviews" example:"3"`
}

// ListingReviewsOutput for GET /listings/{id}/reviews
type ListingReviewsOutput struct {
	Body ReviewsData
}

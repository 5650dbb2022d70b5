package users

// UserRegisterOutput for POST /users (201 Created)
type UserRegisterOutput struct {
	Location string `header:"Location" doc:"URL of created user"`
	Body     User
}

// UserGetOutput for GET /users/{id}
type UserGetOutput struct {
	Body User
}

// ContactOutput for POST /users/{id}/contacts/{listingID}
type ContactOutput struct {
	Body User
}

// FavoriteOutput for POST /users/{id}/favorites/{listingID}
type FavoriteOutput struct {
	Body User
}

// PendingReviewsData lists listings awaiting a review from the user.
type PendingReviewsData struct {
	ListingIDs []string `json:"listingIds" doc:"Contacted listings without a review yet"`
}

// PendingReviewsOutput for GET /users/{id}/pending-reviews
type PendingReviewsOutput struct {
	Body PendingReviewsData
}

// ReviewCreateOutput for POST /reviews (201 Created)
type ReviewCreateOutput struct {
	Body Review
}

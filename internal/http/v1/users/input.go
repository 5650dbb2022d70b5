package users

// UserRegisterInput for POST /users
type UserRegisterInput struct {
	Body struct {
		Name    string `json:"name"    minLength:"1" maxLength:"200" required:"true" doc:"Display name" example:"Ana Pérez"`
		Email   string `json:"email"   format:"email"                required:"true" doc:"Email address" example:"ana@example.com"`
		Role    string `json:"role,omitempty"    doc:"Account role, defaults to USER" enum:"USER,PROVIDER,ADMIN"`
		Phone   string `json:"phone,omitempty"   maxLength:"30"  doc:"Phone number"`
		Address string `json:"address,omitempty" maxLength:"300" doc:"Street address"`
	}
}

// UserGetInput for GET /users/{id}
type UserGetInput struct {
	ID string `path:"id" doc:"User identifier"`
}

// UserDeleteInput for DELETE /users/{id}
type UserDeleteInput struct {
	ID string `path:"id" doc:"User identifier"`
}

// ContactInput for POST /users/{id}/contacts/{listingID}
type ContactInput struct {
	ID        string `path:"id"        doc:"User identifier"`
	ListingID string `path:"listingID" doc:"Contacted listing" example:"cap-1"`
}

// FavoriteInput for POST /users/{id}/favorites/{listingID}
type FavoriteInput struct {
	ID        string `path:"id"        doc:"User identifier"`
	ListingID string `path:"listingID" doc:"Toggled listing" example:"cap-1"`
}

// PendingReviewsInput for GET /users/{id}/pending-reviews
type PendingReviewsInput struct {
	ID string `path:"id" doc:"User identifier"`
}

// ReviewCreateInput for POST /reviews
type ReviewCreateInput struct {
	Body struct {
		UserID         string `json:"userId"         minLength:"1" required:"true" doc:"Review author"`
		ProfessionalID string `json:"professionalId" minLength:"1" required:"true" doc:"Reviewed listing" example:"cap-1"`
		Rating         int    `json:"rating"         minimum:"1" maximum:"5" required:"true" doc:"Rating 1-5" example:"5"`
		Comment        string `json:"comment,omitempty" maxLength:"2000" doc:"Free-text comment"`
	}
}

package users

import (
	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/platform/timeutil"
)

// User is a registered account as served over the API.
type User struct {
	ID             string        `json:"id"        doc:"Unique identifier"`
	Name           string        `json:"name"      doc:"Display name" example:"Ana Pérez"`
	Email          string        `json:"email"     doc:"Email address" example:"ana@example.com"`
	Role           string        `json:"role"      doc:"Account role" example:"USER"`
	Phone          string        `json:"phone,omitempty"   doc:"Phone number"`
	Address        string        `json:"address,omitempty" doc:"Street address"`
	ContactHistory []string      `json:"contactHistory" doc:"Listings the user contacted"`
	Favorites      []string      `json:"favorites"      doc:"Favorited listings"`
	CreatedAt      timeutil.Time `json:"createdAt"      doc:"Registration timestamp" example:"2024-01-15T10:30:00.000Z"`
}

// Review is a published rating as served over the API.
type Review struct {
	ID             string        `json:"id"             doc:"Unique identifier"`
	UserID         string        `json:"userId"         doc:"Review author"`
	ProfessionalID string        `json:"professionalId" doc:"Reviewed listing"`
	Rating         int           `json:"rating"         doc:"Rating 1-5" example:"5"`
	Comment        string        `json:"comment"        doc:"Free-text comment"`
	CreatedAt      timeutil.Time `json:"createdAt"      doc:"Creation timestamp" example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPUser(u *domain.User) User {
	return User{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		Phone:          u.Phone,
		Address:        u.Address,
		ContactHistory: u.ContactHistory,
		Favorites:      u.Favorites,
		CreatedAt:      timeutil.NewTime(u.CreatedAt),
	}
}

func toHTTPReview(r *domain.Review) Review {
	return Review{
		ID:             r.ID,
		UserID:         r.UserID,
		ProfessionalID: r.ProfessionalID,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      timeutil.NewTime(r.CreatedAt),
	}
}

package listings

import (
	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/platform/timeutil"
)

// Listing is a published provider profile as served over the API.
type Listing struct {
	ID           string   `json:"id"           doc:"Unique identifier"         example:"cap-1"`
	Name         string   `json:"name"         doc:"Provider or business name" example:"Electricidad Pérez"`
	Title        string   `json:"title"        doc:"Offered service"           example:"Instalaciones eléctricas"`
	Category     string   `json:"category"     doc:"Service category"          example:"Reparaciones del Hogar"`
	Rating       float64  `json:"rating"       doc:"Average rating"            example:"4.8"`
	ReviewCount  int      `json:"reviewCount"  doc:"Number of reviews"         example:"120"`
	Location     string   `json:"location"     doc:"Human-readable location"   example:"Ciudad, Mendoza"`
	Department   string   `json:"department"   doc:"Administrative region"     example:"Capital"`
	Latitude     *float64 `json:"latitude,omitempty"  doc:"WGS84 latitude"  example:"-32.8908"`
	Longitude    *float64 `json:"longitude,omitempty" doc:"WGS84 longitude" example:"-68.8458"`
	Description  string   `json:"description"  doc:"Marketing description"`
	PriceRange   string   `json:"priceRange"   doc:"Price band"                example:"$$"`
	ImageURL     string   `json:"imageUrl"     doc:"Cover image URL"`
	Tags         []string `json:"tags"         doc:"Search tags"`
	IsVerified   bool     `json:"isVerified"   doc:"Identity verified"         example:"true"`
	IsPromoted   bool     `json:"isPromoted"   doc:"Paid promotion active"     example:"false"`
	Availability string   `json:"availability" doc:"Availability note"         example:"Lun-Vie 9-18"`
	Email        string   `json:"email"        doc:"Contact email"`
	WhatsApp     string   `json:"whatsapp"     doc:"Contact WhatsApp number"`
}

// Review is a published rating for a listing.
type Review struct {
	ID             string        `json:"id"             doc:"Unique identifier"`
	UserID         string        `json:"userId"         doc:"Review author"`
	ProfessionalID string        `json:"professionalId" doc:"Reviewed listing"`
	Rating         int           `json:"rating"         doc:"Rating 1-5" example:"5"`
	Comment        string        `json:"comment"        doc:"Free-text comment"`
	CreatedAt      timeutil.Time `json:"createdAt"      doc:"Creation timestamp" example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPListing(l domain.Listing) Listing {
	return Listing{
		ID:           l.ID,
		Name:         l.Name,
		Title:        l.Title,
		Category:     string(l.Category),
		Rating:       l.Rating,
		ReviewCount:  l.ReviewCount,
		Location:     l.Location,
		Department:   l.Department,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		Description:  l.Description,
		PriceRange:   l.PriceRange,
		ImageURL:     l.ImageURL,
		Tags:         l.Tags,
		IsVerified:   l.IsVerified,
		IsPromoted:   l.IsPromoted,
		Availability: l.Availability,
		Email:        l.Email,
		WhatsApp:     l.WhatsApp,
	}
}

func toHTTPListings(in []domain.Listing) []Listing {
	out := make([]Listing, len(in))
	for i, l := range in {
		out[i] = toHTTPListing(l)
	}
	return out
}

func toHTTPReview(r domain.Review) Review {
	return Review{
		ID:             r.ID,
		UserID:         r.UserID,
		ProfessionalID: r.ProfessionalID,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      timeutil.NewTime(r.CreatedAt),
	}
}

func toHTTPReviews(in []domain.Review) []Review {
	out := make([]Review, len(in))
	for i, r := range in {
		out[i] = toHTTPReview(r)
	}
	return out
}

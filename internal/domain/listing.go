package domain

import "strings"

// Listing is a published service-provider profile.
//
// Latitude and Longitude are WGS84 decimal degrees; nil means the provider has
// no location fix and the listing sorts last in any proximity ordering.
type Listing struct {
	ID           string   `json:"id"           firestore:"id"`
	Name         string   `json:"name"         firestore:"name"`
	Title        string   `json:"title"        firestore:"title"`
	Category     Category `json:"category"     firestore:"category"`
	Rating       float64  `json:"rating"       firestore:"rating"`
	ReviewCount  int      `json:"reviewCount"  firestore:"review_count"`
	Location     string   `json:"location"     firestore:"location"`
	Department   string   `json:"department"   firestore:"department"`
	Latitude     *float64 `json:"latitude,omitempty"  firestore:"latitude"`
	Longitude    *float64 `json:"longitude,omitempty" firestore:"longitude"`
	Description  string   `json:"description"  firestore:"description"`
	PriceRange   string   `json:"priceRange"   firestore:"price_range"`
	ImageURL     string   `json:"imageUrl"     firestore:"image_url"`
	Tags         []string `json:"tags"         firestore:"tags"`
	IsVerified   bool     `json:"isVerified"   firestore:"is_verified"`
	IsPromoted   bool     `json:"isPromoted"   firestore:"is_promoted"`
	Availability string   `json:"availability" firestore:"availability"`
	Email        string   `json:"email"        firestore:"email"`
	WhatsApp     string   `json:"whatsapp"     firestore:"whatsapp"`
}

// placeholderHosts are image sources that older seed data pointed at and that
// no longer resolve. Listings carrying them get the category stock image.
var placeholderHosts = []string{"picsum.photos", "placehold.co"}

// NormalizeImage replaces an empty or placeholder image URL with the category
// default. All other URLs pass through untouched.
func (l *Listing) NormalizeImage() {
	if l.ImageURL == "" {
		l.ImageURL = DefaultImage(l.Category)
		return
	}
	for _, host := range placeholderHosts {
		if strings.Contains(l.ImageURL, host) {
			l.ImageURL = DefaultImage(l.Category)
			return
		}
	}
}

// HasCoordinates reports whether the listing carries a complete location fix.
func (l Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// CloneListings returns a shallow copy of the slice so callers can reorder it
// without mutating the source catalog.
func CloneListings(in []Listing) []Listing {
	out := make([]Listing, len(in))
	copy(out, in)
	return out
}

// Float64Ptr returns a pointer to v. Convenience for building coordinates.
func Float64Ptr(v float64) *float64 {
	return &v
}

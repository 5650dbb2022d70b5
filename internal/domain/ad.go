package domain

// AdPosition places an advertisement in one of the two display slots.
type AdPosition string

const (
	AdPositionSidebar AdPosition = "sidebar"
	AdPositionFeed    AdPosition = "feed"
)

// Valid reports whether p is a known display slot.
func (p AdPosition) Valid() bool {
	return p == AdPositionSidebar || p == AdPositionFeed
}

// Advertisement is a paid placement with a lifecycle independent from listings.
type Advertisement struct {
	ID             string     `json:"id"             firestore:"id"`
	Title          string     `json:"title"          firestore:"title"`
	AdvertiserName string     `json:"advertiserName" firestore:"advertiser_name"`
	ImageURL       string     `json:"imageUrl"       firestore:"image_url"`
	LinkURL        string     `json:"linkUrl"        firestore:"link_url"`
	Position       AdPosition `json:"position"       firestore:"position"`
}

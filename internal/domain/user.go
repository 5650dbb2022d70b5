package domain

import "time"

// Role describes what a registered account may do.
type Role string

const (
	RoleUser     Role = "USER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleProvider || r == RoleAdmin
}

// User is a registered account. ContactHistory and Favorites hold listing IDs
// and must never contain duplicates: ContactHistory is append-only with dedup
// on add, Favorites toggles membership.
type User struct {
	ID             string    `json:"id"        firestore:"id"`
	Name           string    `json:"name"      firestore:"name"`
	Email          string    `json:"email"     firestore:"email"`
	Role           Role      `json:"role"      firestore:"role"`
	Phone          string    `json:"phone,omitempty"   firestore:"phone"`
	Address        string    `json:"address,omitempty" firestore:"address"`
	ContactHistory []string  `json:"contactHistory" firestore:"contact_history"`
	Favorites      []string  `json:"favorites"      firestore:"favorites"`
	CreatedAt      time.Time `json:"createdAt"      firestore:"created_at"`
}

// HasContacted reports whether the listing is in the user's contact history.
func (u User) HasContacted(listingID string) bool {
	for _, id := range u.ContactHistory {
		if id == listingID {
			return true
		}
	}
	return false
}

// IsFavorite reports whether the listing is in the user's favorites.
func (u User) IsFavorite(listingID string) bool {
	for _, id := range u.Favorites {
		if id == listingID {
			return true
		}
	}
	return false
}

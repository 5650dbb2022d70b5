package domain

import "time"

// Review is an append-only rating left by a user for a listing. At most one
// review may exist per (UserID, ProfessionalID) pair.
type Review struct {
	ID             string    `json:"id"             firestore:"id"`
	UserID         string    `json:"userId"         firestore:"user_id"`
	ProfessionalID string    `json:"professionalId" firestore:"professional_id"`
	Rating         int       `json:"rating"         firestore:"rating"`
	Comment        string    `json:"comment"        firestore:"comment"`
	CreatedAt      time.Time `json:"createdAt"      firestore:"created_at"`
}

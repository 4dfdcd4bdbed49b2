package kafka

import "time"

// UserRegisteredEvent is published after a successful registration
type UserRegisteredEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// RatingSubmittedEvent is published after a rating upsert and recompute
type RatingSubmittedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	BakeryID  uint      `json:"bakery_id"`
	Score     int       `json:"score"`
	NewRating float64   `json:"new_rating"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeUserRegistered  = "user.registered"
	EventTypeRatingSubmitted = "rating.submitted"
)

// Kafka topics
const (
	TopicUserRegistered  = "user-registered"
	TopicRatingSubmitted = "rating-submitted"
)

package types

import (
	"net/url"
	"strconv"
	"time"
)

// ------------------------------
// Request Types
// ------------------------------

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest patches the current user's profile.
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// CreatePostRequest holds parameters for a new feed post.
type CreatePostRequest struct {
	Content  string       `json:"content"`
	Category PostCategory `json:"category"`
	Hashtags []string     `json:"hashtags,omitempty"`
	Tags     []string     `json:"tags,omitempty"`
	Media    []Media      `json:"media,omitempty"`
	PetID    string       `json:"petId,omitempty"`
}

// UpdatePostRequest patches an existing post.
type UpdatePostRequest struct {
	Content  string       `json:"content,omitempty"`
	Category PostCategory `json:"category,omitempty"`
	Hashtags []string     `json:"hashtags,omitempty"`
	Tags     []string     `json:"tags,omitempty"`
}

// CommentRequest adds a comment to a post.
type CommentRequest struct {
	Content string `json:"content"`
}

// UpsertPetRequest holds parameters for creating or updating a pet.
type UpsertPetRequest struct {
	Name        string      `json:"name"`
	Species     Species     `json:"species"`
	Breed       string      `json:"breed,omitempty"`
	Gender      string      `json:"gender,omitempty"`
	BirthDate   *time.Time  `json:"birthDate,omitempty"`
	Avatar      string      `json:"avatar,omitempty"`
	Appearance  Appearance  `json:"appearance,omitzero"`
	Personality Personality `json:"personality,omitzero"`
}

// AddReminderRequest schedules a care task.
type AddReminderRequest struct {
	Title   string    `json:"title"`
	DueDate time.Time `json:"dueDate"`
}

// ReviewRequest rates a product or service.
type ReviewRequest struct {
	Score   int    `json:"score"`
	Content string `json:"content,omitempty"`
}

// OrderItemRequest is a line on a new order.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest holds parameters for a new order.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// CreateBookingRequest reserves a service slot.
type CreateBookingRequest struct {
	ServiceID string  `json:"serviceId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	PetName   string  `json:"petName"`
	PetType   Species `json:"petType"`
	Notes     string  `json:"notes,omitempty"`
}

// UpsertHealthLogRequest holds parameters for a health log entry.
type UpsertHealthLogRequest struct {
	PetID         string        `json:"petId"`
	Date          time.Time     `json:"date"`
	Weight        float64       `json:"weight,omitempty"`
	Temperature   float64       `json:"temperature,omitempty"`
	Diet          Diet          `json:"diet,omitzero"`
	BowelMovement BowelMovement `json:"bowelMovement,omitzero"`
	Energy        Energy        `json:"energy,omitzero"`
	Mood          string        `json:"mood,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// CreateFeedbackRequest submits user feedback.
type CreateFeedbackRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Contact string `json:"contact,omitempty"`
}

// UpdateFeedbackRequest is the admin reply payload.
type UpdateFeedbackRequest struct {
	Status   FeedbackStatus `json:"status"`
	Response string         `json:"response,omitempty"`
}

// RecordHistoryRequest records a browsing event.
type RecordHistoryRequest struct {
	ItemID   string   `json:"itemId"`
	ItemType ItemType `json:"itemType"`
}

// AddBookmarkRequest saves a polymorphic item.
type AddBookmarkRequest struct {
	ItemType ItemType `json:"itemType"`
}

// RedeemRequest exchanges points for a reward.
type RedeemRequest struct {
	RewardID string `json:"rewardId"`
}

// ------------------------------
// List query parameters
// ------------------------------

// ListParams are the query parameters accepted by list endpoints
// (filtering, sorting, pagination). Zero values are omitted.
type ListParams struct {
	Category string
	Search   string
	Sort     string
	City     string
	PetID    string
	Limit    int
	Page     int
	Days     int
}

// Values encodes the non-zero parameters as url.Values.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.City != "" {
		v.Set("city", p.City)
	}
	if p.PetID != "" {
		v.Set("petId", p.PetID)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Days > 0 {
		v.Set("days", strconv.Itoa(p.Days))
	}
	return v
}

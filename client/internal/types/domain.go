package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role of a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account. Followers/Following hold bare user ids.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Role      Role      `json:"role"`
	Points    int       `json:"points"`
	Followers []string  `json:"followers,omitempty"`
	Following []string  `json:"following,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Species enumerates the supported pet kinds.
type Species string

const (
	SpeciesCat     Species = "cat"
	SpeciesDog     Species = "dog"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
	SpeciesBird    Species = "bird"
	SpeciesFish    Species = "fish"
	SpeciesOther   Species = "other"
)

// Pet represents a pet profile with its health sub-document.
type Pet struct {
	ID          string      `json:"id"`
	Owner       Ref         `json:"owner"`
	Name        string      `json:"name"`
	Species     Species     `json:"species"`
	Breed       string      `json:"breed,omitempty"`
	Gender      string      `json:"gender,omitempty"`
	BirthDate   *time.Time  `json:"birthDate,omitempty"`
	Avatar      string      `json:"avatar,omitempty"`
	Appearance  Appearance  `json:"appearance"`
	Personality Personality `json:"personality"`
	Health      PetHealth   `json:"health"`
	Reminders   []Reminder  `json:"reminders,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Appearance groups physical attributes.
type Appearance struct {
	Weight float64 `json:"weight,omitempty"` // kilograms
	Color  string  `json:"color,omitempty"`
}

// Personality groups temperament attributes.
type Personality struct {
	Temperament string   `json:"temperament,omitempty"`
	Traits      []string `json:"traits,omitempty"`
}

// PetHealth is the embedded health record of a pet.
type PetHealth struct {
	Vaccinations []Vaccination `json:"vaccinations,omitempty"`
	Checkups     []Checkup     `json:"checkups,omitempty"`
}

// Vaccination records a single shot.
type Vaccination struct {
	Name    string     `json:"name"`
	Date    time.Time  `json:"date"`
	NextDue *time.Time `json:"nextDue,omitempty"`
}

// Checkup records a vet visit.
type Checkup struct {
	Date    time.Time `json:"date"`
	Clinic  string    `json:"clinic,omitempty"`
	Notes   string    `json:"notes,omitempty"`
	Outcome string    `json:"outcome,omitempty"`
}

// Reminder is a scheduled care task for a pet.
type Reminder struct {
	ID      string    `json:"id,omitempty"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"dueDate"`
	Done    bool      `json:"done"`
}

// PostCategory enumerates feed post categories.
type PostCategory string

const (
	PostDaily    PostCategory = "daily"
	PostFunny    PostCategory = "funny"
	PostMedical  PostCategory = "medical"
	PostFood     PostCategory = "food"
	PostTraining PostCategory = "training"
	PostTravel   PostCategory = "travel"
	PostOther    PostCategory = "other"
)

// MediaType discriminates post media entries.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is an attachment on a post.
type Media struct {
	URL  string    `json:"url"`
	Type MediaType `json:"type"`
}

// Post is a feed entry. IsLiked/IsBookmarked are request-scoped and
// relative to the authenticated user.
type Post struct {
	ID           string       `json:"id"`
	Author       Ref          `json:"author"`
	Content      string       `json:"content"`
	Category     PostCategory `json:"category"`
	Hashtags     []string     `json:"hashtags,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Media        []Media      `json:"media,omitempty"`
	Pet          *Ref         `json:"pet,omitempty"`
	Likes        int          `json:"likes"`
	Views        int          `json:"views"`
	IsLiked      bool         `json:"isLiked"`
	IsBookmarked bool         `json:"isBookmarked"`
	Comments     []Comment    `json:"comments,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Comment is attached to a post.
type Comment struct {
	ID        string    `json:"id,omitempty"`
	User      Ref       `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pricing carries original and current prices.
type Pricing struct {
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	CurrentPrice  float64 `json:"currentPrice"`
}

// Inventory tracks stock for a product.
type Inventory struct {
	Stock int `json:"stock"`
}

// Rating aggregates review scores.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Review is a user review on a product or service.
type Review struct {
	ID        string    `json:"id,omitempty"`
	User      Ref       `json:"user"`
	Score     int       `json:"score"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Variant is a purchasable product variation.
type Variant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
	Stock int     `json:"stock,omitempty"`
}

// Specification is a labelled product attribute.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product is a shop item.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	Brand          string          `json:"brand,omitempty"`
	Pricing        Pricing         `json:"pricing"`
	Inventory      Inventory       `json:"inventory"`
	Images         []string        `json:"images,omitempty"`
	Rating         Rating          `json:"rating"`
	Variants       []Variant       `json:"variants,omitempty"`
	Specifications []Specification `json:"specifications,omitempty"`
	Reviews        []Review        `json:"reviews,omitempty"`
}

// ServiceCategory enumerates local service kinds.
type ServiceCategory string

const (
	ServiceHospital    ServiceCategory = "hospital"
	ServiceGrooming    ServiceCategory = "grooming"
	ServiceBoarding    ServiceCategory = "boarding"
	ServiceTraining    ServiceCategory = "training"
	ServicePhotography ServiceCategory = "photography"
	ServiceDaycare     ServiceCategory = "daycare"
)

// Location places a service on the map. Coordinates are lng, lat.
type Location struct {
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	Coordinates [2]float64 `json:"coordinates,omitempty"`
}

// ServicePricing carries the displayed price range.
type ServicePricing struct {
	PriceRange string `json:"priceRange,omitempty"`
}

// Service is a bookable local service.
type Service struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category ServiceCategory `json:"category"`
	Location Location        `json:"location"`
	Pricing  ServicePricing  `json:"pricing"`
	Features []string        `json:"features,omitempty"`
	Hours    string          `json:"hours,omitempty"`
	Contact  string          `json:"contact,omitempty"`
	Rating   Rating          `json:"rating"`
	Reviews  []Review        `json:"reviews,omitempty"`
}

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem is a line on an order.
type OrderItem struct {
	Product  Ref     `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a shop purchase.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Status        OrderStatus `json:"status"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentStatus string      `json:"paymentStatus,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// BookingStatus enumerates booking lifecycle states.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking reserves a service slot for a pet.
// Date and Time keep the backend's YYYY-MM-DD / HH:MM string convention.
type Booking struct {
	ID        string        `json:"id"`
	Service   Ref           `json:"service"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	PetName   string        `json:"petName"`
	PetType   Species       `json:"petType"`
	Status    BookingStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Diet is the intake section of a health log.
type Diet struct {
	FoodAmount  float64 `json:"foodAmount,omitempty"`  // grams
	WaterAmount float64 `json:"waterAmount,omitempty"` // millilitres
	Appetite    string  `json:"appetite,omitempty"`
}

// BowelMovement is the digestion section of a health log.
type BowelMovement struct {
	Frequency   int    `json:"frequency,omitempty"`
	Consistency string `json:"consistency,omitempty"`
}

// Energy is the activity section of a health log.
type Energy struct {
	Level string `json:"level,omitempty"` // high / medium / low
}

// HealthAlert is a backend-evaluated warning attached to a log.
type HealthAlert struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// HealthLog is a daily health record for a pet.
type HealthLog struct {
	ID            string        `json:"id"`
	Pet           Ref           `json:"pet"`
	Date          time.Time     `json:"date"`
	Weight        float64       `json:"weight,omitempty"`
	Temperature   float64       `json:"temperature,omitempty"`
	Diet          Diet          `json:"diet"`
	BowelMovement BowelMovement `json:"bowelMovement"`
	Energy        Energy        `json:"energy"`
	Mood          string        `json:"mood,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Alerts        []HealthAlert `json:"alerts,omitempty"`
}

// FeedbackStatus enumerates feedback lifecycle states.
type FeedbackStatus string

const (
	FeedbackPending    FeedbackStatus = "pending"
	FeedbackProcessing FeedbackStatus = "processing"
	FeedbackResolved   FeedbackStatus = "resolved"
	FeedbackClosed     FeedbackStatus = "closed"
)

// Feedback is a user-submitted report or suggestion.
type Feedback struct {
	ID        string         `json:"id"`
	User      Ref            `json:"user"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	Contact   string         `json:"contact,omitempty"`
	Status    FeedbackStatus `json:"status"`
	Response  string         `json:"response,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ItemType discriminates polymorphic bookmark/history targets.
type ItemType string

const (
	ItemPost    ItemType = "post"
	ItemPet     ItemType = "pet"
	ItemProduct ItemType = "product"
	ItemService ItemType = "service"
)

// Bookmark saves a polymorphic item for a user.
type Bookmark struct {
	ID        string    `json:"id"`
	User      Ref       `json:"user"`
	Item      Ref       `json:"item"`
	ItemType  ItemType  `json:"itemType"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryItem records a browsing event.
type HistoryItem struct {
	ID        string    `json:"id"`
	User      Ref       `json:"user"`
	Item      Ref       `json:"item"`
	ItemType  ItemType  `json:"itemType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reward is a points-mall item.
type Reward struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Stock  int    `json:"stock"`
	Image  string `json:"image,omitempty"`
}

// PointsTransaction records a points credit or debit.
type PointsTransaction struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"` // negative for redemptions
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminStats is the back-office dashboard summary.
type AdminStats struct {
	Users    int `json:"users"`
	Posts    int `json:"posts"`
	Orders   int `json:"orders"`
	Bookings int `json:"bookings"`
	Feedback int `json:"feedback"`
}

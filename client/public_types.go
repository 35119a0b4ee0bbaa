package client

import "github.com/pawplanet/pawplanet-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.

// Requests
type (
	Credentials            = types.Credentials
	RegisterRequest        = types.RegisterRequest
	UpdateProfileRequest   = types.UpdateProfileRequest
	CreatePostRequest      = types.CreatePostRequest
	UpdatePostRequest      = types.UpdatePostRequest
	CommentRequest         = types.CommentRequest
	UpsertPetRequest       = types.UpsertPetRequest
	AddReminderRequest     = types.AddReminderRequest
	ReviewRequest          = types.ReviewRequest
	OrderItemRequest       = types.OrderItemRequest
	CreateOrderRequest     = types.CreateOrderRequest
	CreateBookingRequest   = types.CreateBookingRequest
	UpsertHealthLogRequest = types.UpsertHealthLogRequest
	CreateFeedbackRequest  = types.CreateFeedbackRequest
	UpdateFeedbackRequest  = types.UpdateFeedbackRequest
	RecordHistoryRequest   = types.RecordHistoryRequest
	ListParams             = types.ListParams
)

// Domain entities
type (
	User              = types.User
	Role              = types.Role
	Pet               = types.Pet
	Species           = types.Species
	Appearance        = types.Appearance
	Personality       = types.Personality
	PetHealth         = types.PetHealth
	Vaccination       = types.Vaccination
	Checkup           = types.Checkup
	Reminder          = types.Reminder
	Post              = types.Post
	PostCategory      = types.PostCategory
	Comment           = types.Comment
	Media             = types.Media
	MediaType         = types.MediaType
	Product           = types.Product
	Variant           = types.Variant
	Review            = types.Review
	Service           = types.Service
	ServiceCategory   = types.ServiceCategory
	Location          = types.Location
	Order             = types.Order
	OrderItem         = types.OrderItem
	OrderStatus       = types.OrderStatus
	Booking           = types.Booking
	BookingStatus     = types.BookingStatus
	HealthLog         = types.HealthLog
	HealthAlert       = types.HealthAlert
	Diet              = types.Diet
	BowelMovement     = types.BowelMovement
	Energy            = types.Energy
	Feedback          = types.Feedback
	FeedbackStatus    = types.FeedbackStatus
	Bookmark          = types.Bookmark
	HistoryItem       = types.HistoryItem
	ItemType          = types.ItemType
	Reward            = types.Reward
	PointsTransaction = types.PointsTransaction
	AdminStats        = types.AdminStats
	Ref               = types.Ref
)

// Responses
type (
	EnqueueAck     = types.EnqueueAck
	AuthResponse   = types.AuthResponse
	LikeResponse   = types.LikeResponse
	FollowResponse = types.FollowResponse
	PointsBalance  = types.PointsBalance
	UploadResponse = types.UploadResponse
	SearchResults  = types.SearchResults
)

// List re-exports the tolerant list payload for a concrete element type.
type List[T any] = types.List[T]

// SearchBranch re-exports one settled leg of a fan-out search.
type SearchBranch[T any] = types.SearchBranch[T]

// Enum re-exports.
const (
	RoleUser  = types.RoleUser
	RoleAdmin = types.RoleAdmin

	SpeciesCat     = types.SpeciesCat
	SpeciesDog     = types.SpeciesDog
	SpeciesRabbit  = types.SpeciesRabbit
	SpeciesHamster = types.SpeciesHamster
	SpeciesBird    = types.SpeciesBird
	SpeciesFish    = types.SpeciesFish
	SpeciesOther   = types.SpeciesOther

	PostDaily    = types.PostDaily
	PostFunny    = types.PostFunny
	PostMedical  = types.PostMedical
	PostFood     = types.PostFood
	PostTraining = types.PostTraining
	PostTravel   = types.PostTravel
	PostOther    = types.PostOther

	ServiceHospital    = types.ServiceHospital
	ServiceGrooming    = types.ServiceGrooming
	ServiceBoarding    = types.ServiceBoarding
	ServiceTraining    = types.ServiceTraining
	ServicePhotography = types.ServicePhotography
	ServiceDaycare     = types.ServiceDaycare

	ItemPost    = types.ItemPost
	ItemPet     = types.ItemPet
	ItemProduct = types.ItemProduct
	ItemService = types.ItemService

	OrderPending    = types.OrderPending
	OrderProcessing = types.OrderProcessing
	OrderShipped    = types.OrderShipped
	OrderCompleted  = types.OrderCompleted
	OrderCancelled  = types.OrderCancelled

	BookingPending   = types.BookingPending
	BookingConfirmed = types.BookingConfirmed
	BookingCompleted = types.BookingCompleted
	BookingCancelled = types.BookingCancelled

	FeedbackPending    = types.FeedbackPending
	FeedbackProcessing = types.FeedbackProcessing
	FeedbackResolved   = types.FeedbackResolved
	FeedbackClosed     = types.FeedbackClosed
)

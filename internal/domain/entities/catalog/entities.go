// Package catalog defines the application's core catalog domain entities.
// Each type mirrors one persisted table; array-valued fields are stored
// as JSON text by the persistence layer.
package catalog

import "time"

type Journey struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Difficulty  string     `json:"difficulty"`
	Category    string     `json:"category"`
	Activities  []string   `json:"activities"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type JourneyDay struct {
	ID          string     `json:"id"`
	JourneyID   string     `json:"journey_id"`
	DayNumber   int        `json:"day_number"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Destination carries the deep detail-page payload; the structured
// sections (places, itinerary, FAQs and friends) stay schemaless maps
// because their shape is owned by the AI drafting templates.
type Destination struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Slug            *string        `json:"slug,omitempty"`
	Description     string         `json:"description"`
	Duration        string         `json:"duration"`
	Difficulty      string         `json:"difficulty"`
	BestTime        string         `json:"best_time"`
	Altitude        *string        `json:"altitude,omitempty"`
	Category        string         `json:"category"`
	Highlights      []string       `json:"highlights"`
	Overview        *string        `json:"overview,omitempty"`
	PlacesToVisit   map[string]any `json:"places_to_visit,omitempty"`
	ThingsToDo      map[string]any `json:"things_to_do,omitempty"`
	HowToReach      map[string]any `json:"how_to_reach,omitempty"`
	BestTimeDetails map[string]any `json:"best_time_details,omitempty"`
	WhereToStay     map[string]any `json:"where_to_stay,omitempty"`
	Itinerary       []any          `json:"itinerary,omitempty"`
	TravelTips      []string       `json:"travel_tips,omitempty"`
	FAQs            []any          `json:"faqs,omitempty"`
	ImageURL        *string        `json:"image_url,omitempty"`
	Featured        bool           `json:"featured"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
}

type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	GroupSize   string     `json:"group_size"`
	Price       string     `json:"price"`
	Category    string     `json:"category"`
	Highlights  []string   `json:"highlights"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type MealItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        string     `json:"price"`
	Category     string     `json:"category"`
	SpiceLevel   string     `json:"spice_level"`
	IsVegetarian bool       `json:"is_vegetarian"`
	IsBreakfast  bool       `json:"is_breakfast"`
	IsLunch      bool       `json:"is_lunch"`
	IsDinner     bool       `json:"is_dinner"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type DiningSchedule struct {
	ID          string     `json:"id"`
	MealType    string     `json:"meal_type"`
	Time        string     `json:"time"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type ResortActivity struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	FullDescription string     `json:"full_description"`
	Icon            string     `json:"icon"`
	ImageURL        *string    `json:"image_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type ResortPackage struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Duration      string     `json:"duration"`
	Price         string     `json:"price"`
	OriginalPrice string     `json:"original_price"`
	Badge         string     `json:"badge"`
	Includes      []string   `json:"includes"`
	Features      []string   `json:"features"`
	ImageURL      *string    `json:"image_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// Post is a blog post; the table keeps its historical name "packages".
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	Author        string     `json:"author"`
	AuthorBio     *string    `json:"author_bio,omitempty"`
	AuthorAvatar  *string    `json:"author_avatar,omitempty"`
	Tags          []string   `json:"tags"`
	ReadTime      *string    `json:"read_time,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Views         int        `json:"views"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Featured      bool       `json:"featured"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type GalleryImage struct {
	ID           string     `json:"id"`
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ImageURL     string     `json:"image_url"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type Enquiry struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"`
	TripInterest *string    `json:"trip_interest,omitempty"`
	TravelDates  *string    `json:"travel_dates,omitempty"`
	JourneyID    *string    `json:"journey_id,omitempty"`
	JourneyTitle *string    `json:"journey_title,omitempty"`
	Status       string     `json:"status"`
	IsRead       bool       `json:"is_read"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

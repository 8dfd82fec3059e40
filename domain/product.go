package domain

import "time"

// Product is a catalog entry for an auto part.
type Product struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	Brand       string         `bson:"brand" json:"brand"`
	Name        string         `bson:"name" json:"name"`
	Category    string         `bson:"category" json:"category"`
	CarMake     string         `bson:"car_make" json:"carMake"`
	Description string         `bson:"description" json:"description"`
	PartNumber  string         `bson:"part_number" json:"partNumber"`
	Position    string         `bson:"position" json:"position"`
	Price       float64        `bson:"price" json:"price"`
	PictureCode string         `bson:"picture_code" json:"pictureCode"`
	Infos       map[string]any `bson:"infos,omitempty" json:"infos,omitempty"`
	IsFeatured  bool           `bson:"is_featured" json:"isFeatured"`
	IsPopular   bool           `bson:"is_popular" json:"isPopular"`
	IsView      bool           `bson:"is_view" json:"isView"`
	UpdatedDate time.Time      `bson:"updated_date" json:"updatedDate"`
	UpdatedBy   string         `bson:"updated_by,omitempty" json:"updatedBy,omitempty"`
}

// ProductUpsert enumerates the fields a catalog update is permitted to
// change. An empty ID inserts a new product; otherwise the matching
// document is patched and its updated_date refreshed.
type ProductUpsert struct {
	ID          string
	Brand       string
	Name        string
	Category    string
	CarMake     string
	Description string
	PartNumber  string
	Position    string
	Price       float64
	PictureCode string
	Infos       map[string]any
	IsFeatured  bool
	IsPopular   bool
	IsView      bool
	UpdatedBy   string
}

// ShowcaseFlag selects which curated boolean flag a showcase sample draws from.
type ShowcaseFlag string

const (
	ShowcaseFeatured ShowcaseFlag = "featured"
	ShowcasePopular  ShowcaseFlag = "popular"
)

// ShowcaseMaxSize bounds the sample size a caller may request.
const ShowcaseMaxSize = 8

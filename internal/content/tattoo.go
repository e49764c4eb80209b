package content

import "time"

// Tattoo models one piece in the tattoo gallery.
type Tattoo struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Artist          string    `json:"artist"`
	Style           string    `json:"style,omitempty"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url"`
	Tags            []string  `json:"tags"`
	IsFeatured      bool      `json:"is_featured"`
	FeaturedSection *string   `json:"featured_section,omitempty"`
	Status          string    `json:"status"`
	Views           int64     `json:"views"`
	Likes           int64     `json:"likes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TattooInput carries the caller-supplied fields for creating a piece.
type TattooInput struct {
	Title           string   `json:"title"`
	Artist          string   `json:"artist"`
	Style           string   `json:"style"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"image_url"`
	Tags            []string `json:"tags"`
	IsFeatured      bool     `json:"is_featured"`
	FeaturedSection string   `json:"featured_section"`
	Status          string   `json:"status"`
}

// Validate checks the required tattoo fields.
func (in TattooInput) Validate() error {
	if err := requireField(in.Title, "title"); err != nil {
		return err
	}
	if err := requireField(in.Artist, "artist"); err != nil {
		return err
	}
	return requireField(in.ImageURL, "image_url")
}

// TattooPatch holds a partial update; nil fields are left unchanged.
type TattooPatch struct {
	Title           *string   `json:"title"`
	Artist          *string   `json:"artist"`
	Style           *string   `json:"style"`
	Description     *string   `json:"description"`
	ImageURL        *string   `json:"image_url"`
	Tags            *[]string `json:"tags"`
	IsFeatured      *bool     `json:"is_featured"`
	FeaturedSection *string   `json:"featured_section"`
	Status          *string   `json:"status"`
}

// Validate rejects patches that would blank out a required field.
func (p TattooPatch) Validate() error {
	if p.Title != nil {
		if err := requireField(*p.Title, "title"); err != nil {
			return err
		}
	}
	if p.Artist != nil {
		if err := requireField(*p.Artist, "artist"); err != nil {
			return err
		}
	}
	if p.ImageURL != nil {
		if err := requireField(*p.ImageURL, "image_url"); err != nil {
			return err
		}
	}
	return nil
}

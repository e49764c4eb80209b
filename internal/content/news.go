package content

import "time"

// News models one article in the news section.
type News struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Category        string    `json:"category,omitempty"`
	Excerpt         string    `json:"excerpt,omitempty"`
	Content         string    `json:"content"`
	ImageURL        string    `json:"image_url"`
	Tags            []string  `json:"tags"`
	IsFeatured      bool      `json:"is_featured"`
	FeaturedSection *string   `json:"featured_section,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewsInput carries the caller-supplied fields for creating an article.
type NewsInput struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Category        string   `json:"category"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	ImageURL        string   `json:"image_url"`
	Tags            []string `json:"tags"`
	IsFeatured      bool     `json:"is_featured"`
	FeaturedSection string   `json:"featured_section"`
	Status          string   `json:"status"`
}

// Validate checks the required news fields.
func (in NewsInput) Validate() error {
	if err := requireField(in.Title, "title"); err != nil {
		return err
	}
	if err := requireField(in.Author, "author"); err != nil {
		return err
	}
	if err := requireField(in.Content, "content"); err != nil {
		return err
	}
	return requireField(in.ImageURL, "image_url")
}

// NewsPatch holds a partial update; nil fields are left unchanged.
type NewsPatch struct {
	Title           *string   `json:"title"`
	Author          *string   `json:"author"`
	Category        *string   `json:"category"`
	Excerpt         *string   `json:"excerpt"`
	Content         *string   `json:"content"`
	ImageURL        *string   `json:"image_url"`
	Tags            *[]string `json:"tags"`
	IsFeatured      *bool     `json:"is_featured"`
	FeaturedSection *string   `json:"featured_section"`
	Status          *string   `json:"status"`
}

// Validate rejects patches that would blank out a required field.
func (p NewsPatch) Validate() error {
	if p.Title != nil {
		if err := requireField(*p.Title, "title"); err != nil {
			return err
		}
	}
	if p.Author != nil {
		if err := requireField(*p.Author, "author"); err != nil {
			return err
		}
	}
	if p.Content != nil {
		if err := requireField(*p.Content, "content"); err != nil {
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

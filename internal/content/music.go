package content

import "time"

// Music models one track in the music showcase.
type Music struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Artist          string    `json:"artist"`
	Genre           string    `json:"genre,omitempty"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url"`
	SpotifyURL      string    `json:"spotify_url,omitempty"`
	YoutubeURL      string    `json:"youtube_url,omitempty"`
	Tags            []string  `json:"tags"`
	IsFeatured      bool      `json:"is_featured"`
	FeaturedSection *string   `json:"featured_section,omitempty"`
	Status          string    `json:"status"`
	Plays           int64     `json:"plays"`
	Likes           int64     `json:"likes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MusicInput carries the caller-supplied fields for creating a track.
// Counters and timestamps are store-assigned and never accepted here.
type MusicInput struct {
	Title           string   `json:"title"`
	Artist          string   `json:"artist"`
	Genre           string   `json:"genre"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"image_url"`
	SpotifyURL      string   `json:"spotify_url"`
	YoutubeURL      string   `json:"youtube_url"`
	Tags            []string `json:"tags"`
	IsFeatured      bool     `json:"is_featured"`
	FeaturedSection string   `json:"featured_section"`
	Status          string   `json:"status"`
}

// Validate checks the required music fields.
func (in MusicInput) Validate() error {
	if err := requireField(in.Title, "title"); err != nil {
		return err
	}
	if err := requireField(in.Artist, "artist"); err != nil {
		return err
	}
	return requireField(in.ImageURL, "image_url")
}

// MusicPatch holds a partial update; nil fields are left unchanged.
type MusicPatch struct {
	Title           *string   `json:"title"`
	Artist          *string   `json:"artist"`
	Genre           *string   `json:"genre"`
	Description     *string   `json:"description"`
	ImageURL        *string   `json:"image_url"`
	SpotifyURL      *string   `json:"spotify_url"`
	YoutubeURL      *string   `json:"youtube_url"`
	Tags            *[]string `json:"tags"`
	IsFeatured      *bool     `json:"is_featured"`
	FeaturedSection *string   `json:"featured_section"`
	Status          *string   `json:"status"`
}

// Validate rejects patches that would blank out a required field.
func (p MusicPatch) Validate() error {
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

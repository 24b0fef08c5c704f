package model

import (
	"time"
)

type Author struct {
	ID        int    `json:"id" db:"id"`
	LastName  string `json:"last_name" db:"last_name"`
	FirstName string `json:"first_name" db:"first_name"`
}

type Book struct {
	ID       int    `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	AuthorID int    `json:"author_id" db:"author_id"`
}

// Copy is a travelling copy of a Book released into the world.
// Secret proves that a finder holds the physical copy.
type Copy struct {
	UID    int    `json:"uid" db:"uid"`
	BookID int    `json:"book_id" db:"book_id"`
	Secret string `json:"-" db:"secret"`
}

// Catch records a Copy being found. Lat and Lon are EPSG:3857 units,
// Uncertainty is a radius in the same units.
type Catch struct {
	ID          int       `json:"id" db:"id"`
	CopyUID     int       `json:"copy_uid" db:"copy_uid"`
	Lat         float64   `json:"lat" db:"lat"`
	Lon         float64   `json:"lon" db:"lon"`
	Uncertainty float64   `json:"uncertainty" db:"uncertainty"`
	Date        time.Time `json:"date" db:"date"`
	Message     *string   `json:"message" db:"message"`
}

// CatchRecord is a Catch flattened with its book and author.
type CatchRecord struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	AuthorLastName  string    `json:"author_last_name"`
	AuthorFirstName string    `json:"author_first_name"`
	Date            Timestamp `json:"date"`
	Lat             float64   `json:"lat"`
	Lon             float64   `json:"lon"`
	Uncertainty     float64   `json:"uncertainty"`
	Message         *string   `json:"message"`
}

// CatchReport is what a finder submits through the catch topic.
type CatchReport struct {
	CopyUID     int        `json:"copy_uid" validate:"required,gt=0"`
	Secret      string     `json:"secret" validate:"required,min=5"`
	Lat         *float64   `json:"lat" validate:"required"`
	Lon         *float64   `json:"lon" validate:"required"`
	Uncertainty *float64   `json:"uncertainty" validate:"required,gte=0"`
	Date        *Timestamp `json:"date,omitempty"`
	Message     *string    `json:"message,omitempty" validate:"omitempty,max=80"`
}

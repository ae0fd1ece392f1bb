package models

import "time"

// Level is the difficulty level of a course.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Course represents a catalog course. Courses are owned by the course source
// (remote API or static dataset) and are read-only inside the engine.
type Course struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription,omitempty"`
	Image           string    `json:"image,omitempty"`
	Instructor      string    `json:"instructor"`
	InstructorImage string    `json:"instructorImage,omitempty"`
	Rating          float64   `json:"rating"`
	Reviews         int       `json:"reviews"`
	Students        int       `json:"students"`
	Duration        string    `json:"duration"` // display string, e.g. "12 hours"
	Lessons         int       `json:"lessons"`
	Level           Level     `json:"level"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Price           float64   `json:"price"`
	IsFeatured      bool      `json:"isFeatured"`
	IsNew           bool      `json:"isNew"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

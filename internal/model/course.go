package model

import "time"

// CourseLevel enumerates the certification levels a course can target.
type CourseLevel string

const (
	LevelFoundational CourseLevel = "Foundational"
	LevelAssociate    CourseLevel = "Associate"
	LevelProfessional CourseLevel = "Professional"
	LevelSpecialty    CourseLevel = "Specialty"
)

// Provider is the certifying organization a course belongs to.
type Provider struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Course represents a certification course as returned by the API.
type Course struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Description  *string     `json:"description"`
	Level        CourseLevel `json:"level"`
	ThumbnailURL *string     `json:"thumbnailUrl"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	Provider     Provider    `json:"provider"`
	Count        CourseCount `json:"_count"`
}

// CourseCount carries relation counts embedded in course payloads.
type CourseCount struct {
	Exams int `json:"exams"`
}

// CourseRef is the compact course reference nested in exam payloads.
type CourseRef struct {
	ID    int64       `json:"id"`
	Title string      `json:"title"`
	Level CourseLevel `json:"level"`
}

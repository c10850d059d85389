package university

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// University is a participating college.
type University struct {
	gorm.Model
	Name        string         `json:"name" gorm:"not null;index"`
	Location    string         `json:"location"`
	Founded     int            `json:"founded"`
	Description string         `json:"description"`
	Emblem      string         `json:"emblem"`
	ImageURL    string         `json:"image_url"`
	Links       datatypes.JSON `json:"links"`
}

type UpsertCollegeRequest struct {
	Name        string         `json:"name" binding:"required"`
	Location    string         `json:"location"`
	Founded     int            `json:"founded"`
	Description string         `json:"description"`
	LogoURL     string         `json:"logoURL"`
	PictureURL  string         `json:"pictureURL"`
	Links       datatypes.JSON `json:"links"`
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LibraryResource is a shared training material in the resource library
type LibraryResource struct {
	gorm.Model
	Title         string         `json:"title"`
	Description   string         `json:"description" gorm:"type:text"`
	Type          string         `json:"type" gorm:"default:'DOCUMENT'"` // DOCUMENT, VIDEO, AUDIO, IMAGE, LINK
	FilePath      string         `json:"file_path"`
	ExternalURL   string         `json:"external_url"`
	Category      string         `json:"category"`
	Tags          datatypes.JSON `json:"tags"`
	AccessLevel   string         `json:"access_level" gorm:"default:'PUBLIC'"` // PUBLIC, AGENTS, FIELD_OFFICERS, ADMINS
	IsFeatured    bool           `json:"is_featured" gorm:"default:false"`
	DownloadCount int            `json:"download_count" gorm:"default:0"`
	ViewCount     int            `json:"view_count" gorm:"default:0"`
	UploadedBy    uint           `json:"uploaded_by" gorm:"index;not null"`
	IsDeleted     bool           `gorm:"default:false"`
}

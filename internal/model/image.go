package model

// Image is a display-only attachment on a work log. URL points at the
// configured image host; PublicID is the host-side identifier used for
// remote deletion.
type Image struct {
	BaseModel
	WorkLogID uint   `gorm:"index;type:bigint unsigned;not null" json:"workLogId"`
	URL       string `gorm:"size:500;not null" json:"url"`
	PublicID  string `gorm:"size:100" json:"publicId,omitempty"`
}

func (Image) TableName() string {
	return "images"
}

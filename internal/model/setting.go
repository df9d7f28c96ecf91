package model

// Setting is one row of the flat key-value store for admin-tunable runtime
// flags. It is read by the visibility policy and by presentation toggles,
// never used as a source of truth for authorization.
type Setting struct {
	BaseModel
	Key         string `gorm:"size:100;unique;not null" json:"key"`
	Value       string `gorm:"size:255;not null" json:"value"`
	Description string `gorm:"size:255" json:"description,omitempty"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys.
const (
	SettingRegistrationOpen       = "isRegistrationOpen"
	SettingRequireApproval        = "requireApproval"
	SettingShowHiddenCards        = "showHiddenCards"
	SettingShowWorkLogTitle       = "showWorkLogTitle"
	SettingShowWorkLogImages      = "showWorkLogImages"
	SettingShowWorkLogDescription = "showWorkLogDescription"
	SettingGlobalTheme            = "globalTheme"
)

// PublicSettingKeys are readable without authentication; AdminSettingKeys
// require an admin caller.
var (
	PublicSettingKeys = []string{SettingRegistrationOpen}
	AdminSettingKeys  = []string{
		SettingRequireApproval,
		SettingShowWorkLogTitle,
		SettingShowWorkLogImages,
		SettingShowWorkLogDescription,
		SettingShowHiddenCards,
		SettingGlobalTheme,
	}
)

package model

// DeviceConfiguration maps a device to its learner identity and holds the
// per-device editor preferences. The device identifier is the client-generated
// key that scopes the lazily created pseudo-identity.
type DeviceConfiguration struct {
	BaseModel
	DeviceID       string `gorm:"size:64;uniqueIndex;not null" json:"deviceId"`
	UserID         uint   `gorm:"index;not null" json:"userId"`
	Theme          string `gorm:"size:20;default:'dark'" json:"theme"`
	EditorFontSize int    `gorm:"default:14" json:"editorFontSize"`
	AutoSave       bool   `gorm:"default:true" json:"autoSave"`
}

func (DeviceConfiguration) TableName() string {
	return "device_configurations"
}

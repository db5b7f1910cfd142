package models

// WebhookSetting configures one outbound notification target (Zapier or any
// JSON consumer). Secret signs the payload so the receiver can verify origin.
type WebhookSetting struct {
	BaseModel
	Event     WebhookEvent `json:"event" gorm:"type:varchar(40);not null;index" validate:"required"`
	TargetURL string       `json:"target_url" gorm:"not null;size:500" validate:"required,url,max=500"`
	Secret    string       `json:"-" gorm:"size:100"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for WebhookSetting
func (WebhookSetting) TableName() string {
	return "webhook_settings"
}

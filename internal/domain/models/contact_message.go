package models

// ContactMessage 公开联系表单提交的留言
type ContactMessage struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Email   string `gorm:"type:varchar(100);not null" json:"email"`
	Subject string `gorm:"type:varchar(200)" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`
}

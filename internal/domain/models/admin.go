package models

// Admin represents the administrator account of the portfolio site.
// Email comparison is a case-sensitive exact match against the unique column.
type Admin struct {
	BaseModel
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(100);not null" json:"-"` // Hash not exposed in JSON
}

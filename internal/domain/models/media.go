package models

// 媒体类型
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media represents a portfolio media record.
// DisplayOrder is the single ranking key for the whole collection: unique
// among live records, appended at max+1, gaps left by deletions are kept.
type Media struct {
	BaseModel
	Title        string  `gorm:"type:varchar(200);not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	Category     string  `gorm:"type:varchar(100);index" json:"category"`
	MediaType    string  `gorm:"type:varchar(20);not null;default:'image'" json:"media_type"` // image, video
	Filename     string  `gorm:"type:varchar(100);not null" json:"-"`                         // 资源文件引用，字节内容归资源存储所有
	FileURL      string  `gorm:"type:varchar(255)" json:"file_url"`
	ThumbnailURL *string `gorm:"type:varchar(255)" json:"thumbnail_url"`
	Featured     bool    `gorm:"default:false" json:"featured"`
	DisplayOrder int     `gorm:"column:display_order;uniqueIndex" json:"order"`
}

// TableName 固定表名，避免复数化规则产生意外表名
func (Media) TableName() string {
	return "media"
}

// IsValidMediaType 校验媒体类型取值
func IsValidMediaType(t string) bool {
	return t == MediaTypeImage || t == MediaTypeVideo
}

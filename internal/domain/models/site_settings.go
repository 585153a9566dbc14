package models

// SettingsTypeSite 站点设置单行记录的固定判别键
const SettingsTypeSite = "site"

// SiteSettings 站点设置，按固定判别键只保留一行，整行原地更新
type SiteSettings struct {
	Type            string  `gorm:"column:type;type:varchar(20);primaryKey" json:"-"`
	SiteTitle       string  `gorm:"type:varchar(100)" json:"site_title"`
	Tagline         string  `gorm:"type:varchar(200)" json:"tagline"`
	AboutBio        string  `gorm:"type:text" json:"about_bio"`
	ContactEmail    string  `gorm:"type:varchar(100)" json:"contact_email"`
	SocialInstagram *string `gorm:"type:varchar(200)" json:"social_instagram"`
	SocialTwitter   *string `gorm:"type:varchar(200)" json:"social_twitter"`
	SocialVimeo     *string `gorm:"type:varchar(200)" json:"social_vimeo"`
}

// DefaultSiteSettings 未持久化任何设置时返回的默认值
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Type:      SettingsTypeSite,
		SiteTitle: "Findelmundo",
		Tagline:   "Audio • Video • Photography",
	}
}

package model

// Division 业务事业部
type Division struct {
	BaseModel
	DivisionName string `gorm:"size:150;not null" json:"division_name"`
	Slug         string `gorm:"size:150;not null;uniqueIndex" json:"slug"`
}

func (Division) TableName() string {
	return "divisions"
}

// ContactUs 联系我们留言，只做物理删除
type ContactUs struct {
	BaseModel
	Name        string `gorm:"size:150;not null" json:"name"`
	Email       string `gorm:"size:255;not null;index" json:"email"`
	UserMessage string `gorm:"type:text;not null" json:"user_message"`
}

func (ContactUs) TableName() string {
	return "contact_us"
}

package models

type ArticleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:200;not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// Articles and tickets are independent aggregates.
}

func (ArticleModel) TableName() string {
	return "articles"
}

package models

type TicketModel struct {
	ID               uint   `gorm:"primaryKey"`
	IssueTitle       string `gorm:"size:200;not null"`
	IssueDescription string `gorm:"type:text;not null"`
	CustomerName     string `gorm:"size:100;not null"`
	CustomerEmail    string `gorm:"size:255;not null"`
	Urgency          string `gorm:"size:20;not null;index"`
	ForwardingStatus string `gorm:"size:20;not null;default:'pending';index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

package model

import "github.com/Guyuepp/creatorhub/domain"

type Creator struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	UserID   int64   `gorm:"column:user_id;not null;uniqueIndex"`
	Name     string  `gorm:"type:varchar(100);not null"`
	Bio      string  `gorm:"type:text"`
	Price    float64 `gorm:"type:decimal(10,2);default:0"`
	Category string  `gorm:"type:varchar(50)"`
}

func (Creator) TableName() string {
	return "creators"
}

func (m *Creator) ToDomain() domain.Creator {
	return domain.Creator{
		ID:       m.ID,
		UserID:   m.UserID,
		Name:     m.Name,
		Bio:      m.Bio,
		Price:    m.Price,
		Category: m.Category,
	}
}

package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FRName   string    `gorm:"unique;not null" json:"fr_name"`
	ARName   string    `gorm:"unique;not null" json:"ar_name"`
	Image    string    `json:"image"`
	Special  bool      `json:"special"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

package model

// Client 资产归属客户，code 作为资产编号的首段
type Client struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_client_name" json:"name"`
	Code        string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_client_code" json:"code"`
	ContactName *string `gorm:"type:varchar(128)" json:"contact_name"`
	Email       *string `gorm:"type:varchar(255)" json:"email"`
	Phone       *string `gorm:"type:varchar(64)" json:"phone"`
	IsDeleted   int8    `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*Client) TableName() string { return "client" }

package model

// 基础资料表：名称唯一，被引用时只做停用不做物理删除

type Location struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_location_name" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	IsDeleted   int8    `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*Location) TableName() string { return "location" }

type Department struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_department_name" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	IsDeleted   int8    `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*Department) TableName() string { return "department" }

type CustomCategory struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_custom_category_name" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	IsDeleted   int8    `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*CustomCategory) TableName() string { return "custom_category" }

type PresetCategory struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_preset_category_name" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	IsDeleted   int8    `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*PresetCategory) TableName() string { return "preset_category" }

type PresetDepartment struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_preset_department_name" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	IsDeleted   int8    `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*PresetDepartment) TableName() string { return "preset_department" }

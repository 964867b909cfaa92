package models

// Reference entities maintained by the upstream CRUD modules. The engines
// only ever read them.

type AssociateModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string
	CompanyID string `gorm:"type:uuid;index"`
}

type AssociateCompanyModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"index"`
}

type ProductModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"index"`
}

type SubCategoryModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"index"`
	ProductID string `gorm:"type:uuid;index"`
}

type ProductVariantModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Name          string
	ProductID     string `gorm:"type:uuid;index"`
	SubCategoryID string `gorm:"type:uuid;index"`
}

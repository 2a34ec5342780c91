package models

// ProductType is a category label referenced by products.
type ProductType struct {
	ProductTypeID int64  `json:"productTypeID" gorm:"column:productTypeID;primaryKey;autoIncrement"`
	ProductType   string `json:"productType" gorm:"column:productType;type:varchar(100);not null"`
}

func (ProductType) TableName() string { return "productType" }

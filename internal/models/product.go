package models

// Product represents a row of the product table.
type Product struct {
	ProductID     int64   `json:"productID" gorm:"column:productID;primaryKey;autoIncrement"`
	ProductName   string  `json:"productName" gorm:"column:productName;type:varchar(255);not null"`
	TotalCost     float64 `json:"totalCost" gorm:"column:totalCost;type:decimal(10,2);not null;default:0"`
	SalePrice     float64 `json:"salePrice" gorm:"column:salePrice;type:decimal(10,2);not null;default:0"`
	StockAmount   int64   `json:"stockAmount" gorm:"column:stockAmount;not null;default:0"`
	ProductTypeID int64   `json:"productTypeID" gorm:"column:productTypeID;index"`
}

func (Product) TableName() string { return "product" }

// ProductDetail is a product joined with its type label. ProductType is nil
// when the referenced type row no longer exists.
type ProductDetail struct {
	ProductID     int64   `json:"productID" gorm:"column:productID"`
	ProductName   string  `json:"productName" gorm:"column:productName"`
	TotalCost     float64 `json:"totalCost" gorm:"column:totalCost"`
	SalePrice     float64 `json:"salePrice" gorm:"column:salePrice"`
	StockAmount   int64   `json:"stockAmount" gorm:"column:stockAmount"`
	ProductTypeID int64   `json:"productTypeID" gorm:"column:productTypeID"`
	ProductType   *string `json:"productType" gorm:"column:productType"`
}

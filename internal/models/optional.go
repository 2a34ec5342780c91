package models

import "encoding/json"

// Optional records whether a JSON field was sent at all, and whether it was
// sent as null, in addition to its decoded value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON is only invoked for keys present in the document, null included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Present reports whether a non-null value was supplied.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// ProductInput is the request body for product create and update.
type ProductInput struct {
	ProductName   Optional[string]  `json:"productName"`
	TotalCost     Optional[float64] `json:"totalCost"`
	SalePrice     Optional[float64] `json:"salePrice"`
	StockAmount   Optional[int64]   `json:"stockAmount"`
	ProductTypeID Optional[int64]   `json:"productTypeID"`
}

// ProductTypeInput is the request body for product type create and update.
type ProductTypeInput struct {
	ProductType Optional[string] `json:"productType"`
}

// ProductTypeRef is the request body of the dedicated type update.
type ProductTypeRef struct {
	ProductTypeID Optional[int64] `json:"productTypeID"`
}

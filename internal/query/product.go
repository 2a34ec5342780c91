package query

import (
	"fmt"
	"strings"
)

// Product columns that may appear in an UPDATE, in the order they are emitted.
var ProductColumns = []string{"productName", "totalCost", "salePrice", "stockAmount", productTypeRefCol}

// ProductRow carries the values of a new product.
type ProductRow struct {
	ProductName   string
	TotalCost     float64
	SalePrice     float64
	StockAmount   int64
	ProductTypeID int64
}

const productSelectSQL = "SELECT ?, ?, ?, ?, ?, ?, ? FROM ? LEFT JOIN ? ON ? = ?"

// productSelect returns the joined projection shared by every product read.
func productSelect() []interface{} {
	return args(
		Column(productAlias, productKey),
		Column(productAlias, "productName"),
		Column(productAlias, "totalCost"),
		Column(productAlias, "salePrice"),
		Column(productAlias, "stockAmount"),
		Column(productAlias, productTypeRefCol),
		Column(productTypeAlias, ProductTypeLabel),
		Aliased(productTable, productAlias),
		Aliased(ProductTypeTable, productTypeAlias),
		Column(productAlias, productTypeRefCol),
		Column(productTypeAlias, ProductTypeKey),
	)
}

// ListProducts selects every product with its type label, ordered by id.
func ListProducts() Query {
	return Query{
		SQL:  productSelectSQL + " ORDER BY ?",
		Args: append(productSelect(), Column(productAlias, productKey)),
	}
}

// ProductByID selects one product with its type label.
func ProductByID(id int64) Query {
	return Query{
		SQL:  productSelectSQL + " WHERE ? = ?",
		Args: append(productSelect(), Column(productAlias, productKey), id),
	}
}

// SearchProducts matches product names containing name.
func SearchProducts(name string) Query {
	return Query{
		SQL:  productSelectSQL + " WHERE ? LIKE ? ORDER BY ?",
		Args: append(productSelect(), Column(productAlias, "productName"), Contains(name), Column(productAlias, "productName")),
	}
}

// ProductsByType selects the products referencing a type, ordered by name.
func ProductsByType(typeID int64) Query {
	return Query{
		SQL:  productSelectSQL + " WHERE ? = ? ORDER BY ?",
		Args: append(productSelect(), Column(productAlias, productTypeRefCol), typeID, Column(productAlias, "productName")),
	}
}

// LowStockProducts selects products with stockAmount <= threshold, lowest
// stock first, then by name. The threshold is bound exactly as the client
// sent it and the store coerces it.
func LowStockProducts(threshold string) Query {
	return Query{
		SQL: productSelectSQL + " WHERE ? <= ? ORDER BY ? ASC, ?",
		Args: append(productSelect(),
			Column(productAlias, "stockAmount"), threshold,
			Column(productAlias, "stockAmount"), Column(productAlias, "productName")),
	}
}

// InsertProduct inserts a product with every column set explicitly.
func InsertProduct(row ProductRow) Query {
	return Query{
		SQL: "INSERT INTO ? (?, ?, ?, ?, ?) VALUES (?, ?, ?, ?, ?)",
		Args: args(
			Table(productTable),
			Column("", "productName"), Column("", "totalCost"), Column("", "salePrice"),
			Column("", "stockAmount"), Column("", productTypeRefCol),
			row.ProductName, row.TotalCost, row.SalePrice, row.StockAmount, row.ProductTypeID,
		),
		Key: productKey,
	}
}

// UpdateProduct sets only the given columns of one product.
func UpdateProduct(id int64, sets []Assignment) (Query, error) {
	if len(sets) == 0 {
		return Query{}, ErrNoAssignments
	}

	clauses := make([]string, 0, len(sets))
	vals := args(Table(productTable))
	for _, set := range sets {
		if !isProductColumn(set.Column) {
			return Query{}, fmt.Errorf("%w: %q is not an updatable product column", ErrInvalidIdentifier, set.Column)
		}
		clauses = append(clauses, "? = ?")
		vals = append(vals, Column("", set.Column), set.Value)
	}
	vals = append(vals, Column("", productKey), id)

	return Query{
		SQL:  "UPDATE ? SET " + strings.Join(clauses, ", ") + " WHERE ? = ?",
		Args: vals,
	}, nil
}

// UpdateProductTypeRef points a product at another type.
func UpdateProductTypeRef(id, typeID int64) Query {
	q, _ := UpdateProduct(id, []Assignment{{Column: productTypeRefCol, Value: typeID}})
	return q
}

// DeleteProduct removes one product.
func DeleteProduct(id int64) Query {
	return Query{
		SQL:  "DELETE FROM ? WHERE ? = ?",
		Args: args(Table(productTable), Column("", productKey), id),
	}
}

func isProductColumn(name string) bool {
	for _, col := range ProductColumns {
		if col == name {
			return true
		}
	}
	return false
}

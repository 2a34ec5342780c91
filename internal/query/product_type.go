package query

const (
	ProductTypeTable  = "productType"
	ProductTypeKey    = "productTypeID"
	ProductTypeLabel  = "productType"
	productTypeAlias  = "pt"
	productTable      = "product"
	productAlias      = "p"
	productKey        = "productID"
	productTypeRefCol = "productTypeID"
)

// ListProductTypes selects every product type ordered by id.
func ListProductTypes() Query {
	return Query{
		SQL:  "SELECT * FROM ? ORDER BY ?",
		Args: args(Table(ProductTypeTable), Column("", ProductTypeKey)),
	}
}

// ProductTypeByID selects one product type.
func ProductTypeByID(id int64) Query {
	return Query{
		SQL:  "SELECT * FROM ? WHERE ? = ?",
		Args: args(Table(ProductTypeTable), Column("", ProductTypeKey), id),
	}
}

// ProductTypeExists selects only the key of a product type; it backs the
// integrity check that precedes product writes.
func ProductTypeExists(id int64) Query {
	return Query{
		SQL:  "SELECT ? FROM ? WHERE ? = ?",
		Args: args(Column("", ProductTypeKey), Table(ProductTypeTable), Column("", ProductTypeKey), id),
	}
}

// InsertProductType inserts a new label.
func InsertProductType(label string) Query {
	return Query{
		SQL:  "INSERT INTO ? (?) VALUES (?)",
		Args: args(Table(ProductTypeTable), Column("", ProductTypeLabel), label),
		Key:  ProductTypeKey,
	}
}

// UpdateProductType renames a product type.
func UpdateProductType(id int64, label string) Query {
	return Query{
		SQL:  "UPDATE ? SET ? = ? WHERE ? = ?",
		Args: args(Table(ProductTypeTable), Column("", ProductTypeLabel), label, Column("", ProductTypeKey), id),
	}
}

// DeleteProductType removes a product type.
func DeleteProductType(id int64) Query {
	return Query{
		SQL:  "DELETE FROM ? WHERE ? = ?",
		Args: args(Table(ProductTypeTable), Column("", ProductTypeKey), id),
	}
}

// CountProductsOfType counts the products referencing a type, as "count".
func CountProductsOfType(id int64) Query {
	return Query{
		SQL:  "SELECT COUNT(*) AS ? FROM ? WHERE ? = ?",
		Args: args(Column("", "count"), Table(productTable), Column("", productTypeRefCol), id),
	}
}

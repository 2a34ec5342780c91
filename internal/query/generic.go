package query

// genericKey is the column generic lookups match on.
const genericKey = "id"

// SelectAll selects every row of an arbitrary table.
func SelectAll(table string) (Query, error) {
	if err := Ident(table); err != nil {
		return Query{}, err
	}
	return Query{
		SQL:  "SELECT * FROM ?",
		Args: args(Table(table)),
	}, nil
}

// SelectByID selects rows of an arbitrary table whose id column equals id.
// The id is bound as received; the table decides how it compares.
func SelectByID(table, id string) (Query, error) {
	if err := Ident(table); err != nil {
		return Query{}, err
	}
	return Query{
		SQL:  "SELECT * FROM ? WHERE ? = ?",
		Args: args(Table(table), Column("", genericKey), id),
	}, nil
}

// SearchTable matches rows whose field contains value.
func SearchTable(table, field, value string) (Query, error) {
	if err := Ident(table); err != nil {
		return Query{}, err
	}
	if err := Ident(field); err != nil {
		return Query{}, err
	}
	return Query{
		SQL:  "SELECT * FROM ? WHERE ? LIKE ?",
		Args: args(Table(table), Column("", field), Contains(value)),
	}, nil
}

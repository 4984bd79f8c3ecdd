package schema

// RefTraditionCategoryTable represents the 'ref.traditioncategory' table
type RefTraditionCategoryTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// RefTraditionCategory is the schema definition for ref.traditioncategory
var RefTraditionCategory = RefTraditionCategoryTable{
	Table:     "ref.traditioncategory",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

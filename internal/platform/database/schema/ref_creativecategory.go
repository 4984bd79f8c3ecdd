package schema

// RefCreativeCategoryTable represents the 'ref.creativecategory' table
type RefCreativeCategoryTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// RefCreativeCategory is the schema definition for ref.creativecategory
var RefCreativeCategory = RefCreativeCategoryTable{
	Table:     "ref.creativecategory",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

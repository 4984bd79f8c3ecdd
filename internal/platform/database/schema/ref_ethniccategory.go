package schema

// RefEthnicCategoryTable represents the 'ref.ethniccategory' table
type RefEthnicCategoryTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// RefEthnicCategory is the schema definition for ref.ethniccategory
var RefEthnicCategory = RefEthnicCategoryTable{
	Table:     "ref.ethniccategory",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

package schema

// RefCreativeSubCategoryTable represents the 'ref.creativesubcategory' table
type RefCreativeSubCategoryTable struct {
	Table      string
	ID         string
	CategoryID string
	Name       string
	CreatedAt  string
}

// RefCreativeSubCategory is the schema definition for ref.creativesubcategory
var RefCreativeSubCategory = RefCreativeSubCategoryTable{
	Table:      "ref.creativesubcategory",
	ID:         "id",
	CategoryID: "categoryid",
	Name:       "name",
	CreatedAt:  "createdat",
}

package schema

// ContentCreativeActivityTable represents the 'content.creativeactivity' table
type ContentCreativeActivityTable struct {
	Table           string
	ID              string
	CategoryID      string
	SubCategoryID   string
	Name            string
	District        string
	Amphoe          string
	Province        string
	Village         string
	CoordinatorName string
	Phone           string
	Description     string
	Summary         string
	Results         string
	StartYear       string
	VideoLink       string
	ReportFileURL   string
	Type            string
	Zipcode         string
	DistrictCode    string
	AmphoeCode      string
	ProvinceCode    string
	ViewCount       string
	CreatedAt       string
	UpdatedAt       string
}

// ContentCreativeActivity is the schema definition for content.creativeactivity
var ContentCreativeActivity = ContentCreativeActivityTable{
	Table:           "content.creativeactivity",
	ID:              "id",
	CategoryID:      "categoryid",
	SubCategoryID:   "subcategoryid",
	Name:            "name",
	District:        "district",
	Amphoe:          "amphoe",
	Province:        "province",
	Village:         "village",
	CoordinatorName: "coordinatorname",
	Phone:           "phone",
	Description:     "description",
	Summary:         "summary",
	Results:         "results",
	StartYear:       "startyear",
	VideoLink:       "videolink",
	ReportFileURL:   "reportfileurl",
	Type:            "type",
	Zipcode:         "zipcode",
	DistrictCode:    "districtcode",
	AmphoeCode:      "amphoecode",
	ProvinceCode:    "provincecode",
	ViewCount:       "viewcount",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t ContentCreativeActivityTable) Columns() []string {
	return []string{
		t.ID, t.CategoryID, t.SubCategoryID, t.Name, t.District, t.Amphoe, t.Province,
		t.Village, t.CoordinatorName, t.Phone, t.Description, t.Summary, t.Results,
		t.StartYear, t.VideoLink, t.ReportFileURL, t.Type, t.Zipcode, t.DistrictCode,
		t.AmphoeCode, t.ProvinceCode, t.ViewCount, t.CreatedAt, t.UpdatedAt,
	}
}

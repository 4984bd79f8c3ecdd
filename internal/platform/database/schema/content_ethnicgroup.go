package schema

// ContentEthnicGroupTable represents the 'content.ethnicgroup' table
type ContentEthnicGroupTable struct {
	Table               string
	ID                  string
	CategoryID          string
	Name                string
	History             string
	ActivityName        string
	ActivityOrigin      string
	ActivityDetails     string
	AlcoholFreeApproach string
	Results             string
	StartYear           string
	District            string
	Amphoe              string
	Province            string
	Village             string
	Type                string
	Zipcode             string
	DistrictCode        string
	AmphoeCode          string
	ProvinceCode        string
	VideoLink           string
	FileURL             string
	ViewCount           string
	CreatedAt           string
	UpdatedAt           string
}

// ContentEthnicGroup is the schema definition for content.ethnicgroup
var ContentEthnicGroup = ContentEthnicGroupTable{
	Table:               "content.ethnicgroup",
	ID:                  "id",
	CategoryID:          "categoryid",
	Name:                "name",
	History:             "history",
	ActivityName:        "activityname",
	ActivityOrigin:      "activityorigin",
	ActivityDetails:     "activitydetails",
	AlcoholFreeApproach: "alcoholfreeapproach",
	Results:             "results",
	StartYear:           "startyear",
	District:            "district",
	Amphoe:              "amphoe",
	Province:            "province",
	Village:             "village",
	Type:                "type",
	Zipcode:             "zipcode",
	DistrictCode:        "districtcode",
	AmphoeCode:          "amphoecode",
	ProvinceCode:        "provincecode",
	VideoLink:           "videolink",
	FileURL:             "fileurl",
	ViewCount:           "viewcount",
	CreatedAt:           "createdat",
	UpdatedAt:           "updatedat",
}

func (t ContentEthnicGroupTable) Columns() []string {
	return []string{
		t.ID, t.CategoryID, t.Name, t.History, t.ActivityName, t.ActivityOrigin,
		t.ActivityDetails, t.AlcoholFreeApproach, t.Results, t.StartYear, t.District,
		t.Amphoe, t.Province, t.Village, t.Type, t.Zipcode, t.DistrictCode,
		t.AmphoeCode, t.ProvinceCode, t.VideoLink, t.FileURL, t.ViewCount,
		t.CreatedAt, t.UpdatedAt,
	}
}

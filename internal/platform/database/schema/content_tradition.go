package schema

// ContentTraditionTable represents the 'content.tradition' table
type ContentTraditionTable struct {
	Table               string
	ID                  string
	CategoryID          string
	Name                string
	District            string
	Amphoe              string
	Province            string
	Village             string
	CoordinatorName     string
	Phone               string
	History             string
	AlcoholFreeApproach string
	Results             string
	StartYear           string
	VideoLink           string
	PolicyFileURL       string
	Type                string
	Zipcode             string
	DistrictCode        string
	AmphoeCode          string
	ProvinceCode        string
	ViewCount           string
	CreatedAt           string
	UpdatedAt           string
}

// ContentTradition is the schema definition for content.tradition
var ContentTradition = ContentTraditionTable{
	Table:               "content.tradition",
	ID:                  "id",
	CategoryID:          "categoryid",
	Name:                "name",
	District:            "district",
	Amphoe:              "amphoe",
	Province:            "province",
	Village:             "village",
	CoordinatorName:     "coordinatorname",
	Phone:               "phone",
	History:             "history",
	AlcoholFreeApproach: "alcoholfreeapproach",
	Results:             "results",
	StartYear:           "startyear",
	VideoLink:           "videolink",
	PolicyFileURL:       "policyfileurl",
	Type:                "type",
	Zipcode:             "zipcode",
	DistrictCode:        "districtcode",
	AmphoeCode:          "amphoecode",
	ProvinceCode:        "provincecode",
	ViewCount:           "viewcount",
	CreatedAt:           "createdat",
	UpdatedAt:           "updatedat",
}

func (t ContentTraditionTable) Columns() []string {
	return []string{
		t.ID, t.CategoryID, t.Name, t.District, t.Amphoe, t.Province, t.Village,
		t.CoordinatorName, t.Phone, t.History, t.AlcoholFreeApproach, t.Results,
		t.StartYear, t.VideoLink, t.PolicyFileURL, t.Type, t.Zipcode, t.DistrictCode,
		t.AmphoeCode, t.ProvinceCode, t.ViewCount, t.CreatedAt, t.UpdatedAt,
	}
}

package schema

// ContentPublicPolicyTable represents the 'content.publicpolicy' table
type ContentPublicPolicyTable struct {
	Table         string
	ID            string
	Name          string
	SigningDate   string
	Level         string
	HealthRegion  string
	District      string
	Amphoe        string
	Province      string
	Village       string
	Type          string
	Zipcode       string
	DistrictCode  string
	AmphoeCode    string
	ProvinceCode  string
	Content       string
	Summary       string
	Results       string
	PolicyFileURL string
	VideoLink     string
	ViewCount     string
	CreatedAt     string
	UpdatedAt     string
}

// ContentPublicPolicy is the schema definition for content.publicpolicy
var ContentPublicPolicy = ContentPublicPolicyTable{
	Table:         "content.publicpolicy",
	ID:            "id",
	Name:          "name",
	SigningDate:   "signingdate",
	Level:         "level",
	HealthRegion:  "healthregion",
	District:      "district",
	Amphoe:        "amphoe",
	Province:      "province",
	Village:       "village",
	Type:          "type",
	Zipcode:       "zipcode",
	DistrictCode:  "districtcode",
	AmphoeCode:    "amphoecode",
	ProvinceCode:  "provincecode",
	Content:       "content",
	Summary:       "summary",
	Results:       "results",
	PolicyFileURL: "policyfileurl",
	VideoLink:     "videolink",
	ViewCount:     "viewcount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t ContentPublicPolicyTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.SigningDate, t.Level, t.HealthRegion, t.District, t.Amphoe,
		t.Province, t.Village, t.Type, t.Zipcode, t.DistrictCode, t.AmphoeCode,
		t.ProvinceCode, t.Content, t.Summary, t.Results, t.PolicyFileURL,
		t.VideoLink, t.ViewCount, t.CreatedAt, t.UpdatedAt,
	}
}

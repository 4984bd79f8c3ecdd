package schema

// ContentImageTable represents the 'content.image' table
type ContentImageTable struct {
	Table              string
	ID                 string
	URL                string
	TraditionID        string
	CreativeActivityID string
	EthnicGroupID      string
	PublicPolicyID     string
	CreatedAt          string
}

// ContentImage is the schema definition for content.image
var ContentImage = ContentImageTable{
	Table:              "content.image",
	ID:                 "id",
	URL:                "url",
	TraditionID:        "traditionid",
	CreativeActivityID: "creativeactivityid",
	EthnicGroupID:      "ethnicgroupid",
	PublicPolicyID:     "publicpolicyid",
	CreatedAt:          "createdat",
}

func (t ContentImageTable) Columns() []string {
	return []string{t.ID, t.URL, t.TraditionID, t.CreativeActivityID, t.EthnicGroupID, t.PublicPolicyID, t.CreatedAt}
}

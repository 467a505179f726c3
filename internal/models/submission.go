package models

const (
	MaxFundingRequest = 500000
	FundingStep       = 5000
	MinTRL            = 1
	MaxTRL            = 9
)

// Domains lists the project domains offered by the submit form.
var Domains = []string{"Healthcare", "AI/ML", "Manufacturing", "Energy", "Sustainability", "Other"}

// Submission is the "Submit Project" form.
type Submission struct {
	Title          string `form:"title" json:"title"`
	Domain         string `form:"domain" json:"domain"`
	FundingRequest int    `form:"funding_request" json:"funding_request"` // in ₹
	TRL            int    `form:"trl" json:"trl"`
}

// Download is a generated file handed back to the caller.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

package models

// Report is the model answer, kept verbatim.
type Report struct {
	Action Action `json:"action"`
	Model  string `json:"model"`
	Text   string `json:"report"`
}

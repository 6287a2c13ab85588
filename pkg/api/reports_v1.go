// pkg/api/reports_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for seed-pairing reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Transcript  string `json:"transcript"`
	Gene        string `json:"gene,omitempty"`
	Length      string `json:"length,omitempty"`
	Strand      string `json:"strand"` // "Forward" | "Reverse"
	Perfect     int    `json:"perfect"`
	Wobble      int    `json:"wobble"`
	Positions   int    `json:"positions"`
	Truncated   bool   `json:"truncated,omitempty"`
	QueryWindow string `json:"mirna_window"`
	RefWindow   string `json:"mrna_window"`
}

package models

// Record is a table row passed through verbatim, keyed by column name.
// Byte slices from the driver are converted to strings before they land here.
type Record map[string]any

// Response types

// SurahDetail is the body of GET /api/surahs/{id}.
type SurahDetail struct {
	Name  string   `json:"name"`
	PDFs  []string `json:"pdfs"`
	Audio []string `json:"audio"`
}

type AzkarEntry struct {
	ID          int64   `json:"id"` // azkar_id, ordering key within a section
	Text        string  `json:"text"`
	Description *string `json:"description"`
}

// SectionEntry is an AzkarEntry still tagged with its owning section,
// as read from the full azkar table.
type SectionEntry struct {
	SectionID int64
	AzkarEntry
}

type SectionAzkar struct {
	Section Record       `json:"section"`
	Azkar   []AzkarEntry `json:"azkar"`
}

// AllAzkar is the body of GET /api/azkar. AzkarData keys encode as
// JSON object keys ("1", "2", ...).
type AllAzkar struct {
	Sections  []Record               `json:"sections"`
	AzkarData map[int64][]AzkarEntry `json:"azkarData"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}

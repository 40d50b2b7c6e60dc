package models

const DefaultTone = "professional"

// ResumeFile is an uploaded resume as received from the client.
type ResumeFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CoverLetterInput struct {
	JobTitle       string
	CompanyName    string
	JobDescription string
	Tone           string
	Resume         ResumeFile
}

type CoverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}

type RewriteSummaryResponse struct {
	RewrittenSummary string `json:"rewritten_summary"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type GenerationListResponse struct {
	Generations []Generation `json:"generations"`
	Count       int          `json:"count"`
}

package services

import (
	"fmt"
	"strings"
)

const (
	SuggestionsMarker = "SUGGESTIONS:"
	SummaryMarker     = "SUMMARY:"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCoverLetterPrompt creates prompt for a tailored cover letter
func (pb *PromptBuilder) BuildCoverLetterPrompt(jobTitle, companyName, jobDescription, resumeText, tone string) string {
	if strings.TrimSpace(tone) == "" {
		tone = "professional"
	}

	return fmt.Sprintf(`You are an expert cover letter writer for software engineering internships and new graduate roles.

Write a personalized, truthful cover letter using ONLY:
1) The candidate's resume
2) The target job description
3) The job title and company name below

STRICT RULES:
1. DO NOT invent or assume experiences, projects, companies, or technologies that are not in the resume.
2. Mention the job title and the company name explicitly.
3. Write in first person singular ("I").
4. Length: 3-5 short paragraphs.
5. Focus on how the candidate's actual experience and skills match the job description.
6. Emphasize backend, API, full-stack, cloud, data, and performance work when it is relevant.
7. Tone: %s.

JOB TITLE: %s
COMPANY NAME: %s

JOB DESCRIPTION:
%s

RESUME:
%s

OUTPUT FORMAT:
Return ONLY the cover letter as plain text, starting with a salutation.
No markdown headings, no bullet points, no extra labels.`,
		tone, jobTitle, companyName, jobDescription, resumeText)
}

// BuildSuggestionsPrompt creates prompt for resume improvement suggestions
func (pb *PromptBuilder) BuildSuggestionsPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert technical resume reviewer.

Evaluate the candidate's resume against the job description and give ONLY short, actionable suggestions to improve the resume.

STRICT RULES:
1. DO NOT rewrite the resume and DO NOT output the resume.
2. DO NOT create fictional experiences or technologies.
3. Every suggestion MUST be based entirely on the resume text provided.
4. Each suggestion must be one sentence.
5. Give between 2 and 4 suggestions.
6. Focus on ATS optimization, quantification, clarity, and technical alignment.

JOB DESCRIPTION:
%s

RESUME:
%s

OUTPUT FORMAT (VERY IMPORTANT):
Return ONLY this structure and nothing else:

%s
- <suggestion 1>
- <suggestion 2>
- <suggestion 3>
- <suggestion 4>`,
		jobDescription, resumeText, SuggestionsMarker)
}

// BuildSummaryPrompt creates prompt for rewriting the resume summary
func (pb *PromptBuilder) BuildSummaryPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert technical resume writer.

Rewrite ONLY the summary section of the resume so it best matches the job description.

STRICT RULES:
1. DO NOT invent new experiences, skills, companies, or technologies.
2. Use ONLY information that already exists in the resume.
3. The new summary must be 2-3 lines at most.
4. Focus on backend, API, full-stack, cloud, data, and performance work when the job description asks for it.
5. Optimize wording for ATS and clarity while staying completely truthful.

JOB DESCRIPTION:
%s

FULL RESUME:
%s

OUTPUT FORMAT (VERY IMPORTANT):
Return ONLY this:

%s
<rewritten 2-3 line summary>

No commentary, no markdown, no bullets.`,
		jobDescription, resumeText, SummaryMarker)
}

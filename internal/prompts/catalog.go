package prompts

import _ "embed"

var (
	//go:embed templates/parse_resume.txt
	parseResumeTemplate string
	//go:embed templates/extract_keywords.txt
	extractKeywordsTemplate string
	//go:embed templates/improve_resume.txt
	improveResumeTemplate string
	//go:embed templates/cover_letter.txt
	coverLetterTemplate string
	//go:embed templates/outreach_message.txt
	outreachMessageTemplate string
	//go:embed templates/analyze_resume.txt
	analyzeResumeTemplate string
	//go:embed templates/enhance_description.txt
	enhanceDescriptionTemplate string
	//go:embed templates/regenerate_summary.txt
	regenerateSummaryTemplate string
	//go:embed templates/regenerate_experience.txt
	regenerateExperienceTemplate string
	//go:embed templates/regenerate_project.txt
	regenerateProjectTemplate string
	//go:embed templates/regenerate_skills.txt
	regenerateSkillsTemplate string
)

// Prompt ids used by the generation services.
const (
	IDParseResume          = "parse_resume"
	IDExtractKeywords      = "extract_keywords"
	IDImproveResume        = "improve_resume"
	IDCoverLetter          = "cover_letter"
	IDOutreachMessage      = "outreach_message"
	IDAnalyzeResume        = "analyze_resume"
	IDEnhanceDescription   = "enhance_description"
	IDRegenerateSummary    = "regenerate_summary"
	IDRegenerateExperience = "regenerate_experience"
	IDRegenerateProject    = "regenerate_project"
	IDRegenerateSkills     = "regenerate_skills"
)

// catalog lists every customizable prompt in declaration order.
var catalog = []Definition{
	{
		ID:             IDParseResume,
		Name:           "Resume Parser",
		Description:    "Converts uploaded resume text to structured JSON format",
		Category:       CategoryParsing,
		DefaultContent: parseResumeTemplate,
		Variables:      []string{"schema", "resume_text"},
		UsedIn:         []string{"Upload Resume"},
	},
	{
		ID:             IDExtractKeywords,
		Name:           "Keyword Extractor",
		Description:    "Extracts requirements and keywords from job descriptions",
		Category:       CategoryAnalysis,
		DefaultContent: extractKeywordsTemplate,
		Variables:      []string{"job_description"},
		UsedIn:         []string{"Tailor Resume"},
	},
	{
		ID:             IDImproveResume,
		Name:           "Resume Tailor",
		Description:    "Tailors resume content to match job description",
		Category:       CategoryGeneration,
		DefaultContent: improveResumeTemplate,
		Variables:      []string{"job_description", "job_keywords", "original_resume", "schema", "output_language"},
		UsedIn:         []string{"Tailor Resume"},
	},
	{
		ID:             IDCoverLetter,
		Name:           "Cover Letter Generator",
		Description:    "Generates personalized cover letters for job applications",
		Category:       CategoryGeneration,
		DefaultContent: coverLetterTemplate,
		Variables:      []string{"resume_data", "job_description", "output_language"},
		UsedIn:         []string{"Resume Builder"},
	},
	{
		ID:             IDOutreachMessage,
		Name:           "Outreach Generator",
		Description:    "Generates networking/cold outreach messages",
		Category:       CategoryGeneration,
		DefaultContent: outreachMessageTemplate,
		Variables:      []string{"resume_data", "job_description", "output_language"},
		UsedIn:         []string{"Resume Builder"},
	},
	{
		ID:             IDAnalyzeResume,
		Name:           "Resume Analyzer",
		Description:    "Identifies weak descriptions for AI enrichment",
		Category:       CategoryAnalysis,
		DefaultContent: analyzeResumeTemplate,
		Variables:      []string{"resume_json"},
		UsedIn:         []string{"Enrichment"},
	},
	{
		ID:             IDEnhanceDescription,
		Name:           "Description Enhancer",
		Description:    "Generates improved bullet points from user answers",
		Category:       CategoryGeneration,
		DefaultContent: enhanceDescriptionTemplate,
		Variables:      []string{"item_type", "title", "subtitle", "current_description", "answers"},
		UsedIn:         []string{"Enrichment"},
	},
	{
		ID:             IDRegenerateSummary,
		Name:           "Summary Regenerator",
		Description:    "Regenerates the professional summary section",
		Category:       CategoryGeneration,
		DefaultContent: regenerateSummaryTemplate,
		Variables:      []string{"current_content", "context_instruction", "job_instruction"},
		UsedIn:         []string{"Resume Builder"},
	},
	{
		ID:             IDRegenerateExperience,
		Name:           "Experience Regenerator",
		Description:    "Regenerates individual experience entries",
		Category:       CategoryGeneration,
		DefaultContent: regenerateExperienceTemplate,
		Variables:      []string{"title", "company", "duration", "description", "context_instruction", "job_instruction"},
		UsedIn:         []string{"Resume Builder"},
	},
	{
		ID:             IDRegenerateProject,
		Name:           "Project Regenerator",
		Description:    "Regenerates individual project entries",
		Category:       CategoryGeneration,
		DefaultContent: regenerateProjectTemplate,
		Variables:      []string{"title", "technologies", "description", "context_instruction", "job_instruction"},
		UsedIn:         []string{"Resume Builder"},
	},
	{
		ID:             IDRegenerateSkills,
		Name:           "Skills Regenerator",
		Description:    "Reorganizes and improves the skills section",
		Category:       CategoryGeneration,
		DefaultContent: regenerateSkillsTemplate,
		Variables:      []string{"current_content", "context_instruction", "job_instruction"},
		UsedIn:         []string{"Resume Builder"},
	},
}

var catalogByID = func() map[string]Definition {
	byID := make(map[string]Definition, len(catalog))
	for _, def := range catalog {
		byID[def.ID] = def
	}
	return byID
}()

// Catalog returns the fixed prompt definitions in declaration order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id and whether it exists.
func Lookup(id string) (Definition, bool) {
	def, ok := catalogByID[id]
	return def, ok
}

package assistant

import (
	"fmt"
	"strings"

	"phi/internal/domain"
)

func languageName(lang domain.Lang) string {
	if lang == domain.LangAR {
		return "Arabic"
	}
	return "English"
}

func respondIn(lang domain.Lang) string {
	return fmt.Sprintf("(Respond in %s)", languageName(lang))
}

// CVAction selects between the two CV coaching operations.
type CVAction string

const (
	ActionEvaluate CVAction = "Evaluate"
	ActionRewrite  CVAction = "Rewrite"
)

// Valid reports whether the action is one of the supported values.
func (a CVAction) Valid() bool {
	return a == ActionEvaluate || a == ActionRewrite
}

func buildCVPrompt(action CVAction, cvText string, lang domain.Lang) string {
	return fmt.Sprintf("Act as an expert career coach for the Phi platform. %s the following CV: \n\n---\n\n%s\n\n---\n\n%s",
		action, cvText, respondIn(lang))
}

func buildSOPPrompt(action CVAction, sopText, style string, lang domain.Lang) string {
	styleInstructions := fmt.Sprintf("The writing style should be %s.", style)
	return fmt.Sprintf("Act as an expert academic advisor for Phi. %s the following Statement of Purpose (SOP). %s\n\n---\n\n%s\n\n---\n\n%s",
		action, styleInstructions, sopText, respondIn(lang))
}

func buildInterviewQuestionPrompt(lang domain.Lang) string {
	return fmt.Sprintf("Generate a common behavioral interview question appropriate for a university student applying for scholarships. The question should be in %s. For example: 'Tell me about a time you faced a challenge.' or 'Describe a situation where you demonstrated leadership skills.'",
		languageName(lang))
}

func buildInterviewFeedbackPrompt(question, answer string, lang domain.Lang) string {
	langInstructions := fmt.Sprintf("(Provide feedback in %s)", languageName(lang))
	return fmt.Sprintf("Act as an interview coach for Phi. The user was asked the question: %q. The user provided the answer: %q. Provide constructive feedback on this answer. %s",
		question, answer, langInstructions)
}

func buildCertificatePrompt(name, issuer, duration, description string, lang domain.Lang) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a short (for a CV) and a long (for LinkedIn/SOP) professional description for the following certificate in %s.\n", languageName(lang))
	fmt.Fprintf(&b, "- Certificate Name: %s\n", name)
	fmt.Fprintf(&b, "- Issued by: %s\n", issuer)
	fmt.Fprintf(&b, "- Duration: %s\n", duration)
	fmt.Fprintf(&b, "- User's description: %s\n\n", description)
	b.WriteString(`Return the result as a JSON object with two keys: "short" and "long".`)
	return b.String()
}

const scholarshipFieldSpec = `For each scholarship, provide the following details adhering strictly to the JSON schema: id (unique integer), title (en/ar), university, country (en/ar), countryCode (ISO 3166-1 alpha-2, e.g., "US", "DE"), deadline (YYYY-MM-DD format), level (en/ar), specialty (en/ar), isOpen, isOpeningSoon, a concise summary (en/ar), a list of 3-4 requirements (en/ar), a list of 3-4 benefits (en/ar), and a realistic application link.

Return ONLY a JSON array of objects that validates against the provided schema. Do not include any other text or explanations.`

func buildTopScholarshipsPrompt(lang domain.Lang) string {
	var b strings.Builder
	b.WriteString(`Act as an expert scholarship database API for the "Phi" platform. Generate a list of 6 popular and highly diverse scholarships that are currently open (isOpen: true) or will be opening soon (isOpeningSoon: true).
Ensure a wide variety of academic fields (e.g., Arts, STEM, Business, Health) and geographical locations (e.g., Europe, North America, Asia, Middle East).
`)
	fmt.Fprintf(&b, "The user's preferred language is %s.\n\n", languageName(lang))
	b.WriteString("IMPORTANT: You MUST generate all text content (titles, summaries, requirements, etc.) in BOTH English and Arabic for each scholarship.\n\n")
	b.WriteString(scholarshipFieldSpec)
	return b.String()
}

func buildSearchScholarshipsPrompt(query string, lang domain.Lang) string {
	var b strings.Builder
	b.WriteString(`Act as an expert scholarship database API for the "Phi" platform. A student is searching for scholarships. Based on their query, generate a list of 6 realistic, distinct, and relevant scholarships.
`)
	fmt.Fprintf(&b, "The user's query is: %q.\n", query)
	fmt.Fprintf(&b, "The user's preferred language is %s.\n\n", languageName(lang))
	b.WriteString("IMPORTANT: You MUST generate all text content (titles, summaries, requirements, etc.) in BOTH English and Arabic for each scholarship, regardless of the user's preferred language.\n\n")
	b.WriteString(scholarshipFieldSpec)
	return b.String()
}

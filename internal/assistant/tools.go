package assistant

import (
	"context"
	"strings"

	"phi/internal/domain"
)

// Tools wraps the free-text and single-object structured operations behind
// the feature views. Each method is one round trip; failures surface as
// domain.ErrAssistantUnavailable.
type Tools struct {
	client *Client
}

// NewTools wires the tool operations to an assistant client.
func NewTools(client *Client) *Tools {
	return &Tools{client: client}
}

// ReviewCV evaluates or rewrites a CV in the requested locale.
func (t *Tools) ReviewCV(ctx context.Context, action CVAction, cvText string, lang domain.Lang) (string, error) {
	return t.client.GenerateText(ctx, buildCVPrompt(action, cvText, lang))
}

// ReviewSOP evaluates or rewrites a statement of purpose with the given
// writing style.
func (t *Tools) ReviewSOP(ctx context.Context, action CVAction, sopText, style string, lang domain.Lang) (string, error) {
	return t.client.GenerateText(ctx, buildSOPPrompt(action, sopText, style, lang))
}

// InterviewQuestion generates one behavioral interview question.
func (t *Tools) InterviewQuestion(ctx context.Context, lang domain.Lang) (string, error) {
	return t.client.GenerateText(ctx, buildInterviewQuestionPrompt(lang))
}

// InterviewFeedback critiques the user's answer to a question.
func (t *Tools) InterviewFeedback(ctx context.Context, question, answer string, lang domain.Lang) (string, error) {
	return t.client.GenerateText(ctx, buildInterviewFeedbackPrompt(question, answer, lang))
}

// CertificateDescription is the structured certificate tool output.
type CertificateDescription struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// DescribeCertificate generates CV-length and LinkedIn-length descriptions
// for a certificate. Unlike the list calls this raises an error on failure:
// a missing description is not an acceptable tool outcome.
func (t *Tools) DescribeCertificate(ctx context.Context, name, issuer, duration, description string, lang domain.Lang) (CertificateDescription, error) {
	var out CertificateDescription
	prompt := buildCertificatePrompt(name, issuer, duration, description, lang)
	if err := t.client.GenerateJSON(ctx, prompt, certificateSchema(), &out); err != nil {
		return CertificateDescription{}, err
	}
	if strings.TrimSpace(out.Short) == "" && strings.TrimSpace(out.Long) == "" {
		return CertificateDescription{}, domain.ErrAssistantUnavailable
	}
	return out, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Onwuagba/Telinga/pkg/gemini"
	"go.uber.org/zap"
)

const genericResponse = "This is a generic response"

// AssistService wraps the text-generation provider behind the narrow
// prompts the notification workflow needs. Every call degrades to a
// fallback string rather than failing the caller.
type AssistService interface {
	EmailSubject(ctx context.Context, message string) string
	Sentiment(ctx context.Context, feedback string) (string, error)
	SummarizeFeedback(ctx context.Context, feedback string) string
	DetectLanguage(ctx context.Context, text string) string
	Translate(ctx context.Context, text string, targetLanguage string) string
	EmailDraft(ctx context.Context, subject string, body string) string
	SuggestMeetingTime(ctx context.Context, feedback string) string
}

type assist struct {
	client gemini.Client
	logger *zap.Logger
}

func NewAssistService(client gemini.Client, logger *zap.Logger) AssistService {
	return &assist{client: client, logger: logger}
}

func (a *assist) generate(ctx context.Context, prompt string, fallback string) string {
	text, err := a.client.Generate(ctx, prompt)
	if err != nil {
		a.logger.Error("Text generation failed, using fallback", zap.Error(err))
		if fallback == "" {
			return genericResponse
		}
		return fallback
	}

	return text
}

func (a *assist) EmailSubject(ctx context.Context, message string) string {
	prompt := fmt.Sprintf("Generate a concise email subject for the following message. "+
		"Output the subject line only, without any additional text or explanation:\n\n%s", message)

	return a.generate(ctx, prompt, truncate(message, 20))
}

func (a *assist) Sentiment(ctx context.Context, feedback string) (string, error) {
	prompt := fmt.Sprintf(`Analyze the sentiment of the following feedback. Respond with only one word: 'positive', 'negative', or 'neutral'.

Examples:
Feedback: "I love this product!"
Sentiment: positive

Feedback: "This service is terrible."
Sentiment: negative

Feedback: "It's okay, nothing special."
Sentiment: neutral

Feedback: "%s"
Sentiment:`, feedback)

	text, err := a.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.ToLower(strings.TrimSpace(text)), nil
}

func (a *assist) SummarizeFeedback(ctx context.Context, feedback string) string {
	prompt := fmt.Sprintf(`Summarize the following feedback in exactly two sentences. Ensure the summary is concise and captures the main points:

Feedback: %s

Summary:`, feedback)

	return a.generate(ctx, prompt, truncate(feedback, 20))
}

func (a *assist) DetectLanguage(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(`Detect the language of the following text. Respond with the language name in lowercase, without any additional text.

Example:
Text: "Bonjour, comment allez-vous?"
Language: french

Text: "%s"
Language:`, text)

	detected := strings.ToLower(strings.TrimSpace(a.generate(ctx, prompt, "english")))
	a.logger.Debug("Language detected", zap.String("language", detected))

	return detected
}

func (a *assist) Translate(ctx context.Context, text string, targetLanguage string) string {
	prompt := fmt.Sprintf(`Translate the following text to %s. Provide only the translated text without any explanations or additional information.

Original text: %s

Translated text:`, targetLanguage, text)

	return a.generate(ctx, prompt, text)
}

func (a *assist) EmailDraft(ctx context.Context, subject string, body string) string {
	prompt := fmt.Sprintf("Generate a professional email draft with the following subject: '%s' and main points: %s",
		subject, body)

	return a.generate(ctx, prompt, "")
}

func (a *assist) SuggestMeetingTime(ctx context.Context, feedback string) string {
	prompt := fmt.Sprintf("Based on the following email content, suggest an appropriate meeting time: %s", feedback)

	return a.generate(ctx, prompt, "")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

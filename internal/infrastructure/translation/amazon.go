// Package translation adapts Amazon Translate to the pipeline's port.
package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
)

// API is the slice of the Amazon Translate client the adapter uses.
type API interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// Amazon translates single texts between the digest locales. The service
// rejects empty input, so blank texts pass through untouched.
type Amazon struct {
	client API
}

var _ ports.Translator = (*Amazon)(nil)

// NewAmazon wires a service client, typically *translate.Client.
func NewAmazon(client API) *Amazon {
	return &Amazon{client: client}
}

func (t *Amazon) Translate(ctx context.Context, text string, source, target domain.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		SourceLanguageCode: aws.String(string(source)),
		TargetLanguageCode: aws.String(string(target)),
		Text:               aws.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}
	return aws.ToString(out.TranslatedText), nil
}

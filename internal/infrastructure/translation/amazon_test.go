package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/mats16/daily-aws-news/internal/domain"
)

type fakeAPI struct {
	calls []translate.TranslateTextInput
	out   string
	err   error
}

func (f *fakeAPI) TranslateText(_ context.Context, params *translate.TranslateTextInput, _ ...func(*translate.Options)) (*translate.TranslateTextOutput, error) {
	f.calls = append(f.calls, *params)
	if f.err != nil {
		return nil, f.err
	}
	return &translate.TranslateTextOutput{TranslatedText: aws.String(f.out)}, nil
}

func TestTranslatePassesLanguageCodes(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{out: "EC2が新機能に対応"}
	tr := NewAmazon(api)

	got, err := tr.Translate(context.Background(), "EC2 supports a new capability", domain.English, domain.Japanese)
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got != "EC2が新機能に対応" {
		t.Fatalf("unexpected translation: %q", got)
	}

	if len(api.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(api.calls))
	}
	call := api.calls[0]
	if aws.ToString(call.SourceLanguageCode) != "en" || aws.ToString(call.TargetLanguageCode) != "ja" {
		t.Errorf("unexpected language pair: %s -> %s",
			aws.ToString(call.SourceLanguageCode), aws.ToString(call.TargetLanguageCode))
	}
	if aws.ToString(call.Text) != "EC2 supports a new capability" {
		t.Errorf("unexpected text: %q", aws.ToString(call.Text))
	}
}

func TestTranslateSkipsBlankText(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	tr := NewAmazon(api)

	for _, text := range []string{"", "   ", "\n\t"} {
		got, err := tr.Translate(context.Background(), text, domain.English, domain.Japanese)
		if err != nil {
			t.Fatalf("Translate(%q) error: %v", text, err)
		}
		if got != text {
			t.Errorf("blank input must pass through, got %q", got)
		}
	}
	if len(api.calls) != 0 {
		t.Errorf("service must not be called for blank input, got %d calls", len(api.calls))
	}
}

func TestTranslateWrapsServiceError(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{err: errors.New("throttled")}
	tr := NewAmazon(api)

	if _, err := tr.Translate(context.Background(), "text", domain.English, domain.Japanese); err == nil {
		t.Fatal("expected error from service failure")
	}
}

package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-postfix/internal/helpers"
)

// FromString implements the Loader interface for inline text.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a new loader from string content. Content that is
// empty or only whitespace is rejected. The content is stored verbatim so
// that every line reaches the evaluator exactly as written.
func NewFromString(content string) (*FromString, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrSourceNotAvailable)
	}

	u, err := url.Parse("string://inline/" + helpers.ShortID(content, 8))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

// GetReader returns a new reader over the stored content.
func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the content.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}

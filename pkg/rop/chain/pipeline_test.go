package chain

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/fault"
)

// TestURLProcessing runs the URL validation pipeline without HTTP requests
func TestURLProcessing(t *testing.T) {
	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := make([]string, 0, len(urls))
	for _, u := range urls {
		results = append(results, processURL(context.Background(), u))
	}

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, "title length: 43", results[0])
}

func processURL(ctx context.Context, url string) string {
	validated := Then(FromValue(ctx, url), validateURL)
	title := ThenTry(validated, mockFetchTitle)
	length := Then(title, calculateTitleLength)

	return Finally(length,
		func(ctx context.Context, r int) string { return fmt.Sprintf("title length: %d", r) },
		func(ctx context.Context, err error) string { return "invalid" },
		func(ctx context.Context, err error) string { return "invalid" })
}

func validateURL(_ context.Context, url string) rop.Result[string] {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return rop.Fail[string](fault.Validation("URL must start with http:// or https://"))
	}
	return rop.Success(url)
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(_ context.Context, url string) (string, error) {
	return "Mock Page Title for " + url, nil
}

func calculateTitleLength(_ context.Context, title string) rop.Result[int] {
	return rop.Success(len(title))
}

package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPrefersStrongTitleMeta(t *testing.T) {
	html := `<html><head>
		<title>Homepage | example.com</title>
		<meta name="title" content="The Real Headline">
	</head><body></body></html>`

	meta, err := Extract(html, "https://example.com/article")
	require.NoError(t, err)
	require.Equal(t, "The Real Headline", meta.Title)
}

func TestExtractFallsBackToH1(t *testing.T) {
	html := `<html><head><title>Site</title></head><body><article><h1>Article Headline</h1></article></body></html>`

	meta, err := Extract(html, "https://example.com/article")
	require.NoError(t, err)
	require.Equal(t, "Article Headline", meta.Title)
}

func TestExtractCleansDomainFromTitle(t *testing.T) {
	html := `<html><head><title>Breaking News Story - example</title></head><body></body></html>`

	meta, err := Extract(html, "https://example.com/article")
	require.NoError(t, err)
	require.Equal(t, "Breaking News Story", meta.Title)
}

func TestExtractByline(t *testing.T) {
	html := `<html><head><meta name="author" content="Jane Doe"></head><body></body></html>`

	meta, err := Extract(html, "")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", meta.Byline)
}

func TestExtractSiteName(t *testing.T) {
	html := `<html><head><meta property="og:site_name" content="Example Times"></head><body></body></html>`

	meta, err := Extract(html, "")
	require.NoError(t, err)
	require.Equal(t, "Example Times", meta.SiteName)
}

func TestExtractPublishedDate(t *testing.T) {
	html := `<html><head><meta property="article:published_time" content="2024-03-05T10:00:00Z"></head><body></body></html>`

	meta, err := Extract(html, "")
	require.NoError(t, err)
	require.NotNil(t, meta.Published)
	require.Equal(t, 2024, meta.Published.Year())
}

func TestExtractMissingFieldsAreZeroValue(t *testing.T) {
	meta, err := Extract(`<html><head></head><body></body></html>`, "")
	require.NoError(t, err)
	require.Empty(t, meta.Title)
	require.Empty(t, meta.Byline)
	require.Nil(t, meta.Published)
}

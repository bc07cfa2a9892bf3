package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	readability "github.com/mackee/go-readability"
)

func lorem(chars int) string {
	unit := "lorem ipsum dolor sit amet, consectetur adipiscing elit, "
	var b strings.Builder
	for b.Len() < chars {
		b.WriteString(unit)
	}
	return b.String()[:chars]
}

func TestCacheHitReturnsSameResult(t *testing.T) {
	c := New()
	html := "<html><body><div><p>" + lorem(400) + "</p></div></body></html>"
	opts := readability.Options{Fragment: true}

	first, err := c.Extract(html, opts)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	second, err := c.Extract(html, opts)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len(), "identical document must not add a second entry")
	require.Equal(t, first.HTML, second.HTML)
}

func TestCacheDistinguishesDocumentsAndOptions(t *testing.T) {
	c := New()
	htmlA := "<html><body><div><p>" + lorem(400) + "</p></div></body></html>"
	htmlB := "<html><body><div><p>" + lorem(400) + "different tail content here" + "</p></div></body></html>"

	_, err := c.Extract(htmlA, readability.Options{Fragment: true})
	require.NoError(t, err)
	_, err = c.Extract(htmlB, readability.Options{Fragment: true})
	require.NoError(t, err)
	_, err = c.Extract(htmlA, readability.Options{Fragment: false})
	require.NoError(t, err)

	require.Equal(t, 3, c.Len(), "distinct content and distinct options must each get their own entry")
}

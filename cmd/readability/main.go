package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	readability "github.com/mackee/go-readability"
	"github.com/mackee/go-readability/internal/charset"
	"github.com/mackee/go-readability/metadata"
)

var exc = fang.Execute

func main() {
	os.Exit(run())
}

func run() int {
	if err := exc(context.Background(), rootCmd(), fang.WithVersion("0.1.0")); err != nil {
		return 1
	}
	return 0
}

func rootCmd() *cobra.Command {
	var (
		fragment    bool
		showMeta    bool
		contentType string
	)

	cmd := &cobra.Command{
		Use:   "readability <url|file>",
		Short: "Extract the readable article content from an HTML page",
		Long: `readability extracts the main article content from an HTML document —
a URL or a local file — using a heuristic scoring and pruning pipeline, and
prints the resulting HTML fragment or document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]

			raw, ct, err := load(src)
			if err != nil {
				return fmt.Errorf("loading %s: %w", src, err)
			}
			if contentType != "" {
				ct = contentType
			}

			html, err := charset.ToUTF8(raw, ct)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", src, err)
			}

			opts := readability.Options{Fragment: fragment, URL: src}
			out, err := readability.Extract(html, opts)
			if err != nil {
				log.Warn("extraction degraded", "error", err)
			}

			if showMeta {
				meta, err := metadata.Extract(html, src)
				if err != nil {
					return fmt.Errorf("extracting metadata: %w", err)
				}
				return printMetadata(cmd.OutOrStdout(), meta, out.NodeCount)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.HTML)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fragment, "fragment", true, "emit a bare readabilityBody fragment instead of a full document")
	cmd.Flags().BoolVar(&showMeta, "metadata", false, "print extracted title/byline/date metadata as JSON instead of content")
	cmd.Flags().StringVar(&contentType, "content-type", "", "override the detected Content-Type for charset decoding")

	return cmd
}

func printMetadata(w io.Writer, meta metadata.Metadata, nodeCount int) error {
	payload := map[string]any{
		"title":     meta.Title,
		"byline":    meta.Byline,
		"siteName":  meta.SiteName,
		"nodeCount": nodeCount,
	}
	if meta.Published != nil {
		payload["published"] = meta.Published.Format("2006-01-02T15:04:05Z07:00")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func load(src string) ([]byte, string, error) {
	if u, err := url.ParseRequestURI(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return fetch(src)
	}
	body, err := os.ReadFile(src)
	return body, "", err
}

func fetch(src string) ([]byte, string, error) {
	resp, err := http.Get(src)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", src, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warn("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, src)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// Package wikipedia collects programming-language titles from the English
// Wikipedia list pages, with the category API as a broader fallback.
package wikipedia

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"lang-atlas/core/fetch"
)

const (
	listBase    = "https://en.wikipedia.org/wiki/List_of_programming_languages"
	apiBase     = "https://en.wikipedia.org/w/api.php"
	EvidenceURL = "https://en.wikipedia.org/wiki/List_of_programming_languages"
)

// badTitle filters list-page noise: meta pages, disambiguation, other lists.
var badTitle = regexp.MustCompile(`(?i)(list of|edits made from this ip address|disambiguation|help:|user:|talk:|wikipedia:)`)

// ExtractTitles pulls linked article titles out of a list page. Only anchors
// inside list items or tables count; navigation chrome links elsewhere.
func ExtractTitles(doc string) []string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil
	}
	set := make(map[string]struct{})
	var walk func(n *html.Node, inListOrTable bool)
	walk = func(n *html.Node, inListOrTable bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "li", "table":
				inListOrTable = true
			case "a":
				if inListOrTable {
					for _, attr := range n.Attr {
						if attr.Key == "title" {
							if t := strings.TrimSpace(attr.Val); t != "" && !badTitle.MatchString(t) {
								set[t] = struct{}{}
							}
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inListOrTable)
		}
	}
	walk(root, false)

	titles := make([]string, 0, len(set))
	for t := range set {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}

// FetchTitles scrapes the List_of_programming_languages page and its A-Z
// subpages. If scraping yields nothing, it falls back to the broader
// Category:Programming_languages membership via the API.
func FetchTitles(ctx context.Context, client *fetch.Client) ([]string, error) {
	set := make(map[string]struct{})

	pages := []string{listBase}
	for l := 'A'; l <= 'Z'; l++ {
		pages = append(pages, fmt.Sprintf("%s:_%c", listBase, l))
	}
	for _, page := range pages {
		doc, err := client.GetText(ctx, page)
		if err != nil {
			// A missing subpage is not fatal; keep scraping the rest.
			continue
		}
		for _, t := range ExtractTitles(doc) {
			set[t] = struct{}{}
		}
	}

	if len(set) == 0 {
		members, err := client.CategoryMembers(ctx, []string{apiBase},
			"Category:Programming languages", fetch.CategoryOptions{Type: "page"})
		if err != nil {
			return nil, fmt.Errorf("wikipedia category fallback failed: %w", err)
		}
		for _, m := range members {
			if t := strings.TrimSpace(m.Title); t != "" && !badTitle.MatchString(t) {
				set[t] = struct{}{}
			}
		}
	}

	titles := make([]string, 0, len(set))
	for t := range set {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles, nil
}

// Package esolang collects language titles from the Esolang wiki. The
// source is off by default; esoteric languages drown out the mainstream ones
// unless explicitly requested.
package esolang

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lang-atlas/core/fetch"
)

const (
	apiBase     = "https://esolangs.org/w/api.php"
	EvidenceURL = "https://esolangs.org/wiki/Esolang%3ACopyrights"
)

// FetchTitles lists every page in the wiki's Category:Languages.
func FetchTitles(ctx context.Context, client *fetch.Client) ([]string, error) {
	members, err := client.CategoryMembers(ctx, []string{apiBase},
		"Category:Languages", fetch.CategoryOptions{})
	if err != nil {
		return nil, fmt.Errorf("esolang category listing failed: %w", err)
	}
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		if t := strings.TrimSpace(m.Title); t != "" {
			set[t] = struct{}{}
		}
	}
	titles := make([]string, 0, len(set))
	for t := range set {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles, nil
}

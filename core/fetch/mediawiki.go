package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// CategoryMember is one entry returned by a MediaWiki categorymembers query.
type CategoryMember struct {
	Title string `json:"title"`
	NS    int    `json:"ns"`
}

// PageInfo carries the per-page fields we request from MediaWiki APIs.
type PageInfo struct {
	Title        string `json:"title"`
	Extract      string `json:"extract"`
	CategoryInfo *struct {
		Pages int `json:"pages"`
	} `json:"categoryinfo"`
}

type mwResponse struct {
	Continue map[string]string `json:"continue"`
	Query    struct {
		CategoryMembers []CategoryMember    `json:"categorymembers"`
		Pages           map[string]PageInfo `json:"pages"`
	} `json:"query"`
}

// CategoryOptions narrows a categorymembers query.
type CategoryOptions struct {
	// Namespace restricts results (e.g. "14" for categories). Empty means all.
	Namespace string
	// Type restricts the member type (e.g. "page", "subcat"). Empty means all.
	Type string
}

// CategoryMembers pages through a MediaWiki categorymembers listing,
// following continue tokens until exhausted. apiBases are tried in order per
// request; the first working base serves the whole listing.
func (c *Client) CategoryMembers(ctx context.Context, apiBases []string, category string, opts CategoryOptions) ([]CategoryMember, error) {
	var members []CategoryMember
	cont := map[string]string{}
	for {
		params := url.Values{
			"action":  {"query"},
			"format":  {"json"},
			"list":    {"categorymembers"},
			"cmtitle": {category},
			"cmlimit": {"500"},
		}
		if opts.Namespace != "" {
			params.Set("cmnamespace", opts.Namespace)
		}
		if opts.Type != "" {
			params.Set("cmtype", opts.Type)
		}
		for k, v := range cont {
			params.Set(k, v)
		}

		var resp mwResponse
		if err := c.getJSONAny(ctx, apiBases, params, &resp); err != nil {
			return nil, fmt.Errorf("categorymembers query for %s failed: %w", category, err)
		}
		members = append(members, resp.Query.CategoryMembers...)

		if len(resp.Continue) == 0 {
			return members, nil
		}
		cont = resp.Continue
	}
}

// Pages fetches per-page properties (prop) for a batch of titles. Batches of
// 50 titles per request, the MediaWiki maximum for anonymous clients.
func (c *Client) Pages(ctx context.Context, apiBases []string, titles []string, prop string, extra url.Values) (map[string]PageInfo, error) {
	const batch = 50
	out := make(map[string]PageInfo, len(titles))
	for i := 0; i < len(titles); i += batch {
		end := i + batch
		if end > len(titles) {
			end = len(titles)
		}
		params := url.Values{
			"action": {"query"},
			"format": {"json"},
			"prop":   {prop},
			"titles": {strings.Join(titles[i:end], "|")},
		}
		for k, vs := range extra {
			for _, v := range vs {
				params.Add(k, v)
			}
		}

		var resp mwResponse
		if err := c.getJSONAny(ctx, apiBases, params, &resp); err != nil {
			return nil, fmt.Errorf("page query failed: %w", err)
		}
		for _, pg := range resp.Query.Pages {
			if pg.Title != "" {
				out[pg.Title] = pg
			}
		}
	}
	return out, nil
}

func (c *Client) getJSONAny(ctx context.Context, apiBases []string, params url.Values, out any) error {
	var lastErr error
	for _, base := range apiBases {
		if err := c.GetJSON(ctx, base, params, out); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

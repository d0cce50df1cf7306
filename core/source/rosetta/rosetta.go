// Package rosetta collects the Rosetta Code language list: one entry per
// Category:Programming Languages subcategory, with its intro extract and
// solved-task count.
package rosetta

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"lang-atlas/core/fetch"
)

// APIBases list the MediaWiki endpoints to try, in order.
var APIBases = []string{
	"https://rosettacode.org/w/api.php",
	"https://rosettacode.org/mw/api.php",
}

// Language is one Rosetta Code language page.
type Language struct {
	Name       string
	URL        string
	Summary    string
	TasksCount int
}

// Fetch lists every language subcategory and enriches it with the page
// extract and category task count.
func Fetch(ctx context.Context, client *fetch.Client) ([]Language, error) {
	subcats, err := client.CategoryMembers(ctx, APIBases,
		"Category:Programming Languages",
		fetch.CategoryOptions{Namespace: "14", Type: "subcat"})
	if err != nil {
		return nil, fmt.Errorf("rosettacode subcategory listing failed: %w", err)
	}

	catTitles := make([]string, 0, len(subcats))
	mainTitles := make([]string, 0, len(subcats))
	for _, m := range subcats {
		if m.Title == "" {
			continue
		}
		catTitles = append(catTitles, m.Title)
		mainTitles = append(mainTitles, strings.TrimPrefix(m.Title, "Category:"))
	}

	extracts, err := client.Pages(ctx, APIBases, mainTitles, "extracts", url.Values{
		"exintro":     {"1"},
		"explaintext": {"1"},
	})
	if err != nil {
		return nil, fmt.Errorf("rosettacode extracts fetch failed: %w", err)
	}
	catInfo, err := client.Pages(ctx, APIBases, catTitles, "categoryinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("rosettacode categoryinfo fetch failed: %w", err)
	}

	langs := make([]Language, 0, len(mainTitles))
	for i, main := range mainTitles {
		lang := Language{
			Name: main,
			URL:  "https://rosettacode.org/wiki/" + strings.ReplaceAll(main, " ", "_"),
		}
		if pg, ok := extracts[main]; ok {
			lang.Summary = strings.TrimSpace(pg.Extract)
		}
		if pg, ok := catInfo[catTitles[i]]; ok && pg.CategoryInfo != nil {
			lang.TasksCount = pg.CategoryInfo.Pages
		}
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })
	return langs, nil
}

// AliasTable maps normalized master-side spellings to Rosetta Code names.
func AliasTable() map[string]string {
	return map[string]string{
		"c sharp": "c#", "c-sharp": "c#", "csharp": "c#",
		"f sharp": "f#", "f-sharp": "f#", "fsharp": "f#",
		"c plus plus": "c++", "cplusplus": "c++", "cpp": "c++",
		"objective c": "objective-c", "obj-c": "objective-c",
		"objective c++": "objective-c++", "obj-c++": "objective-c++",
		"golang": "go",
		"js":     "javascript", "ts": "typescript",
		"vb.net": "visual basic .net", "vb": "visual basic .net", "visual basic": "visual basic .net",
		"ocaml": "ocaml", "objective caml": "ocaml",
		"vim script": "vim script", "vimscript": "vim script",
		"wolfram language": "mathematica", "wolfram": "mathematica",
		"rstats": "r",
		"yml":    "yaml",
		"jsonc":  "json", "json5": "json",
		"pl/sql": "plsql", "pl-sql": "plsql",
		"pl/pgsql":   "plpgsql",
		"powershell": "powershell",
	}
}

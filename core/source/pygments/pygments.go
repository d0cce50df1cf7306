// Package pygments parses the Pygments lexer mapping (_mapping.py) into a
// registry of lexers keyed by display name, with alias and filename indexes
// for matching against master rows.
package pygments

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"lang-atlas/core/fetch"
	"lang-atlas/core/merge"
)

// MappingURL is the raw location of the generated lexer mapping.
const MappingURL = "https://raw.githubusercontent.com/pygments/pygments/master/pygments/lexers/_mapping.py"

// Lexer is one entry of the LEXERS mapping.
type Lexer struct {
	Name      string
	Module    string
	Class     string
	Aliases   []string
	Filenames []string
	Mimetypes []string
}

var (
	lexersBlock = regexp.MustCompile(`(?s)LEXERS\s*=\s*\{(.*?)\n\}`)
	lexerEntry  = regexp.MustCompile(`'((?:\\.|[^'\\])*)':\s*\('([^']*)',\s*'([^']*)',\s*\(([^()]*)\),\s*\(([^()]*)\),\s*\(([^()]*)\)\)`)
	quotedItem  = regexp.MustCompile(`'((?:\\.|[^'\\])*)'`)
	starExt     = regexp.MustCompile(`^\*\.([A-Za-z0-9_+\-.]+)$`)
)

func tupleItems(s string) []string {
	var out []string
	for _, m := range quotedItem.FindAllStringSubmatch(s, -1) {
		out = append(out, strings.ReplaceAll(m[1], `\'`, `'`))
	}
	return out
}

// ParseMapping extracts the LEXERS dict from _mapping.py source.
func ParseMapping(src string) (map[string]Lexer, error) {
	block := src
	if m := lexersBlock.FindStringSubmatch(src); m != nil {
		block = m[1]
	}
	out := make(map[string]Lexer)
	for _, m := range lexerEntry.FindAllStringSubmatch(block, -1) {
		// Entries look like 'GoLexer': ('pygments.lexers.go', 'Go', ...):
		// the dict key is the lexer class, the tuple's second item the
		// display name.
		name := strings.ReplaceAll(m[3], `\'`, `'`)
		out[name] = Lexer{
			Name:      name,
			Module:    m[2],
			Class:     strings.ReplaceAll(m[1], `\'`, `'`),
			Aliases:   tupleItems(m[4]),
			Filenames: tupleItems(m[5]),
			Mimetypes: tupleItems(m[6]),
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("could not find any LEXERS entries in _mapping.py")
	}
	return out, nil
}

// Fetch downloads and parses the lexer mapping.
func Fetch(ctx context.Context, client *fetch.Client) (map[string]Lexer, error) {
	src, err := client.GetText(ctx, MappingURL)
	if err != nil {
		return nil, fmt.Errorf("pygments mapping fetch failed: %w", err)
	}
	return ParseMapping(src)
}

// AliasTable maps normalized master-side spellings to Pygments alias keys.
func AliasTable() map[string]string {
	return map[string]string{
		"c sharp": "csharp", "c-sharp": "csharp", "c#": "csharp",
		"f sharp": "fsharp", "f-sharp": "fsharp", "f#": "fsharp",
		"c plus plus": "cpp", "cplusplus": "cpp", "c++": "cpp", "cpp": "cpp",
		"objective c": "objective-c", "objective-c": "objective-c", "obj-c": "objective-c",
		"objective c++": "objective-c++", "objective-c++": "objective-c++", "obj-c++": "objective-c++",
		"golang": "go",
		"js":     "javascript", "ts": "typescript",
		"vb.net": "vbnet", "vb": "vbnet", "visual basic": "vbnet",
		"ocaml": "ocaml", "objective caml": "ocaml",
		"shell": "bash", "shell script": "bash", "unix shell": "bash",
		"wolfram language": "mathematica", "wolfram": "mathematica",
		"rstats": "r",
		"yaml":   "yaml", "yml": "yaml",
		"jsonc": "json", "json5": "json",
		"pl/sql": "plsql", "pl-sql": "plsql", "plpgsql": "postgresql",
		"powershell": "powershell",
		"vim script": "viml", "vimscript": "viml",
	}
}

// Indexes hold the lookup structures for matching master rows to lexers.
type Indexes struct {
	// Alias maps normalized display names and aliases to display names.
	Alias map[string]string
	// Filename maps extension tokens (".ext") and bare filenames to the
	// display names claiming them.
	Filename map[string][]string
}

// BuildIndexes constructs alias and filename indexes over the lexer map.
func BuildIndexes(lexers map[string]Lexer) *Indexes {
	ix := &Indexes{
		Alias:    make(map[string]string),
		Filename: make(map[string][]string),
	}
	names := make([]string, 0, len(lexers))
	for name := range lexers {
		names = append(names, name)
	}
	sort.Strings(names)

	addFilename := func(tok, disp string) {
		tok = strings.ToLower(tok)
		if tok == "" {
			return
		}
		ix.Filename[tok] = append(ix.Filename[tok], disp)
	}

	for _, disp := range names {
		lex := lexers[disp]
		ix.Alias[merge.NormalizeKey(disp)] = disp
		for _, a := range lex.Aliases {
			if _, taken := ix.Alias[merge.NormalizeKey(a)]; !taken {
				ix.Alias[merge.NormalizeKey(a)] = disp
			}
		}
		for _, pat := range lex.Filenames {
			pat = strings.TrimSpace(pat)
			if pat == "" {
				continue
			}
			if m := starExt.FindStringSubmatch(pat); m != nil {
				addFilename("."+strings.TrimLeft(strings.ToLower(m[1]), "."), disp)
				continue
			}
			// Bare filenames like ".vimrc", "_vimrc", "Makefile"; index both
			// the raw form and one stripped of leading dots/underscores.
			bare := strings.TrimLeft(pat, "./")
			addFilename(bare, disp)
			addFilename(strings.TrimLeft(bare, "_."), disp)
		}
	}
	return ix
}

// Match resolves a master row to a lexer display name. Name and alias
// matching runs first; failing that, the row's full text is scanned for
// filename and extension tokens, preferring the longest token found.
func (ix *Indexes) Match(name, rowBlob string, aliases map[string]string) string {
	key := merge.NormalizeKey(name)
	if disp, ok := ix.Alias[key]; ok {
		return disp
	}
	if mapped, ok := aliases[key]; ok {
		if disp, ok := ix.Alias[merge.NormalizeKey(mapped)]; ok {
			return disp
		}
	}

	bestLen, bestTok := 0, ""
	for tok := range ix.Filename {
		if tok == "" || !strings.Contains(rowBlob, tok) {
			continue
		}
		if len(tok) > bestLen || (len(tok) == bestLen && tok > bestTok) {
			bestLen, bestTok = len(tok), tok
		}
	}
	if bestTok != "" {
		return ix.Filename[bestTok][0]
	}

	for _, v := range merge.Variants(key) {
		if disp, ok := ix.Alias[v]; ok {
			return disp
		}
	}
	return ""
}

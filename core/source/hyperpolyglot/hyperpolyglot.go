// Package hyperpolyglot parses the generated Rust sources of the
// hyperpolyglot language-detection crate into a registry of language names
// and their type/color/group metadata.
package hyperpolyglot

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lang-atlas/core/fetch"
	"lang-atlas/core/merge"
)

// Source locations: GitHub raw is primary, docs.rs serves the same files
// when the repo is unreachable.
var (
	LanguagesURLs = []string{
		"https://raw.githubusercontent.com/monkslc/hyperpolyglot/master/src/codegen/languages.rs",
		"https://docs.rs/crate/hyperpolyglot/latest/source/src/codegen/languages.rs?plain=1",
	}
	InfoMapURLs = []string{
		"https://raw.githubusercontent.com/monkslc/hyperpolyglot/master/src/codegen/language-info-map.rs",
		"https://docs.rs/crate/hyperpolyglot/latest/source/src/codegen/language-info-map.rs?plain=1",
	}
)

// Info is the per-language metadata from language-info-map.rs.
type Info struct {
	Type  string
	Color string
	Group string
}

// Registry is the parsed Hyperpolyglot language registry.
type Registry struct {
	Languages []string
	Info      map[string]Info
}

var (
	languagesBlock = regexp.MustCompile(`(?s)static\s+LANGUAGES\s*:.*?=\s*&\s*\[(.*?)\]\s*;`)
	quotedString   = regexp.MustCompile(`"((?:\\.|[^"\\])*)"`)
	infoEntry      = regexp.MustCompile(`(?s)\("(?P<key>[^"]+)",\s*Language\s*\{\s*name:\s*"(?P<name>[^"]+)",\s*language_type:\s*LanguageType::(?P<ltype>\w+),\s*color:\s*(?P<color>Some\("?#?[0-9A-Fa-f]+"?\)|None),\s*group:\s*(?P<group>Some\(".*?"\)|None)\s*\}\s*\)`)
	someValue      = regexp.MustCompile(`"(#?[0-9A-Fa-f]+)"`)
	someGroup      = regexp.MustCompile(`"(.*?)"`)
)

// ParseLanguages extracts the language name list from languages.rs.
func ParseLanguages(src string) ([]string, error) {
	m := languagesBlock.FindStringSubmatch(src)
	if m == nil {
		return nil, fmt.Errorf("could not locate LANGUAGES array in languages.rs")
	}
	var out []string
	for _, item := range quotedString.FindAllStringSubmatch(m[1], -1) {
		name, err := strconv.Unquote(`"` + item[1] + `"`)
		if err != nil {
			name = item[1]
		}
		out = append(out, name)
	}
	return out, nil
}

// ParseInfoMap extracts per-language type/color/group metadata from
// language-info-map.rs.
func ParseInfoMap(src string) map[string]Info {
	out := make(map[string]Info)
	for _, m := range infoEntry.FindAllStringSubmatch(src, -1) {
		name := m[infoEntry.SubexpIndex("name")]
		info := Info{Type: m[infoEntry.SubexpIndex("ltype")]}
		if color := m[infoEntry.SubexpIndex("color")]; color != "None" {
			if cm := someValue.FindStringSubmatch(color); cm != nil {
				info.Color = cm[1]
			}
		}
		if group := m[infoEntry.SubexpIndex("group")]; group != "None" {
			if gm := someGroup.FindStringSubmatch(group); gm != nil {
				info.Group = gm[1]
			}
		}
		out[name] = info
	}
	return out
}

// Fetch downloads and parses both generated sources.
func Fetch(ctx context.Context, client *fetch.Client) (*Registry, error) {
	langSrc, err := client.FirstPlain(ctx, LanguagesURLs)
	if err != nil {
		return nil, fmt.Errorf("hyperpolyglot languages fetch failed: %w", err)
	}
	infoSrc, err := client.FirstPlain(ctx, InfoMapURLs)
	if err != nil {
		return nil, fmt.Errorf("hyperpolyglot info-map fetch failed: %w", err)
	}

	langs, err := ParseLanguages(langSrc)
	if err != nil {
		return nil, err
	}
	return &Registry{Languages: langs, Info: ParseInfoMap(infoSrc)}, nil
}

// AliasTable maps normalized master-side names to Hyperpolyglot canonical
// names. It covers the pragmatic spellings the registry itself does not.
func AliasTable() map[string]string {
	return map[string]string{
		"c sharp": "C#", "c-sharp": "C#", "csharp": "C#", "cs": "C#", "c#": "C#",
		"f sharp": "F#", "f-sharp": "F#", "fsharp": "F#", "f#": "F#",
		"objective c": "Objective-C", "objective-c": "Objective-C", "obj-c": "Objective-C",
		"objective c++": "Objective-C++", "objective-c++": "Objective-C++", "obj-c++": "Objective-C++",
		"c plus plus": "C++", "cplusplus": "C++", "cpp": "C++", "c++": "C++",
		"c language": "C", "golang": "Go",
		"tsql": "TSQL", "t-sql": "TSQL", "microsoft tsql": "TSQL",
		"pl/sql": "PLSQL", "pl-sql": "PLSQL", "plsql": "PLSQL",
		"pl/pgsql": "PLpgSQL", "plpgsql": "PLpgSQL",
		"cmd": "Batchfile", "dos batch": "Batchfile", "batch": "Batchfile",
		"powershell core": "PowerShell", "windows powershell": "PowerShell", "ps": "PowerShell",
		"z shell": "Shell", "zsh": "Shell", "bash": "Shell", "fish shell": "fish",
		"shell script": "Shell", "unix shell": "Shell", "posix shell": "Shell",
		"html5": "HTML", "html+php": "HTML+PHP", "html+erb": "HTML+ERB", "html+ecr": "HTML+ECR", "html+django": "HTML+Django",
		"scss": "SCSS", "sass": "Sass", "less": "Less", "stylus": "Stylus",
		"js": "JavaScript", "javascript": "JavaScript", "ts": "TypeScript", "tsx": "TSX", "jsx": "JSX",
		"pug": "Pug", "jade": "Pug", "handlebars": "Handlebars", "hbs": "Handlebars", "mustache": "Handlebars",
		"xml plist": "XML Property List", "plist": "XML Property List",
		"yaml": "YAML", "yml": "YAML", "toml": "TOML", "json5": "JSON5", "jsonc": "JSON with Comments",
		"cson": "CSON", "ini": "INI", "editorconfig": "EditorConfig",
		"llvm ir": "LLVM", "llvm": "LLVM",
		"nimlang": "Nim", "ocaml": "OCaml", "objective caml": "OCaml",
		"rkt": "Racket", "clj": "Clojure", "cljc": "Clojure", "cljs": "Clojure",
		"elisp": "Emacs Lisp", "emacs-lisp": "Emacs Lisp",
		"matlab": "MATLAB", "wolfram": "Mathematica", "wolfram language": "Mathematica",
		"rstats": "R", "stata": "Stata", "apl": "APL", "j language": "J",
		"vhdl": "VHDL", "verilog": "Verilog", "systemverilog": "SystemVerilog",
		"hlsl": "HLSL", "glsl": "GLSL",
		"vb": "Visual Basic .NET", "vb.net": "Visual Basic .NET", "vba": "VBA",
		"k8s manifest": "YAML", "cuda": "Cuda",
		"plain text": "Text", "markdown": "Markdown", "md": "Markdown",
		"fstar": "F*",
	}
}

// noiseWords are dropped from a name before index lookup ("Lua language"
// should still find "Lua").
var noiseWords = map[string]struct{}{
	"language": {}, "programming": {}, "file": {}, "script": {},
}

// BuildIndex maps normalized spelling variants of every registry name to its
// canonical form.
func BuildIndex(languages []string) map[string]string {
	idx := make(map[string]string, len(languages)*4)
	for _, hp := range languages {
		key := merge.NormalizeKey(hp)
		for _, v := range merge.Variants(key) {
			if _, taken := idx[v]; !taken {
				idx[v] = hp
			}
		}
	}
	return idx
}

// ToCanonical resolves a master-side name to the registry's canonical name,
// or "" if there is no match.
func ToCanonical(name string, idx map[string]string, aliases map[string]string) string {
	key := merge.NormalizeKey(name)
	if canon, ok := aliases[key]; ok {
		return canon
	}
	if canon, ok := idx[key]; ok {
		return canon
	}
	var kept []string
	for _, w := range strings.Fields(key) {
		if _, noise := noiseWords[w]; !noise {
			kept = append(kept, w)
		}
	}
	if canon, ok := idx[strings.Join(kept, " ")]; ok {
		return canon
	}
	return ""
}

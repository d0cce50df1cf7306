package pldb

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Record is one language parsed from a PLDB concept file.
type Record struct {
	Name          string
	Aliases       []string
	FirstAppeared string
	Homepage      string
	Paradigms     string
	Typing        string
	DesignedBy    string
	InfluencedBy  string
	HelloWorld    bool
	Extensions    string
}

// EvidenceURL is recorded on every row contributed by this source.
const EvidenceURL = "https://github.com/breck7/pldb"

var (
	kvHead   = regexp.MustCompile(`^\s*([A-Za-z0-9_][\w\s/-]*?)\s*:\s*(.*?)\s*$`)
	listItem = regexp.MustCompile(`^\s*-\s*(.*?)\s*$`)

	// Obvious non-language utility dirs and filename stems. concepts/ is
	// never excluded; PLDB treats everything under it as a language.
	badPathTokens = regexp.MustCompile(`(?i)/(authors|author|build|books?|measures?|metrics?|scripts?|readme|data|csv|tsv|json|assets?)/`)
	badNameTokens = regexp.MustCompile(`(?i)^(authors?|build|books?|measures?|metrics?|readme|csv|tsv|json)\b`)

	extToken  = regexp.MustCompile(`[^.\w+-]`)
	splitExts = regexp.MustCompile(`[\s,;/]+`)
	splitAka  = regexp.MustCompile(`[|,;/]`)
)

// Weak evidence that a file outside concepts/ still describes a language.
var langPropHints = []string{
	"paradigm", "paradigms", "typing", "type system",
	"influenced by", "influenced", "influenced-by",
	"designed by", "designed",
	"filename extension", "file extension", "file extensions", "extensions",
	"fileextensions", "filenameextension",
	"hello world", "hello-world", "hello_world", "helloworld", "hello",
	"clocextensions",
}

// parseBlocks reads a scroll-style file into a key -> values map. Keys own
// the indented list items and continuation lines that follow them.
func parseBlocks(text string) map[string][]string {
	props := make(map[string][]string)
	var current string
	for _, line := range strings.Split(text, "\n") {
		if m := kvHead.FindStringSubmatch(line); m != nil {
			current = strings.ToLower(strings.TrimSpace(m[1]))
			if _, ok := props[current]; !ok {
				props[current] = []string{}
			}
			if head := strings.TrimSpace(m[2]); head != "" {
				props[current] = append(props[current], head)
			}
			continue
		}
		if current == "" {
			continue
		}
		if m := listItem.FindStringSubmatch(line); m != nil {
			if val := strings.TrimSpace(m[1]); val != "" {
				props[current] = append(props[current], val)
			}
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if cont := strings.TrimSpace(line); cont != "" {
				props[current] = append(props[current], cont)
			}
			continue
		}
		current = ""
	}
	return props
}

func normExtToken(tok string) string {
	tok = strings.TrimLeft(strings.TrimSpace(tok), "*")
	if tok == "" {
		return ""
	}
	if !strings.HasPrefix(tok, ".") {
		tok = "." + tok
	}
	return extToken.ReplaceAllString(strings.ToLower(tok), "")
}

func collectExtensions(props map[string][]string) string {
	keys := []string{
		"clocextensions", "cloc extensions", "cloc-ext", "cloc_ext",
		"filename extension", "file extension", "file extensions", "extensions",
		"fileextensions", "filenameextension",
	}
	set := make(map[string]struct{})
	for _, key := range keys {
		for _, val := range props[key] {
			for _, part := range splitExts.Split(val, -1) {
				if e := normExtToken(part); len(e) > 1 {
					set[e] = struct{}{}
				}
			}
		}
	}
	exts := make([]string, 0, len(set))
	for e := range set {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return strings.Join(exts, " ")
}

func collectAliases(props map[string][]string) []string {
	keys := []string{"alias", "aliases", "aka", "also known as", "short name", "short names"}
	set := make(map[string]struct{})
	for _, key := range keys {
		for _, val := range props[key] {
			if strings.ContainsAny(val, ",|;") {
				for _, part := range splitAka.Split(val, -1) {
					if part = strings.TrimSpace(part); part != "" {
						set[part] = struct{}{}
					}
				}
			} else if val = strings.TrimSpace(val); val != "" {
				set[val] = struct{}{}
			}
		}
	}
	aliases := make([]string, 0, len(set))
	for a := range set {
		if !badNameTokens.MatchString(a) {
			aliases = append(aliases, a)
		}
	}
	sort.Strings(aliases)
	return aliases
}

func firstOf(props map[string][]string, keys ...string) string {
	for _, key := range keys {
		if vals := props[key]; len(vals) > 0 {
			return strings.TrimSpace(vals[0])
		}
	}
	return ""
}

// ParseFile parses one .pldb/.scroll file into a Record. It returns false
// when the file does not describe a language (utility dirs, bad names, no
// language-ish properties outside concepts/).
func ParseFile(text, path string) (Record, bool) {
	slashed := "/" + filepath.ToSlash(path) + "/"
	if badPathTokens.MatchString(slashed) {
		return Record{}, false
	}

	props := parseBlocks(text)

	isConcept := strings.Contains(filepath.ToSlash(path), "/concepts/") ||
		strings.HasPrefix(filepath.ToSlash(path), "pldb/concepts/")
	isLang := isConcept
	if !isLang {
		for _, hint := range langPropHints {
			if _, ok := props[hint]; ok {
				isLang = true
				break
			}
		}
	}
	if !isLang {
		return Record{}, false
	}

	name := firstOf(props, "name", "title")
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if name == "" || badNameTokens.MatchString(name) {
		return Record{}, false
	}

	joinAll := func(keys ...string) string {
		var vals []string
		for _, key := range keys {
			vals = append(vals, props[key]...)
		}
		return strings.Join(vals, "; ")
	}

	helloWorld := false
	for _, key := range []string{"hello world", "hello-world", "hello_world", "helloworld", "hello"} {
		if len(props[key]) > 0 {
			helloWorld = true
			break
		}
	}

	return Record{
		Name:          name,
		Aliases:       collectAliases(props),
		FirstAppeared: firstOf(props, "appeared", "first appeared", "first-appeared"),
		Homepage:      firstOf(props, "homepage", "home page", "url", "urls"),
		Paradigms:     joinAll("paradigm", "paradigms"),
		Typing:        joinAll("typing", "type system"),
		DesignedBy:    joinAll("designed by", "designed"),
		InfluencedBy:  joinAll("influenced by", "influenced", "influenced-by"),
		HelloWorld:    helloWorld,
		Extensions:    collectExtensions(props),
	}, true
}

// Scan walks a local PLDB clone and parses every .pldb/.scroll file.
func Scan(dir string, logger *zap.Logger) ([]Record, error) {
	var records []Record
	files := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".pldb" && ext != ".scroll" {
			return nil
		}
		files++
		text, err := os.ReadFile(path)
		if err != nil {
			// Unreadable files are skipped, not fatal; the clone may hold
			// odd artifacts.
			return nil
		}
		if rec, ok := ParseFile(string(text), path); ok {
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("PLDB scan complete",
		zap.Int("files_scanned", files),
		zap.Int("languages_detected", len(records)),
	)
	return records, nil
}

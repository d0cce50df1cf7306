package table

import (
	"regexp"
	"sort"
	"strings"
)

// Source flag values as they appear in the source_flags column.
const (
	SourcePLDB      = "pldb"
	SourceLinguist  = "linguist"
	SourceWikipedia = "wikipedia"
	SourceEsolang   = "esolang"
)

// LanguageRecord is one row of the languages master table.
// Set-valued columns keep their serialized form: source_flags and
// evidence_urls are semicolon-joined, extensions is space-joined.
type LanguageRecord struct {
	LangID        string
	CanonicalName string
	SourceFlags   string
	Types         string
	Extensions    string
	FirstAppeared string
	Homepage      string
	Paradigms     string
	Typing        string
	DesignedBy    string
	InfluencedBy  string
	HelloWorld    bool
	LinguistKey   string
	EvidenceURLs  string
	Notes         string

	InPLDB      bool
	InLinguist  bool
	InWikipedia bool
	InEsolang   bool

	HasExtensions bool
	HasParadigm   bool
	HasTyping     bool
	HasHelloWorld bool

	SourceCount int
	AliasCount  int

	// Hyperpolyglot augmentation.
	HyperpolyglotName string
	InHyperpolyglot   bool
	HPType            string
	HPGroup           string
	HPColor           string

	// Pygments augmentation.
	PygmentsName      string
	InPygments        bool
	PygmentsModule    string
	PygmentsClass     string
	PygmentsAliases   string
	PygmentsFilenames string
	PygmentsMimetypes string

	// Rosetta Code augmentation.
	InRosettaCode     bool
	RosettaName       string
	RosettaURL        string
	RosettaSummary    string
	RosettaTasksCount int
}

// AliasRow is one row of the aliases table.
type AliasRow struct {
	Alias  string
	LangID string
	Source string
}

// ExtensionRecord is one row of the extensions inventory, derived from
// LanguageRecord.Extensions and recomputed fresh each run.
type ExtensionRecord struct {
	Extension      string
	CountTotal     int
	CountPLDB      int
	CountLinguist  int
	CountWikipedia int
	CountEsolang   int
	SampleLang     string
}

var validExt = regexp.MustCompile(`^\.[A-Za-z0-9_+-]+$`)

// SplitFlags splits a semicolon-joined set column into its members.
func SplitFlags(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ";") {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// JoinFlags produces the canonical serialized form of a flag set:
// deduplicated, sorted, semicolon-joined.
func JoinFlags(flags []string) string {
	set := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		f = strings.TrimSpace(f)
		if f != "" {
			set[f] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return strings.Join(out, ";")
}

// HasFlag reports whether a serialized flag set contains the given member.
func HasFlag(flags, flag string) bool {
	for _, f := range strings.Split(flags, ";") {
		if strings.TrimSpace(f) == flag {
			return true
		}
	}
	return false
}

// ValidExtension reports whether a token is a well-formed extension:
// dot-prefixed, lowercase word characters plus "+" and "-".
func ValidExtension(tok string) bool {
	return validExt.MatchString(tok) && tok == strings.ToLower(tok)
}

// SplitExtensions splits a space-joined extension column into valid,
// lowercased, dot-prefixed tokens. Invalid tokens are dropped.
func SplitExtensions(s string) []string {
	var out []string
	for _, tok := range strings.Fields(s) {
		if !strings.HasPrefix(tok, ".") {
			tok = "." + tok
		}
		tok = strings.ToLower(tok)
		if validExt.MatchString(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// JoinExtensions produces the canonical serialized extension set:
// deduplicated, sorted, space-joined.
func JoinExtensions(exts []string) string {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		if e != "" {
			set[e] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}

// UnionExtensions merges two serialized extension sets.
func UnionExtensions(a, b string) string {
	return JoinExtensions(append(strings.Fields(a), strings.Fields(b)...))
}

// RefreshDerived recomputes the derived boolean and count columns from the
// record's own data. SourceCount follows the source_flags set; the in_*
// booleans mirror individual flags.
func (r *LanguageRecord) RefreshDerived() {
	flags := SplitFlags(r.SourceFlags)
	r.SourceCount = len(flags)
	r.InPLDB = HasFlag(r.SourceFlags, SourcePLDB)
	r.InLinguist = HasFlag(r.SourceFlags, SourceLinguist)
	r.InWikipedia = HasFlag(r.SourceFlags, SourceWikipedia)
	r.InEsolang = HasFlag(r.SourceFlags, SourceEsolang)
	r.HasExtensions = strings.TrimSpace(r.Extensions) != ""
	r.HasParadigm = strings.TrimSpace(r.Paradigms) != ""
	r.HasTyping = strings.TrimSpace(r.Typing) != ""
	r.HasHelloWorld = r.HelloWorld
}

// AddFlag adds a member to the record's source_flags set.
func (r *LanguageRecord) AddFlag(flag string) {
	r.SourceFlags = JoinFlags(append(SplitFlags(r.SourceFlags), flag))
}

// AppendNote appends a note to the record's notes column, separated by "; ".
func (r *LanguageRecord) AppendNote(note string) {
	if note == "" {
		return
	}
	if r.Notes == "" {
		r.Notes = note
		return
	}
	r.Notes += "; " + note
}

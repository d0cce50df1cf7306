package hyperpolyglot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const languagesRS = `
// Generated file.
static LANGUAGES: &'static [&'static str] = &
[
    "ABAP",
    "C#",
    "Emacs Lisp",
    "Go",
    "Objective-C++",
];
`

const infoMapRS = `
static LANGUAGE_INFO: phf::Map<&'static str, Language> = phf_map! {
    ("abap", Language {
        name: "ABAP",
        language_type: LanguageType::Programming,
        color: Some("#E8274B"),
        group: None
    }),
    ("go", Language {
        name: "Go",
        language_type: LanguageType::Programming,
        color: Some("#00ADD8"),
        group: None
    }),
    ("emacs lisp", Language {
        name: "Emacs Lisp",
        language_type: LanguageType::Programming,
        color: None,
        group: Some("Lisp")
    }),
};
`

func TestParseLanguages(t *testing.T) {
	langs, err := ParseLanguages(languagesRS)
	require.NoError(t, err)
	assert.Equal(t, []string{"ABAP", "C#", "Emacs Lisp", "Go", "Objective-C++"}, langs)
}

func TestParseLanguages_NoBlock(t *testing.T) {
	_, err := ParseLanguages("fn main() {}")
	assert.Error(t, err)
}

func TestParseInfoMap(t *testing.T) {
	info := ParseInfoMap(infoMapRS)
	require.Len(t, info, 3)

	assert.Equal(t, Info{Type: "Programming", Color: "#E8274B"}, info["ABAP"])
	assert.Equal(t, Info{Type: "Programming", Color: "#00ADD8"}, info["Go"])
	assert.Equal(t, Info{Type: "Programming", Group: "Lisp"}, info["Emacs Lisp"])
}

func TestToCanonical(t *testing.T) {
	idx := BuildIndex([]string{"C#", "Emacs Lisp", "Go", "Lua"})
	aliases := AliasTable()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Exact", "Go", "Go"},
		{"AliasGolang", "golang", "Go"},
		{"AliasCSharp", "c sharp", "C#"},
		{"Variant", "emacs-lisp", "Emacs Lisp"},
		{"NoiseWords", "Lua programming language", "Lua"},
		{"Unknown", "definitely-not-a-language", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCanonical(tt.in, idx, aliases))
		})
	}
}

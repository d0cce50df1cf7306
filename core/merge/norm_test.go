package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Simple", "Python", "python"},
		{"Spaces", "Visual Basic .NET", "visual-basic-net"},
		{"Sharp", "C#", "c-sharp"},
		{"MusicSharp", "F♯", "f-sharp"},
		{"PlusPlus", "C++", "c-plus-plus"},
		{"ObjectivePlusPlus", "Objective-C++", "objective-c-plus-plus"},
		{"Diacritics", "Caché ObjectScript", "cache-objectscript"},
		{"Empty", "", ""},
		{"PunctuationOnly", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestMakeID(t *testing.T) {
	assert.Equal(t, "c-sharp", MakeID("C#"))

	// Names that normalize to nothing still get a stable, distinct id.
	id := MakeID("!!!")
	assert.True(t, strings.HasPrefix(id, "id-"))
	assert.Len(t, id, len("id-")+8)
	assert.Equal(t, id, MakeID("!!!"))
	assert.NotEqual(t, id, MakeID("???"))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "c++", NormalizeKey("C++"))
	assert.Equal(t, "objective-c", NormalizeKey("Objective–C")) // en dash
	assert.Equal(t, "f#", NormalizeKey("  F#  "))
	assert.Equal(t, "standard ml", NormalizeKey("Standard  ML"))
}

func TestVariants(t *testing.T) {
	got := Variants("emacs lisp")
	assert.Contains(t, got, "emacs lisp")
	assert.Contains(t, got, "emacs-lisp")
	assert.Contains(t, got, "emacslisp")
}

func TestTokenizePieces(t *testing.T) {
	pieces := TokenizePieces("bash;shell-script")
	assert.Contains(t, pieces, "bash;shell-script")
	assert.Contains(t, pieces, "bash")
	assert.Contains(t, pieces, "shell-script")
	assert.Contains(t, pieces, "shell")
	assert.Contains(t, pieces, "script")
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("go", "go"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.InDelta(t, 0.952, Similarity("microsoft-small-basic", "microsoft-smal-basic"), 0.001)
	assert.Less(t, Similarity("python", "fortran"), 0.5)
}

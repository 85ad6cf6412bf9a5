package datatable

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSnakeCaseToTitle(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "", want: ""},
		{key: "icon", want: "Icon"},
		{key: "registry_project_id", want: "Registry Project Id"},
		{key: "vintage_year", want: "Vintage Year"},
		{key: "_leading", want: "Leading"},
		{key: "trailing_", want: "Trailing"},
		{key: "double__underscore", want: "Double Underscore"},
		{key: "mixedCase_key", want: "MixedCase Key"},
		{key: "über_größe", want: "Über Größe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.Equal(t, tt.want, SnakeCaseToTitle(tt.key))
		})
	}
}

func TestDeriveLabel_WordPerSegment(t *testing.T) {
	for _, key := range []string{"a", "project_name", "registry_project_id", "one_two_three_four"} {
		label := DeriveLabel(key, nil)
		words := strings.Fields(label)
		require.Len(t, words, len(strings.Split(key, "_")), "label %q", label)
		for _, word := range words {
			first, _ := utf8.DecodeRuneInString(word)
			require.True(t, unicode.IsUpper(first), "word %q of label %q", word, label)
		}
	}
}

func TestDeriveLabel_Hidden(t *testing.T) {
	hidden := NewHeadingSet("icon")
	require.Equal(t, "", DeriveLabel("icon", hidden))
	require.Equal(t, "Project Name", DeriveLabel("project_name", hidden))
	require.Equal(t, "", DeriveLabel("", nil))
}

func TestTitleLabel(t *testing.T) {
	require.Equal(t, "Vintage Year", TitleLabel("vintageYear"))
	require.Equal(t, "Project Id", TitleLabel("project_id"))
	require.Equal(t, "Icon", TitleLabel("icon"))
}

func TestSpacePascalCase(t *testing.T) {
	tests := []struct {
		testName string
		name     string
		want     string
	}{
		{testName: "", name: "", want: ""},
		{testName: "HelloWorld", name: "HelloWorld", want: "Hello World"},
		{testName: "_Hello_World", name: "_Hello_World", want: "Hello World"},
		{testName: "helloWorld", name: "helloWorld", want: "hello World"},
		{testName: "ThisHasMore_Spaces__ForSure", name: "ThisHasMore_Spaces__ForSure", want: "This Has More Spaces For Sure"},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			if got := SpacePascalCase(tt.name); got != tt.want {
				t.Errorf("SpacePascalCase() = %q, want %q", got, tt.want)
			}
		})
	}
}

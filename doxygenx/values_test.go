package doxygenx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/testingx"
)

func TestValues_TypedSetters(t *testing.T) {
	v := NewValues()
	require.NoError(t, v.SetBool("CREATE_SUBDIRS", true))
	require.NoError(t, v.SetInt("TAB_SIZE", 9))
	require.NoError(t, v.SetString("PROJECT_NAME", "Foo"))
	require.NoError(t, v.SetString("WARN_FORMAT", "$file: $text"))

	assert.True(t, v.Bool("CREATE_SUBDIRS"))
	assert.Equal(t, 9, v.Int("TAB_SIZE"))
	assert.Equal(t, "Foo", v.String("PROJECT_NAME"))
	assert.Equal(t, "$file: $text", v.String("WARN_FORMAT"))

	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []string{"PROJECT_NAME", "CREATE_SUBDIRS", "TAB_SIZE", "WARN_FORMAT"}, v.SetKeys())
}

func TestValues_KindMismatch(t *testing.T) {
	v := NewValues()

	err := v.SetInt("CREATE_SUBDIRS", 1)
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
	assert.Contains(t, err.Error(), "option CREATE_SUBDIRS is bool, not int")

	testingx.AssertError(t, v.SetBool("TAB_SIZE", true), errors.CodeInvalidArgument)
	testingx.AssertError(t, v.SetString("QUIET", "YES"), errors.CodeInvalidArgument)
	assert.Zero(t, v.Len())
}

func TestValues_UnknownKeySuggestsClosest(t *testing.T) {
	v := NewValues()

	err := v.Set("TAB_SIZ", "4")
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
	assert.Contains(t, err.Error(), `unknown option "TAB_SIZ" (did you mean TAB_SIZE?)`)

	err = v.Set("SOMETHING_ELSE_ENTIRELY", "4")
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestValues_SetParsesText(t *testing.T) {
	tests := []struct {
		key     string
		text    string
		want    string
		wantErr bool
	}{
		{key: "QUIET", text: "YES", want: "YES"},
		{key: "QUIET", text: "true", want: "YES"},
		{key: "QUIET", text: " off ", want: "NO"},
		{key: "QUIET", text: "0", want: "NO"},
		{key: "QUIET", text: "maybe", wantErr: true},
		{key: "TAB_SIZE", text: " 9 ", want: "9"},
		{key: "TAB_SIZE", text: "-3", want: "-3"},
		{key: "TAB_SIZE", text: "nine", wantErr: true},
		{key: "PROJECT_NAME", text: "My Project", want: "My Project"},
		{key: "PROJECT_NAME", text: "   ", want: ""},
		{key: "DOCSET_FEEDNAME", text: "", want: `"Doxygen generated docs"`},
		{key: "DOCSET_FEEDNAME", text: "Feed", want: `"Feed"`},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.text, func(t *testing.T) {
			v := NewValues()
			err := v.Set(tt.key, tt.text)
			if tt.wantErr {
				testingx.AssertError(t, err, errors.CodeInvalidArgument)
				assert.False(t, v.IsSet(tt.key))
				return
			}
			require.NoError(t, err)
			got, err := v.Resolve(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValues_Apply(t *testing.T) {
	v := NewValues()
	require.NoError(t, v.Apply(map[string]string{
		"TAB_SIZE":     "4",
		"PROJECT_NAME": "eggdoc",
		"RECURSIVE":    "YES",
	}))
	assert.Equal(t, 4, v.Int("TAB_SIZE"))
	assert.Equal(t, "eggdoc", v.String("PROJECT_NAME"))
	assert.True(t, v.Bool("RECURSIVE"))

	// Keys are applied in sorted order; AAA fails before TAB_SIZE is reached.
	v = NewValues()
	err := v.Apply(map[string]string{"TAB_SIZE": "4", "AAA": "x"})
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
	assert.False(t, v.IsSet("TAB_SIZE"))
}

func TestValues_DefaultsAndNil(t *testing.T) {
	var nilValues *Values
	assert.Equal(t, 8, nilValues.Int("TAB_SIZE"))
	assert.Equal(t, "English", nilValues.String("OUTPUT_LANGUAGE"))
	assert.True(t, nilValues.Bool("GENERATE_HTML"))
	assert.False(t, nilValues.IsSet("TAB_SIZE"))
	assert.Zero(t, nilValues.Len())
	nilValues.Unset("TAB_SIZE")

	var zero Values
	require.NoError(t, zero.SetInt("TAB_SIZE", 3))
	assert.Equal(t, 3, zero.Int("TAB_SIZE"))

	assert.False(t, zero.Bool("TAB_SIZE"))
	assert.Zero(t, zero.Int("QUIET"))
	assert.Empty(t, zero.String("NOT_AN_OPTION"))
}

func TestValues_BlankStringKeepsOverrideButResolvesDefault(t *testing.T) {
	v := NewValues()
	require.NoError(t, v.SetString("OUTPUT_LANGUAGE", " \t "))
	assert.True(t, v.IsSet("OUTPUT_LANGUAGE"))
	assert.Equal(t, "English", v.String("OUTPUT_LANGUAGE"))
}

func TestValues_Clone(t *testing.T) {
	v := NewValues()
	require.NoError(t, v.SetInt("TAB_SIZE", 2))

	c := v.Clone()
	require.NoError(t, c.SetInt("TAB_SIZE", 6))
	c.Unset("TAB_SIZE")

	assert.Equal(t, 2, v.Int("TAB_SIZE"))
	assert.Equal(t, 8, c.Int("TAB_SIZE"))

	var nilValues *Values
	assert.Zero(t, nilValues.Clone().Len())
}

func TestValues_ResolveUnknown(t *testing.T) {
	_, err := NewValues().Resolve("NOPE")
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"YES", "yes", "True", "ON", "1"} {
		b, ok := ParseBool(s)
		assert.True(t, ok, s)
		assert.True(t, b, s)
	}
	for _, s := range []string{"NO", "no", "false", "Off", "0"} {
		b, ok := ParseBool(s)
		assert.True(t, ok, s)
		assert.False(t, b, s)
	}
	_, ok := ParseBool("Y")
	assert.False(t, ok)
}

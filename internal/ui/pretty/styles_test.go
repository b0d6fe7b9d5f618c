// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creachadair/jlazy"
	"github.com/creachadair/jlazy/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Key.Render(text), "No-color Key should not add formatting")
	for _, typ := range []jlazy.Type{jlazy.Object, jlazy.Array, jlazy.String, jlazy.Number, jlazy.Boolean, jlazy.Null} {
		assert.Equal(t, typ.String(), styles.Type(typ))
	}
}

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)
	assert.True(t, styles.Bold.GetBold())
	assert.True(t, styles.Header.GetBold())
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "NO_COLOR should disable color")
}

func TestTable(t *testing.T) {
	tab := pretty.NewTable("KEY", "TYPE", "LEN")
	tab.Add("a", "string", "3")
	tab.Add("longer", "object", "12")
	tab.Add("été", "null", "0")
	assert.Equal(t, 3, tab.Len())

	want := "" +
		"KEY     TYPE    LEN\n" +
		"a       string  3\n" +
		"longer  object  12\n" +
		"été     null    0\n"
	assert.Equal(t, want, tab.Render(nil))

	bare := pretty.NewTable()
	bare.Add("x", "y")
	assert.Equal(t, "x  y\n", bare.Render(nil))
}

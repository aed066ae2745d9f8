// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/hsla/hsla"
	"cogentcore.org/hsla/names"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	red   = hsla.New(0, 1, 0.5, 1)
	blue  = hsla.New(240, 1, 0.5, 1)
	green = hsla.New(120, 0.5, 0.25, 1)
)

func TestFormatFromFile(t *testing.T) {
	for file, want := range map[string]Format{
		"a.json": JSON, "a.yaml": YAML, "a.YML": YAML, "a.toml": TOML,
		"dir/a.css": CSS, "a.txt": Text, "a.text": Text,
	} {
		f, err := FormatFromFile(file)
		assert.NoError(t, err, file)
		assert.Equal(t, want, f, file)
	}
	_, err := FormatFromFile("a.xml")
	assert.ErrorContains(t, err, `".xml"`)
}

func TestGetSet(t *testing.T) {
	p := Palette{}
	p.set("a", red)
	p.set("b", blue)
	p.set("a", green)
	assert.Equal(t, Palette{{"a", green}, {"b", blue}}, p)

	c, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, blue, c)
	c, ok = p.Get("c")
	assert.False(t, ok)
	assert.Equal(t, hsla.Default, c)
}

func TestReadMaps(t *testing.T) {
	tests := map[Format]string{
		JSON: `{"red": "red", "blue": {"r": 0, "g": 0, "b": 255}, "green": {"h": 120, "s": 0.5, "l": 0.25}}`,
		YAML: "red: red\nblue:\n  r: 0\n  g: 0\n  b: 255\ngreen: {h: 120, s: 0.5, l: 0.25}\n",
		TOML: "red = \"red\"\nblue = {r = 0, g = 0, b = 255}\n\n[green]\nh = 120\ns = 0.5\nl = 0.25\n",
	}
	for format, src := range tests {
		p, err := Read(strings.NewReader(src), format, nil)
		require.NoError(t, err, format)
		assert.Equal(t, Palette{{"blue", blue}, {"green", green}, {"red", red}}, p, format)
	}
}

func TestReadErrors(t *testing.T) {
	src := `{"ok": "#f00", "plain": 5, "none": {"x": 1}, "partial": {"h": 1, "l": 2}}`
	p, err := Read(strings.NewReader(src), JSON, nil)
	assert.Equal(t, Palette{{"ok", red}}, p)
	require.Error(t, err)
	assert.ErrorContains(t, err, "plain: hsla.FromAny: must pass string or object")
	assert.ErrorContains(t, err, "none: hsla.FromAny: could not parse argument")
	assert.ErrorContains(t, err, `partial: hsla.FromAny: missing key "s" in color type hsl`)

	_, err = Read(strings.NewReader(`{`), JSON, nil)
	assert.ErrorContains(t, err, "palette.Read: json")

	_, err = Read(strings.NewReader(`{}`), Format("xml"), nil)
	assert.ErrorContains(t, err, `unsupported format "xml"`)
}

func TestReadUnparsableString(t *testing.T) {
	p, err := Read(strings.NewReader(`{"x": "nope"}`), JSON, nil)
	assert.NoError(t, err)
	assert.Equal(t, Palette{{"x", hsla.Default}}, p)
}

func TestReadCSS(t *testing.T) {
	src := `
:root {
  --brand: #ff0000;
  --accent: blue;
  color: green;
}
@media (prefers-color-scheme: dark) {
  :root {
    --brand: #00f;
    --shade: #804020;
  }
}
`
	p, err := Read(strings.NewReader(src), CSS, nil)
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, "brand", p[0].Name)
	assert.Equal(t, blue, p[0].Color)
	assert.Equal(t, "accent", p[1].Name)
	assert.Equal(t, blue, p[1].Color)
	assert.Equal(t, "shade", p[2].Name)
	assert.Equal(t, hsla.FromString("#804020"), p[2].Color)
}

func TestReadText(t *testing.T) {
	src := "# brand colors\n\nred: #f00\n  blue :  BLUE  \nbroken\n"
	p, err := Read(strings.NewReader(src), Text, nil)
	assert.Equal(t, Palette{{"red", red}, {"blue", blue}}, p)
	assert.ErrorContains(t, err, `line 5: missing ':' in "broken"`)
}

func TestReadParser(t *testing.T) {
	ps := hsla.NewParser(names.Chain{names.Map{"brand": 0x0000ff}, names.CSS})
	p, err := Read(strings.NewReader("a: brand\nb: red\n"), Text, ps)
	assert.NoError(t, err)
	assert.Equal(t, Palette{{"a", blue}, {"b", red}}, p)

	p, err = Read(strings.NewReader("a: brand\n"), Text, nil)
	assert.NoError(t, err)
	assert.Equal(t, Palette{{"a", hsla.Default}}, p)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "colors.yaml")
	require.NoError(t, os.WriteFile(file, []byte("red: red\n"), 0666))
	p, err := Open(file, nil)
	assert.NoError(t, err)
	assert.Equal(t, Palette{{"red", red}}, p)

	_, err = Open(filepath.Join(dir, "missing.yaml"), nil)
	assert.ErrorContains(t, err, "palette.Open")
	_, err = Open(filepath.Join(dir, "colors.ini"), nil)
	assert.ErrorContains(t, err, "unknown file type")
}

func TestWriteText(t *testing.T) {
	p := Palette{{"red", red}, {"green", green}}
	var b bytes.Buffer
	require.NoError(t, p.Write(&b, Text))
	assert.Equal(t, "red: hsla(0, 100%, 50%, 1)\ngreen: hsla(120, 50%, 25%, 1)\n", b.String())
}

func TestWriteFormats(t *testing.T) {
	p := Palette{{"red", red}, {"green", green}}
	want := map[string]Record{
		"red":   {H: 0, S: 1, L: 0.5, A: 1, CSS: "hsla(0, 100%, 50%, 1)"},
		"green": {H: 120, S: 0.5, L: 0.25, A: 1, CSS: "hsla(120, 50%, 25%, 1)"},
	}
	assert.Equal(t, want, p.Records())

	unmarshal := map[Format]func([]byte, any) error{
		JSON: json.Unmarshal,
		YAML: yaml.Unmarshal,
		TOML: toml.Unmarshal,
	}
	for format, fn := range unmarshal {
		var b bytes.Buffer
		require.NoError(t, p.Write(&b, format), format)
		have := map[string]Record{}
		require.NoError(t, fn(b.Bytes(), &have), format)
		assert.Equal(t, want, have, format)
	}

	var b bytes.Buffer
	assert.ErrorContains(t, p.Write(&b, CSS), `palette.Write: unsupported format "css"`)
}

func TestWriteNonFinite(t *testing.T) {
	huge := "rgb(" + strings.Repeat("9", 400) + ", 0, 0)"
	p := Palette{{"dot", hsla.FromString("rgba(255,0,0,.)")}, {"huge", hsla.FromString(huge)}}
	require.True(t, math.IsNaN(p[0].Color.A))
	require.True(t, math.IsInf(p[1].Color.L, 1))

	var b bytes.Buffer
	require.NoError(t, p.Write(&b, JSON))
	assert.JSONEq(t, `{
  "dot": {"h": 0, "s": 1, "l": 0.5, "a": "NaN", "css": "hsla(0, 100%, 50%, NaN)"},
  "huge": {"h": 0, "s": 0, "l": "Infinity", "a": 1, "css": "hsla(0, 0%, 100%, 1)"}
}`, b.String())

	have := map[string]Record{}
	require.NoError(t, json.Unmarshal(b.Bytes(), &have))
	assert.True(t, math.IsNaN(float64(have["dot"].A)))
	assert.True(t, math.IsInf(float64(have["huge"].L), 1))
	assert.Equal(t, Number(1), have["huge"].A)

	for _, format := range []Format{YAML, TOML} {
		b.Reset()
		assert.NoError(t, p.Write(&b, format), format)
	}
}

func TestNumberJSON(t *testing.T) {
	for in, want := range map[string]float64{
		`1.5`: 1.5, `"-Infinity"`: math.Inf(-1), `"0.25"`: 0.25, `null`: 7,
	} {
		n := Number(7)
		require.NoError(t, json.Unmarshal([]byte(in), &n), in)
		assert.Equal(t, want, float64(n), in)
	}
	n := Number(0)
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))

	b, err := json.Marshal([]Number{0.5, Number(math.Inf(-1))})
	require.NoError(t, err)
	assert.Equal(t, `[0.5,"-Infinity"]`, string(b))
}

func TestWriteRead(t *testing.T) {
	p := Palette{{"a", hsla.New(200, 0.3, 0.6, 0.5)}, {"b", red}}
	var b bytes.Buffer
	require.NoError(t, p.Write(&b, Text))
	again, err := Read(&b, Text, nil)
	require.NoError(t, err)
	require.Len(t, again, 2)
	for i := range p {
		assert.Equal(t, p[i].Name, again[i].Name)
		assert.Equal(t, p[i].Color.String(), again[i].Color.String())
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "colors.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"c": "red"}`), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan Palette, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, file, nil, func(p Palette, err error) {
			if err != nil {
				return
			}
			select {
			case results <- p:
			case <-ctx.Done():
			}
		})
	}()

	timeout := time.After(5 * time.Second)
	select {
	case p := <-results:
		assert.Equal(t, Palette{{"c", red}}, p)
	case <-timeout:
		t.Fatal("no initial palette")
	}

	require.NoError(t, os.WriteFile(file, []byte(`{"c": "blue"}`), 0666))
	for found := false; !found; {
		select {
		case p := <-results:
			c, _ := p.Get("c")
			found = c == blue
		case <-timeout:
			t.Fatal("palette change not seen")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/desk"
)

func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestNotesProvider(t *testing.T) {
	p := NewNotesProvider("notty")

	c, err := p.Provide(context.Background(), map[string]any{"text": "# Session 4\n\nThe party reaches the *keep*.", "wrap": float64(40)})
	require.NoError(t, err)
	assert.False(t, c.IsTabbed())
	assert.Contains(t, c.Markup, "Session 4")
	assert.Contains(t, c.Markup, "keep")

	c, err = p.Provide(context.Background(), map[string]any{"notes": []any{
		map[string]any{"title": "NPCs", "text": "- Mira"},
		map[string]any{"text": "loot"},
	}})
	require.NoError(t, err)
	require.Equal(t, 2, c.TabCount())
	assert.Equal(t, "NPCs", c.Tabs[0].Title)
	assert.Equal(t, "Note 2", c.Tabs[1].Title)
	assert.Contains(t, c.Tabs[0].Content, "Mira")

	_, err = p.Provide(context.Background(), map[string]any{"notes": "nope"})
	assert.Error(t, err)
}

func TestHelpProvider_ListsBindings(t *testing.T) {
	c, err := NewHelpProvider(desk.DefaultKeymap()).Provide(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 2, c.TabCount())
	assert.Equal(t, "Keys", c.Tabs[0].Title)
	assert.Contains(t, c.Tabs[0].Content, "alt+tab, alt+n")
	assert.Contains(t, c.Tabs[0].Content, "alt+1 .. alt+9")
	assert.Contains(t, c.Tabs[1].Content, "resize")
}

func TestScriptProvider_Markup(t *testing.T) {
	path := writeScript(t, t.TempDir(), "counter.js", `
function provide(data) {
  data.count = (data.count || 0) + 1;
  console.log("count", data.count);
  return { markup: "seen " + data.count + " times" };
}`)
	sp, err := CompileScript(path, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "counter", sp.Type())

	data := map[string]any{}
	c, err := sp.Provide(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "seen 1 times", c.Markup)
	assert.EqualValues(t, 1, data["count"], "keys set by the script stay in the content data")
}

func TestScriptProvider_TabsAndString(t *testing.T) {
	dir := t.TempDir()
	tabs, err := CompileScript(writeScript(t, dir, "dice.js", `
function provide(data) {
  return { tabs: [{ title: "d" + data.sides, content: "roll" }, { title: "log", content: "" }] };
}`), time.Second)
	require.NoError(t, err)

	c, err := tabs.Provide(context.Background(), map[string]any{"sides": 20})
	require.NoError(t, err)
	require.Equal(t, 2, c.TabCount())
	assert.Equal(t, "d20", c.Tabs[0].Title)

	plain, err := CompileScript(writeScript(t, dir, "plain.js", `function provide() { return "hi"; }`), time.Second)
	require.NoError(t, err)
	c, err = plain.Provide(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", c.Markup)
}

func TestScriptProvider_Failures(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		src     string
		ctx     func() context.Context
		wantErr error
		wantMsg string
	}{
		{name: "no provide", src: `var x = 1;`, wantMsg: "not a function"},
		{name: "throws", src: `function provide() { throw new Error("bad roll"); }`, wantMsg: "bad roll"},
		{name: "returns nothing", src: `function provide() {}`, wantMsg: "returned nothing"},
		{name: "returns number", src: `function provide() { return 4; }`, wantMsg: "string or an object"},
		{name: "bad tabs", src: `function provide() { return { tabs: 3 }; }`, wantMsg: "tabs must be an array"},
		{name: "timeout", src: `function provide() { for (;;) {} }`, wantErr: ErrScriptTimeout},
		{
			name: "canceled",
			src:  `function provide() { for (;;) {} }`,
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			wantErr: context.Canceled,
		},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeout := 50 * time.Millisecond
			if tt.ctx != nil {
				timeout = 5 * time.Second
			}
			path := writeScript(t, dir, "s"+string(rune('a'+i))+".js", tt.src)
			sp, err := CompileScript(path, timeout)
			require.NoError(t, err)

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}
			_, err = sp.Provide(ctx, map[string]any{})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoadScripts(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "b.js", `function provide() { return "b"; }`)
	writeScript(t, dir, "a.js", `function provide() { return "a"; }`)
	writeScript(t, dir, "broken.js", `function provide( {`)
	writeScript(t, dir, "readme.txt", `not a script`)

	scripts, err := LoadScripts(context.Background(), dir, time.Second)
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken.js")
	require.Len(t, scripts, 2)
	assert.Equal(t, "a", scripts[0].Type())
	assert.Equal(t, "b", scripts[1].Type())

	none, err := LoadScripts(context.Background(), filepath.Join(dir, "missing"), time.Second)
	require.NoError(t, err)
	assert.Empty(t, none)
}

type mapRegistrar map[string]port.ContentProvider

func (m mapRegistrar) Register(contentType string, provider port.ContentProvider) {
	m[contentType] = provider
}

func TestRegisterAll(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "oracle.js", `function provide() { return "yes"; }`)
	writeScript(t, dir, "notes.js", `function provide() { return "shadow"; }`)

	reg := mapRegistrar{}
	scripts := RegisterAll(context.Background(), reg, Options{
		ScriptDir:  dir,
		NotesStyle: "notty",
		Keymap:     desk.DefaultKeymap(),
	})

	assert.Equal(t, []string{"oracle"}, scripts)
	assert.IsType(t, &NotesProvider{}, reg[NotesContentType])
	assert.IsType(t, &HelpProvider{}, reg[HelpContentType])
	assert.Contains(t, reg, "oracle")
}

func TestRegisterAll_IntoDeskRegistry(t *testing.T) {
	registry := desk.NewContentRegistry()
	RegisterAll(context.Background(), registry, Options{NotesStyle: "notty", Keymap: desk.DefaultKeymap()})

	assert.Equal(t, []string{HelpContentType, desk.InlineContentType, NotesContentType}, registry.Types())
	c, err := registry.Provide(context.Background(), NotesContentType, map[string]any{"text": "hello"})
	require.NoError(t, err)
	assert.Contains(t, c.Markup, "hello")
}

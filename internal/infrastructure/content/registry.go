// Package content holds the content providers panels are built from: the
// built-in notes and help providers and JavaScript providers loaded from
// the script directory.
package content

import (
	"context"
	"time"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/logging"
)

// Built-in content types.
const (
	NotesContentType = "notes"
	HelpContentType  = "help"
)

// Registrar accepts providers by content type.
type Registrar interface {
	Register(contentType string, provider port.ContentProvider)
}

// Options configures RegisterAll.
type Options struct {
	// ScriptDir holds *.js providers. Empty or missing skips scripts.
	ScriptDir     string
	ScriptTimeout time.Duration
	// NotesStyle is a glamour standard style ("dark", "light", "notty").
	NotesStyle string
	Keymap     desk.Keymap
}

// RegisterAll registers the built-in providers and every script in
// opts.ScriptDir. A script that fails to compile is logged and skipped;
// built-in types cannot be overridden by scripts.
func RegisterAll(ctx context.Context, r Registrar, opts Options) []string {
	log := logging.FromContext(ctx)

	r.Register(NotesContentType, NewNotesProvider(opts.NotesStyle))
	r.Register(HelpContentType, NewHelpProvider(opts.Keymap))

	scripts, err := LoadScripts(ctx, opts.ScriptDir, opts.ScriptTimeout)
	if err != nil {
		log.Warn().Err(err).Str("dir", opts.ScriptDir).Msg("some content scripts were skipped")
	}

	registered := make([]string, 0, len(scripts))
	for _, s := range scripts {
		switch s.Type() {
		case NotesContentType, HelpContentType, desk.InlineContentType:
			log.Warn().Str("type", s.Type()).Msg("content script shadows a built-in type, skipped")
			continue
		}
		r.Register(s.Type(), s)
		registered = append(registered, s.Type())
	}
	log.Debug().Strs("scripts", registered).Msg("content providers registered")
	return registered
}

package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grafana/sobek"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/logging"
)

const (
	scriptExt            = ".js"
	defaultScriptTimeout = 2 * time.Second
	provideFunc          = "provide"
)

// ErrScriptTimeout is returned when a script runs past its time budget.
var ErrScriptTimeout = errors.New("content script timed out")

// ScriptProvider runs a JavaScript file defining
//
//	function provide(data) { return {markup: "..."} }
//
// or returning {tabs: [{title, content}]}. data is the panel's content data;
// keys the script sets on it are persisted with the layout.
type ScriptProvider struct {
	contentType string
	path        string
	program     *sobek.Program
	timeout     time.Duration
}

// CompileScript compiles the file at path. The content type is the file
// name without its extension.
func CompileScript(path string, timeout time.Duration) (*ScriptProvider, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	program, err := sobek.Compile(filepath.Base(path), string(src), true)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", filepath.Base(path), err)
	}
	if timeout <= 0 {
		timeout = defaultScriptTimeout
	}
	return &ScriptProvider{
		contentType: strings.TrimSuffix(filepath.Base(path), scriptExt),
		path:        path,
		program:     program,
		timeout:     timeout,
	}, nil
}

// Type returns the content type the script serves.
func (s *ScriptProvider) Type() string {
	return s.contentType
}

// Provide implements port.ContentProvider. Every call gets a fresh runtime.
func (s *ScriptProvider) Provide(ctx context.Context, data map[string]any) (entity.Content, error) {
	log := logging.FromContext(ctx).With().Str("script", s.contentType).Logger()

	vm := sobek.New()
	vm.SetFieldNameMapper(sobek.TagFieldNameMapper("json", true))

	timer := time.AfterFunc(s.timeout, func() { vm.Interrupt(ErrScriptTimeout) })
	defer timer.Stop()
	stop := context.AfterFunc(ctx, func() { vm.Interrupt(ctx.Err()) })
	defer stop()

	console := vm.NewObject()
	_ = console.Set("log", func(call sobek.FunctionCall) sobek.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, a := range call.Arguments {
			parts = append(parts, a.String())
		}
		log.Debug().Msg(strings.Join(parts, " "))
		return sobek.Undefined()
	})
	if err := vm.Set("console", console); err != nil {
		return entity.Content{}, err
	}

	if _, err := vm.RunProgram(s.program); err != nil {
		return entity.Content{}, s.runError(err)
	}
	fn, ok := sobek.AssertFunction(vm.Get(provideFunc))
	if !ok {
		return entity.Content{}, fmt.Errorf("%s: %s is not a function", s.path, provideFunc)
	}
	if data == nil {
		data = map[string]any{}
	}
	result, err := fn(sobek.Undefined(), vm.ToValue(data))
	if err != nil {
		return entity.Content{}, s.runError(err)
	}
	return s.decode(ctx, result)
}

func (s *ScriptProvider) decode(ctx context.Context, v sobek.Value) (entity.Content, error) {
	if v == nil || sobek.IsUndefined(v) || sobek.IsNull(v) {
		return entity.Content{}, fmt.Errorf("%s: provide returned nothing", s.contentType)
	}
	switch out := v.Export().(type) {
	case string:
		return entity.Content{Markup: out}, nil
	case map[string]any:
		c, err := desk.InlineContent(ctx, out)
		if err != nil {
			return entity.Content{}, fmt.Errorf("%s: %w", s.contentType, err)
		}
		return c, nil
	default:
		return entity.Content{}, fmt.Errorf("%s: provide must return a string or an object, got %T", s.contentType, out)
	}
}

func (s *ScriptProvider) runError(err error) error {
	var interrupted *sobek.InterruptedError
	if errors.As(err, &interrupted) {
		if cause, ok := interrupted.Value().(error); ok {
			return fmt.Errorf("%s: %w", s.contentType, cause)
		}
	}
	return fmt.Errorf("%s: %w", s.contentType, err)
}

// LoadScripts compiles every *.js file in dir. Files that fail to compile
// are reported in the joined error; the rest are returned sorted by type.
// A missing dir yields no providers and no error.
func LoadScripts(ctx context.Context, dir string, timeout time.Duration) ([]*ScriptProvider, error) {
	if dir == "" {
		return nil, nil
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*"+scriptExt))
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	if len(paths) == 0 {
		return nil, nil
	}

	var (
		mu       sync.Mutex
		loaded   []*ScriptProvider
		failures []error
	)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range paths {
		g.Go(func() error {
			sp, err := CompileScript(path, timeout)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return nil
			}
			loaded = append(loaded, sp)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(loaded, func(i, j int) bool { return loaded[i].contentType < loaded[j].contentType })
	return loaded, errors.Join(failures...)
}

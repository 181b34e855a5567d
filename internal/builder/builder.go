// Package builder contains the build orchestrator: the ordered step pipeline
// and the shared build state threaded through it.
//
// The Builder owns a fixed catalogue of step factories. Each Build call
// resolves options, initializes every catalogue step, filters to the
// applicable subset, then processes the subset strictly in catalogue order.
// The Builder's collections are the only inter-step coupling: a step observes
// whatever its predecessors left behind.
package builder

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/metrics"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
	"git.home.luguber.info/inful/sitebuilder/internal/version"
)

// Renderer is the template engine handle set by a render-capable step.
type Renderer interface {
	Render(layout string, data any) ([]byte, error)
}

// Generator produces virtual pages (redirects, sitemaps, ...). Generators are
// consulted by the page-generation step, not by the orchestrator itself.
type Generator interface {
	Name() string
	Generate(b *Builder) ([]*site.Page, error)
}

// Builder runs the build pipeline over a single shared mutable state. A
// Builder is long-lived: Build may be invoked repeatedly (watch mode), each
// invocation performing a full init+process pass. The Builder never clears
// collections between builds; the load steps own their reset policy.
type Builder struct {
	cfg       *config.Config
	logger    *slog.Logger
	catalogue []StepFactory
	options   Options
	recorder  metrics.Recorder

	sourceFiles []site.File
	data        map[string]any
	static      map[string]site.File
	pages       *site.Pages
	menus       map[string]site.Menus
	taxonomies  *site.Taxonomies
	renderer    Renderer
	generators  []Generator
	debug       bool
}

// Option customizes Builder construction.
type Option func(*Builder)

// WithRecorder injects a metrics recorder (defaults to noop).
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New constructs a Builder bound to cfg with the given step catalogue.
// The debug flag is resolved exactly once here, from explicit configuration or
// the environment override, and stays fixed for the Builder's lifetime.
func New(cfg *config.Config, catalogue []StepFactory, opts ...Option) *Builder {
	b := &Builder{
		cfg:        cfg,
		logger:     slog.Default(),
		catalogue:  catalogue,
		recorder:   metrics.NoopRecorder{},
		data:       make(map[string]any),
		static:     make(map[string]site.File),
		pages:      site.NewPages(),
		menus:      make(map[string]site.Menus),
		taxonomies: site.NewTaxonomies(),
		debug:      cfg.DebugEnabled(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build runs one full pipeline pass. Step failures (Init or Process) abort the
// pass immediately and surface as a *StepError naming the failing step; no
// rollback of earlier mutations is attempted.
func (b *Builder) Build(overrides map[string]any) error {
	start := time.Now()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	allocBefore := ms.TotalAlloc

	log := b.logger.With(logfields.BuildID(uuid.NewString()[:8]))

	if baseURLUnset(b.cfg.BaseURL) {
		log.Error("baseurl is not set in configuration: site will not be suitable for production")
	}

	b.options = ResolveOptions(overrides)

	// Init pass: instantiate and initialize every catalogue step, retaining
	// the applicable subset so progress totals are exact before any work runs.
	var steps []Step
	for _, factory := range b.catalogue {
		st := factory(b)
		if err := st.Init(b.options); err != nil {
			b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return &StepError{Step: st.Name(), Err: err}
		}
		if st.CanProcess() {
			steps = append(steps, st)
		}
	}

	// Process pass: strict catalogue order, fail fast.
	total := len(steps)
	for i, st := range steps {
		log.Info("Processing step",
			logfields.Step(st.Name()),
			slog.Int("current", i+1),
			slog.Int("total", total))
		t0 := time.Now()
		if err := st.Process(); err != nil {
			b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return &StepError{Step: st.Name(), Err: err}
		}
		b.recorder.ObserveStepDuration(st.Name(), time.Since(t0))
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&ms)
	log.Info("Build complete",
		slog.String("duration", elapsed.Round(time.Millisecond).String()),
		slog.String("memory", formatBytes(ms.TotalAlloc-allocBefore)),
		logfields.Count(b.pages.Len()))
	b.recorder.ObserveBuildDuration(elapsed)
	b.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	b.recorder.SetPagesTotal(b.pages.Len())
	return nil
}

// Version reports the running engine version (process-wide cached).
func (b *Builder) Version() string { return version.Resolve() }

// Config returns the configuration handle. Read-only from a step's view.
func (b *Builder) Config() *config.Config { return b.cfg }

// Logger returns the shared log sink. Steps write to it, never replace it.
func (b *Builder) Logger() *slog.Logger { return b.logger }

// Options returns the options resolved for the current build.
func (b *Builder) Options() Options { return b.options }

// Debug reports the debug flag resolved at construction.
func (b *Builder) Debug() bool { return b.debug }

// SourceFiles returns the discovered content file set.
func (b *Builder) SourceFiles() []site.File { return b.sourceFiles }

// SetSourceFiles records the discovered content file set.
func (b *Builder) SetSourceFiles(files []site.File) { b.sourceFiles = files }

// Data returns the named dataset mapping.
func (b *Builder) Data() map[string]any { return b.data }

// SetData replaces the dataset mapping.
func (b *Builder) SetData(d map[string]any) { b.data = d }

// Static returns the output-relative path -> source file mapping.
func (b *Builder) Static() map[string]site.File { return b.static }

// SetStatic replaces the static file mapping.
func (b *Builder) SetStatic(s map[string]site.File) { b.static = s }

// Pages returns the page collection. Exactly one instance exists per Builder;
// steps mutate it in place.
func (b *Builder) Pages() *site.Pages { return b.pages }

// Menus returns the language code -> menu collection mapping.
func (b *Builder) Menus() map[string]site.Menus { return b.menus }

// SetMenus replaces the menu mapping.
func (b *Builder) SetMenus(m map[string]site.Menus) { b.menus = m }

// Taxonomies returns the taxonomy collection.
func (b *Builder) Taxonomies() *site.Taxonomies { return b.taxonomies }

// Renderer returns the active template engine, nil before the render step.
func (b *Builder) Renderer() Renderer { return b.renderer }

// SetRenderer records the active template engine.
func (b *Builder) SetRenderer(r Renderer) { b.renderer = r }

// Generators returns the registered virtual-content generators.
func (b *Builder) Generators() []Generator { return b.generators }

// RegisterGenerator appends generators to the registry.
func (b *Builder) RegisterGenerator(gens ...Generator) {
	b.generators = append(b.generators, gens...)
}

// baseURLUnset reports whether the base URL is empty once whitespace and
// slashes are ignored (a bare "/" preview URL is not production ready either).
func baseURLUnset(u string) bool {
	return strings.TrimFunc(u, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/'
	}) == ""
}

func formatBytes(n uint64) string {
	const mb = 1 << 20
	if n < mb {
		return fmt.Sprintf("%d KB", n>>10)
	}
	return fmt.Sprintf("%.1f MB", float64(n)/mb)
}

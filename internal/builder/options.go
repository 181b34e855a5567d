package builder

// Recognized option keys.
const (
	OptionDrafts = "drafts"
	OptionDryRun = "dry-run"
	OptionPage   = "page"
)

// Options is the immutable resolved set of build flags. Every recognized key
// always carries a value; unrecognized keys pass through untouched so steps
// can carry private flags without the orchestrator enumerating them.
type Options struct {
	values map[string]any
}

// ResolveOptions merges caller overrides onto the documented defaults.
// Resolution cannot fail: overrides only add or replace keys.
func ResolveOptions(overrides map[string]any) Options {
	values := map[string]any{
		OptionDrafts: false,
		OptionDryRun: false,
		OptionPage:   "",
	}
	for k, v := range overrides {
		values[k] = v
	}
	return Options{values: values}
}

// Drafts reports whether draft pages are included in this build.
func (o Options) Drafts() bool { b, _ := o.values[OptionDrafts].(bool); return b }

// DryRun reports whether later stages must skip persisting output.
func (o Options) DryRun() bool { b, _ := o.values[OptionDryRun].(bool); return b }

// Page returns the single-page filter, empty when the whole site builds.
func (o Options) Page() string { s, _ := o.values[OptionPage].(string); return s }

// Get returns an arbitrary option value (including step-private keys).
func (o Options) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

package answer

import (
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/subject"
)

// EvaluateInput is what a plugin sees about one answer.
type EvaluateInput struct {
	Response     string // normalized response
	TaskType     TaskType
	Subject      *subject.Enriched
	CheckResult  CheckResult
	UserSynonyms []string

	tolerance ToleranceFunc
}

func (in *EvaluateInput) matchTolerance() ToleranceFunc {
	if in.tolerance == nil {
		return DefaultTolerance
	}
	return in.tolerance
}

// hiraganaResponse returns the response with katakana folded to hiragana.
func (in *EvaluateInput) hiraganaResponse() string {
	return kana.ToHiragana(in.Response)
}

// acceptedReadings returns the subject's accepted readings in hiragana,
// or nil when the subject has no readings.
func (in *EvaluateInput) acceptedReadings() []string {
	readings, ok := subject.ReadingsOf(in.Subject.Subject)
	if !ok {
		return nil
	}
	accepted := subject.AcceptedReadings(readings)
	for i, r := range accepted {
		accepted[i] = kana.ToHiragana(r)
	}
	return accepted
}

// Plugin is one heuristic that can turn a failed or imprecise answer into
// a more helpful verdict. Plugins are stateless and safe for concurrent
// use.
type Plugin interface {
	// Name returns a short identifier, e.g. "check-n".
	Name() string

	// ShouldEvaluate reports whether the plugin applies to this task type
	// and subject. It must not assume any earlier filtering.
	ShouldEvaluate(in *EvaluateInput) bool

	// Evaluate returns a verdict, or nil if the plugin has nothing to say.
	Evaluate(in *EvaluateInput) *Result
}

// PassInspector is implemented by plugins that must also see answers the
// comparators accepted outright.
type PassInspector interface {
	InspectsPasses() bool
}

// DefaultPlugins returns the plugins in evaluation order. The order
// matters: specific hints come before the generic transliteration check,
// which would otherwise shadow them.
func DefaultPlugins() []Plugin {
	return []Plugin{
		&NPlugin{},
		&KanjiPlugin{},
		&KanjiDoesNotStartWithToPlugin{},
		&KanjiReadingsPlugin{},
		&LongDashPlugin{},
		&RelatedMeaningsAndReadingsPlugin{},
		&SmallHiraganaPlugin{},
		&VerbStartsWithToPlugin{},
		&TransliteratedPlugin{},
		&ImpossibleKanaPlugin{},
	}
}

// PluginNames returns the names of the default plugins in order.
func PluginNames() []string {
	plugins := DefaultPlugins()
	names := make([]string, len(plugins))
	for i, p := range plugins {
		names[i] = p.Name()
	}
	return names
}

// RunPlugins evaluates plugins in order and returns the first verdict,
// with Plugin set to the name of the plugin that produced it. Returns nil
// if no plugin has anything to say.
func RunPlugins(plugins []Plugin, in *EvaluateInput) *Result {
	for _, p := range plugins {
		if !p.ShouldEvaluate(in) {
			continue
		}
		if r := p.Evaluate(in); r != nil {
			r.Plugin = p.Name()
			return r
		}
	}
	return nil
}

// passInspectors returns the plugins that want to see clean passes.
func passInspectors(plugins []Plugin) []Plugin {
	var out []Plugin
	for _, p := range plugins {
		if pi, ok := p.(PassInspector); ok && pi.InspectsPasses() {
			out = append(out, p)
		}
	}
	return out
}

func hint(message string) *Result {
	return &Result{Status: StatusHint, Message: message}
}

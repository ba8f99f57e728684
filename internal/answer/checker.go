package answer

import (
	"fmt"
	"slices"
)

// Config controls a Checker.
type Config struct {
	// Plugins is the ordered list of heuristics consulted when an answer
	// is not an exact match. The first plugin with a verdict wins.
	Plugins []Plugin

	// Tolerance decides how many typos a meaning answer may contain.
	Tolerance ToleranceFunc
}

// DefaultConfig returns the standard plugin order and tolerance table.
func DefaultConfig() Config {
	return Config{
		Plugins:   DefaultPlugins(),
		Tolerance: DefaultTolerance,
	}
}

// Without returns a copy of c without the named plugins. The remaining
// plugins keep their order.
func (c Config) Without(names ...string) Config {
	c.Plugins = slices.DeleteFunc(slices.Clone(c.Plugins), func(p Plugin) bool {
		return slices.Contains(names, p.Name())
	})
	return c
}

// Checker turns answers into verdicts. It holds no mutable state and is
// safe for concurrent use.
type Checker struct {
	plugins   []Plugin
	tolerance ToleranceFunc
}

// New creates a Checker.
func New(cfg Config) *Checker {
	if cfg.Tolerance == nil {
		cfg.Tolerance = DefaultTolerance
	}
	return &Checker{
		plugins:   slices.Clone(cfg.Plugins),
		tolerance: cfg.Tolerance,
	}
}

var defaultChecker = New(DefaultConfig())

// CheckAnswer judges an answer with the default configuration.
func CheckAnswer(p Params) Result {
	return defaultChecker.CheckAnswer(p)
}

// CheckAnswer normalizes the input, compares it with the subject's
// answers and, unless it matched exactly, lets the plugins refine the
// verdict. It does not modify p.
func (c *Checker) CheckAnswer(p Params) Result {
	input := NormalizeString(p.Input)
	s := p.Subject.Subject

	var result CheckResult
	switch p.TaskType {
	case TaskReading:
		result = compareReading(input, s)
	default:
		var blacklisted bool
		result, blacklisted = compareMeaning(input, s, p.UserSynonyms, c.tolerance)
		if blacklisted {
			return blacklistResult(input, p.UserSynonyms)
		}
	}

	in := &EvaluateInput{
		Response:     input,
		TaskType:     p.TaskType,
		Subject:      p.Subject,
		CheckResult:  result,
		UserSynonyms: p.UserSynonyms,
		tolerance:    c.tolerance,
	}

	plugins := c.plugins
	if result.Clean() {
		plugins = passInspectors(plugins)
	}
	if r := RunPlugins(plugins, in); r != nil {
		return *r
	}
	return verdict(p.TaskType, result)
}

// verdict turns a comparator judgment into the learner-facing result.
func verdict(task TaskType, r CheckResult) Result {
	noun := string(task)
	switch {
	case r.Clean() && r.MultipleAnswers:
		return Result{
			Status:  StatusCorrect,
			Message: fmt.Sprintf("Did you know this item has multiple possible %ss?", noun),
		}
	case r.Clean():
		return Result{Status: StatusCorrect}
	case r.Passed:
		return Result{
			Status:  StatusCorrectWithHint,
			Message: fmt.Sprintf("Your answer was a bit off. Check the %s to make sure you are correct.", noun),
		}
	default:
		return Result{
			Status:  StatusIncorrect,
			Message: fmt.Sprintf("Need help? View the correct %s and mnemonic.", noun),
		}
	}
}

func blacklistResult(input string, userSynonyms []string) Result {
	if slices.Contains(normalizeAll(userSynonyms), input) {
		return Result{
			Status: StatusIncorrect,
			Message: fmt.Sprintf("“%s” is one of your synonyms, but it is also listed as a wrong answer "+
				"for this item, so it can't be accepted. Consider removing it from your synonyms.", input),
		}
	}
	return verdict(TaskMeaning, CheckResult{})
}

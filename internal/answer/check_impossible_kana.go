package answer

import "github.com/abhisek/kotoba/internal/kana"

// ImpossibleKanaPlugin flags readings containing kana sequences no
// Japanese word has. It also inspects answers that matched, since a typo
// can coincide with a badly entered reading.
type ImpossibleKanaPlugin struct{}

func (p *ImpossibleKanaPlugin) Name() string { return "check-impossible-kana" }

func (p *ImpossibleKanaPlugin) InspectsPasses() bool { return true }

func (p *ImpossibleKanaPlugin) ShouldEvaluate(in *EvaluateInput) bool {
	return in.TaskType == TaskReading
}

func (p *ImpossibleKanaPlugin) Evaluate(in *EvaluateInput) *Result {
	if !kana.HasImpossibleSequence(in.Response) {
		return nil
	}
	return hint("That looks like a typo. Do you want to retry?")
}

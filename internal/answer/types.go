package answer

import "github.com/abhisek/kotoba/internal/subject"

// TaskType is what the learner was asked for.
type TaskType string

const (
	TaskMeaning TaskType = "meaning"
	TaskReading TaskType = "reading"
)

// Status is the verdict shown to the learner.
type Status string

const (
	StatusCorrect         Status = "correct"
	StatusIncorrect       Status = "incorrect"
	StatusCorrectWithHint Status = "correctWithHint"
	StatusHint            Status = "hint"
)

// Finalizes reports whether the verdict completes the task. A hint keeps
// the same task pending so the learner can retry.
func (s Status) Finalizes() bool {
	return s != StatusHint
}

// Result is the verdict for one answer.
type Result struct {
	Status  Status
	Message string // may be empty, never for StatusCorrectWithHint
	Plugin  string // name of the plugin that decided the verdict, if any
}

// CheckResult is the raw judgment of the comparators.
type CheckResult struct {
	Passed          bool // the answer is acceptable
	Accurate        bool // exact or whitelisted match rather than a near miss
	MultipleAnswers bool // more than one canonical answer exists
}

// Clean reports whether the answer matched exactly.
func (c CheckResult) Clean() bool {
	return c.Passed && c.Accurate
}

// Params is the input to CheckAnswer.
type Params struct {
	TaskType     TaskType
	Input        string
	Subject      *subject.Enriched
	UserSynonyms []string
}

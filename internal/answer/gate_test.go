package answer

import "testing"

func TestQuestionTypeAndResponseMatch(t *testing.T) {
	tests := []struct {
		task     TaskType
		response string
		want     bool
	}{
		{TaskReading, "みず", true},
		{TaskReading, "ミズ", true},
		{TaskReading, "らーめん", true},
		{TaskReading, "ほn", true},
		{TaskReading, "ほnn", false},
		{TaskReading, "mizu", false},
		{TaskReading, "水", false},
		{TaskMeaning, "water", true},
		{TaskMeaning, "水", true},
		{TaskMeaning, "みず", false},
		{TaskMeaning, "water みず", false},
		{TaskType("audio"), "water", false},
	}

	for _, tt := range tests {
		if got := QuestionTypeAndResponseMatch(tt.task, tt.response); got != tt.want {
			t.Errorf("QuestionTypeAndResponseMatch(%q, %q) = %v, want %v", tt.task, tt.response, got, tt.want)
		}
	}
}

package reflection

import (
	"bytes"
	"text/template"
)

const reviewSystemPrompt = `You are a coach for algorithmic interview preparation. A learner has just finished an attempt at a problem. Before coding they committed to a pattern choice during a forced thinking phase; now you review that decision.

Instructions:
- Judge the pattern CHOICE, not the code. The learner reports the outcome themselves.
- Be specific: reference the problem's actual signals, not generic advice.
- If the chosen pattern was wrong, explain which signal should have pointed elsewhere.
- If the learner switched approaches mid-attempt, address what the switch reveals about the initial read.
- Comment on confidence calibration: high confidence with a failed outcome and low confidence with success both deserve a note.
- Keep every field short. No preamble, no praise padding.`

var reviewUserTemplate = template.Must(template.New("review").Parse(`Problem: {{.ProblemTitle}}{{if .ProblemDifficulty}} ({{.ProblemDifficulty}}){{end}}
{{- if .CorrectPattern}}
Canonical pattern: {{.CorrectPattern}}
{{- end}}
{{- if .KeySignals}}
Known signals:
{{- range .KeySignals}}
- {{.}}
{{- end}}
{{- end}}

Cold start ({{.ThinkingSeconds}}s of thinking):
Chosen pattern: {{.ChosenPattern}}
{{- if .SecondaryPattern}}
Considered but ranked second: {{.SecondaryPattern}}
{{- end}}
{{- if .RejectedPattern}}
Rejected: {{.RejectedPattern}}{{if .RejectionReason}} because: {{.RejectionReason}}{{end}}
{{- end}}
{{- if .IdentifiedSignals}}
Signals the learner identified:
{{- range .IdentifiedSignals}}
- {{.}}
{{- end}}
{{- end}}
Stated confidence: {{.Confidence}}

Outcome after {{.TotalSeconds}}s total: {{.Outcome}}
{{- if .FirstFailure}}
First failure mode: {{.FirstFailure}}
{{- end}}
{{- if .SwitchedApproach}}
Switched approach mid-attempt{{if .SwitchReason}}: {{.SwitchReason}}{{end}}
{{- end}}`))

func buildReviewMessage(in Input) (string, error) {
	var buf bytes.Buffer
	if err := reviewUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}

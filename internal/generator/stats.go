// ABOUTME: Run statistics accumulated by the batch driver
// ABOUTME: Each plugin iteration returns an Outcome that is merged in once
package generator

// Action classifies what happened to one plugin's README.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// Outcome is the result of processing a single manifest entry.
type Outcome struct {
	Plugin   string
	Action   Action
	Path     string // README path, empty when the directory was not resolved
	Agents   int
	Skills   int
	Commands int
	Err      error // set when Action is ActionFailed
}

// RunStatistics holds aggregated counts for one generation run.
type RunStatistics struct {
	Total    int      // manifest entries
	Created  int      // READMEs written where none existed
	Updated  int      // READMEs overwritten
	Skipped  int      // exempt plugins left untouched
	Errors   []string // "<plugin>: <message>"
	Agents   int      // agents documented
	Skills   int      // skills documented
	Commands int      // commands documented
}

// Merge folds one plugin outcome into the statistics. Component counts are
// added whenever discovery ran, including for skipped plugins.
func (s *RunStatistics) Merge(o Outcome) {
	s.Agents += o.Agents
	s.Skills += o.Skills
	s.Commands += o.Commands

	switch o.Action {
	case ActionCreated:
		s.Created++
	case ActionUpdated:
		s.Updated++
	case ActionSkipped:
		s.Skipped++
	case ActionFailed:
		if o.Err != nil {
			s.Errors = append(s.Errors, o.Err.Error())
		}
	}
}

// Components returns the total number of components documented.
func (s *RunStatistics) Components() int {
	return s.Agents + s.Skills + s.Commands
}

// Coverage is the share of manifest entries whose README was written, in
// percent. A run without entries has zero coverage.
func (s *RunStatistics) Coverage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Created+s.Updated) / float64(s.Total) * 100
}

// Package projectplan implements the project-management phase: a task
// breakdown from features and threats, greedy sprint packing, critical
// path and buffer computation, team allocation, a risk register, and a
// Gantt chart rendered as mermaid markup.
package projectplan

import (
	"time"

	"github.com/c360studio/blueprint/generator/design"
	"github.com/c360studio/blueprint/generator/threatmodel"
)

// Input carries the phase inputs. Zero TeamSize or SprintWeeks fall back
// to the package defaults.
type Input struct {
	Features    []design.Feature
	Threats     []threatmodel.Threat
	TeamSize    int
	SprintWeeks int
	StartDate   time.Time
}

// Task is one unit of scheduled work.
type Task struct {
	ID        string
	Name      string
	FeatureID string // empty for threat-remediation tasks
	Hours     int
	Points    int
	DependsOn []string
	Role      string
}

// Sprint is one packing bucket with its date range.
type Sprint struct {
	Number   int
	Start    time.Time
	End      time.Time
	Capacity int // story points
	Points   int
	TaskIDs  []string
}

// Allocation summarizes one role's assigned work.
type Allocation struct {
	Role        string
	TaskIDs     []string
	Hours       int
	Utilization int // percent
}

// Risk is one register entry with a probability×impact score.
type Risk struct {
	ID          string
	Name        string
	Description string
	Probability string
	Impact      string
	Score       float64
	Mitigation  string
}

// Output is the phase result.
type Output struct {
	Tasks        []Task
	Sprints      []Sprint
	CriticalPath []string // task ids, root first
	DurationDays int
	BufferDays   int
	Allocations  []Allocation
	Risks        []Risk
	Gantt        string
}

// Planning constants.
const (
	defaultTeamSize       = 4
	defaultSprintWeeks    = 2
	velocityPerPersonWeek = 5 // story points
	hoursPerPoint         = 4
	workHoursPerDay       = 8
	workHoursPerWeek      = 40
	bufferFraction        = 0.15
)

// Plan runs the project-management phase.
func Plan(in Input) Output {
	if in.TeamSize <= 0 {
		in.TeamSize = defaultTeamSize
	}
	if in.SprintWeeks <= 0 {
		in.SprintWeeks = defaultSprintWeeks
	}
	if in.StartDate.IsZero() {
		in.StartDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	tasks := breakdown(in.Features, in.Threats)
	sprints := pack(tasks, in)
	path, duration, buffer := criticalPath(tasks)
	allocations := allocate(tasks, len(sprints), in.SprintWeeks)

	out := Output{
		Tasks:        tasks,
		Sprints:      sprints,
		CriticalPath: path,
		DurationDays: duration,
		BufferDays:   buffer,
		Allocations:  allocations,
	}
	out.Risks = register(in.Threats, allocations, buffer)
	out.Gantt = gantt(sprints, tasks)
	return out
}

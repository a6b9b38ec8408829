package projectplan

import (
	"math"
	"time"
)

// pack assigns tasks to sequential sprints greedily in task-list order.
// Tasks are NOT reordered by dependency: a task may land in an earlier
// sprint than something it depends on when the input order says so. This
// mirrors the documented packing behavior and keeps output reproducible.
func pack(tasks []Task, in Input) []Sprint {
	if len(tasks) == 0 {
		return nil
	}

	capacity := in.TeamSize * in.SprintWeeks * velocityPerPersonWeek
	if capacity <= 0 {
		capacity = velocityPerPersonWeek
	}
	sprintLength := time.Duration(in.SprintWeeks) * 7 * 24 * time.Hour

	var sprints []Sprint
	current := newSprint(1, in.StartDate, sprintLength, capacity)

	for _, t := range tasks {
		// Open the next sprint when this task does not fit; an oversized
		// task still occupies a sprint of its own rather than stalling.
		if current.Points > 0 && current.Points+t.Points > capacity {
			sprints = append(sprints, current)
			current = newSprint(current.Number+1, current.End, sprintLength, capacity)
		}
		current.Points += t.Points
		current.TaskIDs = append(current.TaskIDs, t.ID)
	}
	sprints = append(sprints, current)

	return sprints
}

func newSprint(number int, start time.Time, length time.Duration, capacity int) Sprint {
	return Sprint{
		Number:   number,
		Start:    start,
		End:      start.Add(length),
		Capacity: capacity,
	}
}

// criticalPath finds the longest dependency chain by estimated hours and
// converts it to working days plus a fixed slack buffer.
func criticalPath(tasks []Task) (path []string, durationDays, bufferDays int) {
	if len(tasks) == 0 {
		return nil, 0, 0
	}

	byID := make(map[string]Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	type chain struct {
		hours int
		path  []string
	}
	memo := make(map[string]chain, len(tasks))

	var longest func(id string, visiting map[string]bool) chain
	longest = func(id string, visiting map[string]bool) chain {
		if c, ok := memo[id]; ok {
			return c
		}
		t, ok := byID[id]
		if !ok || visiting[id] {
			return chain{}
		}
		visiting[id] = true
		best := chain{}
		for _, dep := range t.DependsOn {
			if c := longest(dep, visiting); c.hours > best.hours {
				best = c
			}
		}
		delete(visiting, id)

		result := chain{
			hours: best.hours + t.Hours,
			path:  append(append([]string(nil), best.path...), id),
		}
		memo[id] = result
		return result
	}

	best := chain{}
	for _, t := range tasks {
		if c := longest(t.ID, map[string]bool{}); c.hours > best.hours {
			best = c
		}
	}

	durationDays = int(math.Ceil(float64(best.hours) / workHoursPerDay))
	bufferDays = int(math.Ceil(float64(durationDays) * bufferFraction))
	return best.path, durationDays, bufferDays
}

// allocate groups assigned hours per role and computes utilization as
// assigned hours over the role's total working hours across all sprints.
// Zero sprints yields zero utilization rather than a division fault.
func allocate(tasks []Task, sprintCount, sprintWeeks int) []Allocation {
	order := []string{RoleTechLead, RoleBackend, RoleFrontend, RoleQA, RoleSecurity}
	byRole := make(map[string]*Allocation, len(order))
	for _, role := range order {
		byRole[role] = &Allocation{Role: role}
	}

	for _, t := range tasks {
		a, ok := byRole[t.Role]
		if !ok {
			a = &Allocation{Role: t.Role}
			byRole[t.Role] = a
			order = append(order, t.Role)
		}
		a.TaskIDs = append(a.TaskIDs, t.ID)
		a.Hours += t.Hours
	}

	available := sprintCount * sprintWeeks * workHoursPerWeek
	allocations := make([]Allocation, 0, len(order))
	for _, role := range order {
		a := byRole[role]
		if available > 0 {
			a.Utilization = int(math.Round(100 * float64(a.Hours) / float64(available)))
		}
		allocations = append(allocations, *a)
	}
	return allocations
}

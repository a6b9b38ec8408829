package projectplan

import (
	"fmt"
	"strings"
)

// gantt renders the sprint schedule as mermaid gantt markup. Tasks are
// laid out sequentially within their sprint; the markup is descriptive,
// not a simulation of actual calendars.
func gantt(sprints []Sprint, tasks []Task) string {
	byID := make(map[string]Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var b strings.Builder
	b.WriteString("gantt\n")
	b.WriteString("    dateFormat YYYY-MM-DD\n")
	b.WriteString("    title Delivery Schedule\n")

	for _, s := range sprints {
		fmt.Fprintf(&b, "    section Sprint %d\n", s.Number)
		cursor := s.Start
		for _, id := range s.TaskIDs {
			t, ok := byID[id]
			if !ok {
				continue
			}
			days := (t.Hours + workHoursPerDay - 1) / workHoursPerDay
			if days == 0 {
				days = 1
			}
			fmt.Fprintf(&b, "    %s (%s) :%s, %s, %dd\n",
				sanitizeGantt(t.Name), t.ID, strings.ToLower(t.ID), cursor.Format("2006-01-02"), days)
			cursor = cursor.AddDate(0, 0, days)
		}
	}

	return b.String()
}

// sanitizeGantt strips characters mermaid treats as syntax.
func sanitizeGantt(s string) string {
	return strings.NewReplacer(":", "", ",", "", "#", "").Replace(s)
}

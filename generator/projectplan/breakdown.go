package projectplan

import (
	"fmt"

	"github.com/c360studio/blueprint/generator/design"
	"github.com/c360studio/blueprint/generator/genid"
	"github.com/c360studio/blueprint/generator/threatmodel"
)

// Team roles. Tasks are matched to roles by kind, then round-robin over
// the delivery roles.
const (
	RoleTechLead = "Tech Lead"
	RoleBackend  = "Backend Engineer"
	RoleFrontend = "Frontend Engineer"
	RoleQA       = "QA Engineer"
	RoleSecurity = "Security Engineer"
)

var deliveryRoles = []string{RoleTechLead, RoleBackend, RoleFrontend}

// priorityHours fixes the estimated implementation hours per feature
// priority.
var priorityHours = map[design.Priority]int{
	design.PriorityP0: 40,
	design.PriorityP1: 24,
	design.PriorityP2: 16,
	design.PriorityP3: 8,
}

// breakdown flattens features and critical/high threats into tasks in
// input order. P0 and P1 features carry a separate verification task;
// lower priorities get a single combined task. Feature dependencies are
// translated to dependencies on the corresponding implementation tasks.
func breakdown(features []design.Feature, threats []threatmodel.Threat) []Task {
	ids := genid.NewSequence("TASK")
	var tasks []Task
	rr := 0 // round-robin cursor over delivery roles

	implTaskByFeature := make(map[string]string, len(features))

	for _, f := range features {
		hours := priorityHours[f.Priority]
		if hours == 0 {
			hours = priorityHours[design.PriorityP3]
		}

		impl := Task{
			ID:        ids.Next(),
			Name:      fmt.Sprintf("Implement %s", f.Name),
			FeatureID: f.ID,
			Hours:     hours,
			Points:    points(hours),
			Role:      deliveryRoles[rr%len(deliveryRoles)],
		}
		rr++
		for _, dep := range f.DependsOn {
			if taskID, ok := implTaskByFeature[dep]; ok {
				impl.DependsOn = append(impl.DependsOn, taskID)
			}
		}
		implTaskByFeature[f.ID] = impl.ID
		tasks = append(tasks, impl)

		if f.Priority == design.PriorityP0 || f.Priority == design.PriorityP1 {
			verifyHours := hours / 4
			if verifyHours == 0 {
				verifyHours = 2
			}
			tasks = append(tasks, Task{
				ID:        ids.Next(),
				Name:      fmt.Sprintf("Verify %s", f.Name),
				FeatureID: f.ID,
				Hours:     verifyHours,
				Points:    points(verifyHours),
				DependsOn: []string{impl.ID},
				Role:      RoleQA,
			})
		}
	}

	for _, t := range threats {
		bucket := threatmodel.Bucket(t.Score)
		if bucket != threatmodel.LevelCritical && bucket != threatmodel.LevelHigh {
			continue
		}
		tasks = append(tasks, Task{
			ID:     ids.Next(),
			Name:   fmt.Sprintf("Mitigate %s", t.Name),
			Hours:  16,
			Points: points(16),
			Role:   RoleSecurity,
		})
	}

	return tasks
}

func points(hours int) int {
	p := (hours + hoursPerPoint - 1) / hoursPerPoint
	if p == 0 {
		p = 1
	}
	return p
}

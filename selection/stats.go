package selection

// CandidateStats aggregates one candidate's applications across a
// lecturer's assigned courses.
type CandidateStats struct {
	UserID                 uint   `json:"user_id"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	TimesSelected          int    `json:"times_selected"`
	TotalApplications      int    `json:"total_applications"`
	UnselectedApplications int    `json:"unselected_applications"`
}

// LecturerStats groups the applications in the lecturer's courses by
// candidate, counting selected and unselected applications. Candidates
// appear in first-application order.
func (e *Engine) LecturerStats(lecturerID uint) ([]CandidateStats, error) {
	courseIDs, err := e.stores.Assignments.CourseIDsForLecturer(lecturerID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []CandidateStats{}, nil
	}

	apps, err := e.stores.Apps.ApplicationsInCourses(courseIDs)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint]*CandidateStats)
	var order []uint
	for _, app := range apps {
		stats, ok := byUser[app.UserID]
		if !ok {
			stats = &CandidateStats{
				UserID: app.UserID,
				Name:   app.User.Name,
				Email:  app.User.Email,
			}
			byUser[app.UserID] = stats
			order = append(order, app.UserID)
		}

		stats.TotalApplications++
		if app.IsSelected {
			stats.TimesSelected++
		} else {
			stats.UnselectedApplications++
		}
	}

	result := make([]CandidateStats, 0, len(order))
	for _, id := range order {
		result = append(result, *byUser[id])
	}
	return result, nil
}

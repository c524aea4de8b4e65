// Package selection implements the application review workflow: submitting
// tutor applications, toggling per-lecturer selection, assigning ranks and
// comments, withdrawal and per-lecturer statistics. It owns the consistency
// rules between an application's is_selected flag, its rank and the
// selected_candidates join table.
package selection

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"teachteam/models"
)

type Engine struct {
	stores Stores
	log    *zap.Logger
}

func NewEngine(stores Stores, log *zap.Logger) *Engine {
	return &Engine{stores: stores, log: log}
}

// UpdateRequest is a partial update from a lecturer review action. Nil
// fields are left untouched.
type UpdateRequest struct {
	IsSelected *bool
	Rank       *int
	Comment    *string
}

// Update applies a lecturer's partial update to an application. The three
// fields are applied in a fixed order: selection toggle, then rank, then
// comment, so the rank-uniqueness check runs against the just-updated
// selection state.
//
// Selection writes to the selected_candidates table commit immediately,
// while the application row itself is saved once at the end. A rank
// conflict therefore aborts the request after any join-table change has
// already landed; callers see that partial commit, matching the documented
// failure mode.
func (e *Engine) Update(appID, lecturerID uint, req UpdateRequest) (*models.TutorApplication, error) {
	app, err := e.stores.Apps.FindApplicationByID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if req.IsSelected != nil {
		app.IsSelected = *req.IsSelected

		if *req.IsSelected {
			if err := e.recordSelection(app, lecturerID); err != nil {
				return nil, err
			}
		} else {
			// Deselect only removes this lecturer's own record.
			if err := e.stores.Selected.DeleteSelection(app.ID, lecturerID); err != nil {
				return nil, err
			}
		}
	}

	if req.Rank != nil {
		if lecturerID != 0 {
			conflict, err := e.findRankConflict(app.ID, lecturerID, *req.Rank)
			if err != nil {
				return nil, err
			}
			if conflict != nil {
				return nil, &DuplicateRankError{Rank: *req.Rank, CandidateName: conflict.User.Name}
			}
		}
		app.Rank = req.Rank
	}

	if req.Comment != nil {
		app.Comment = *req.Comment
	}

	if err := e.stores.Apps.SaveApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

// recordSelection ensures exactly one selected_candidates row exists for
// (application, lecturer). Re-selecting by the same lecturer is a no-op.
func (e *Engine) recordSelection(app *models.TutorApplication, lecturerID uint) error {
	_, err := e.stores.Selected.FindSelection(app.ID, lecturerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	lecturer, err := e.stores.Users.FindUserByID(lecturerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLecturerNotFound
		}
		return err
	}

	sc := &models.SelectedCandidate{
		ApplicationID: app.ID,
		SelectedByID:  lecturer.ID,
	}
	if err := e.stores.Selected.CreateSelection(sc); err != nil {
		return err
	}

	e.log.Info("candidate selected",
		zap.Uint("application_id", app.ID),
		zap.Uint("lecturer_id", lecturerID),
	)
	return nil
}

// findRankConflict looks for another selected application holding the same
// rank within the courses currently assigned to the lecturer. The scope is
// recomputed on every call, never cached: two lecturers with disjoint
// courses may reuse the same rank freely.
func (e *Engine) findRankConflict(appID, lecturerID uint, rank int) (*models.TutorApplication, error) {
	courseIDs, err := e.stores.Assignments.CourseIDsForLecturer(lecturerID)
	if err != nil {
		return nil, err
	}

	conflict, err := e.stores.Apps.FindSelectedByRank(courseIDs, rank, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return conflict, nil
}

// Withdraw removes an application. Any selected_candidates rows pointing at
// it are removed by the cascade on the join table.
func (e *Engine) Withdraw(appID uint) error {
	app, err := e.stores.Apps.FindApplicationByID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}

	if err := e.stores.Apps.DeleteApplication(app); err != nil {
		return err
	}

	e.log.Info("application withdrawn", zap.Uint("application_id", appID))
	return nil
}

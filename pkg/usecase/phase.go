package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
)

// PhaseSchedule is a phase placed on the project timeline. Weeks are counted
// from the project start; Min is the optimistic and Max the pessimistic
// estimate.
type PhaseSchedule struct {
	Phase    model.Phase `json:"phase"`
	StartMin int         `json:"start_min_weeks"`
	StartMax int         `json:"start_max_weeks"`
	EndMin   int         `json:"end_min_weeks"`
	EndMax   int         `json:"end_max_weeks"`
}

// PhasePlan is the whole implementation timeline in dependency order
type PhasePlan struct {
	Phases   []PhaseSchedule `json:"phases"`
	TotalMin int             `json:"total_min_weeks"`
	TotalMax int             `json:"total_max_weeks"`
}

type PhaseUseCase struct {
	phases []model.Phase
}

func NewPhaseUseCase(phases []model.Phase) *PhaseUseCase {
	return &PhaseUseCase{phases: phases}
}

// List returns the phases in catalog order
func (uc *PhaseUseCase) List(ctx context.Context) []model.Phase {
	return uc.phases
}

// Get returns the phase with the given ID
func (uc *PhaseUseCase) Get(ctx context.Context, id string) (*model.Phase, bool) {
	for i := range uc.phases {
		if uc.phases[i].ID == id {
			return &uc.phases[i], true
		}
	}
	return nil, false
}

// Plan orders the phases so that every phase follows its dependencies and
// schedules each one to start when its last dependency ends
func (uc *PhaseUseCase) Plan(ctx context.Context) (*PhasePlan, error) {
	byID := make(map[string]*model.Phase, len(uc.phases))
	for i := range uc.phases {
		byID[uc.phases[i].ID] = &uc.phases[i]
	}

	plan := &PhasePlan{Phases: make([]PhaseSchedule, 0, len(uc.phases))}
	scheduled := make(map[string]*PhaseSchedule, len(uc.phases))
	visiting := make(map[string]bool)

	var schedule func(p *model.Phase) (*PhaseSchedule, error)
	schedule = func(p *model.Phase) (*PhaseSchedule, error) {
		if s, ok := scheduled[p.ID]; ok {
			return s, nil
		}
		if visiting[p.ID] {
			return nil, goerr.Wrap(ErrInvalidPhasePlan, "dependency cycle", goerr.V(PhaseIDKey, p.ID))
		}
		visiting[p.ID] = true

		var startMin, startMax int
		for _, depID := range p.Dependencies {
			dep, ok := byID[depID]
			if !ok {
				return nil, goerr.Wrap(ErrInvalidPhasePlan, "dependency on undefined phase",
					goerr.V(PhaseIDKey, p.ID),
					goerr.V("dependency", depID))
			}
			ds, err := schedule(dep)
			if err != nil {
				return nil, err
			}
			startMin = max(startMin, ds.EndMin)
			startMax = max(startMax, ds.EndMax)
		}

		minWeeks, maxWeeks, err := p.Weeks()
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidPhasePlan, err.Error(), goerr.V(PhaseIDKey, p.ID))
		}

		plan.Phases = append(plan.Phases, PhaseSchedule{
			Phase:    *p,
			StartMin: startMin,
			StartMax: startMax,
			EndMin:   startMin + minWeeks,
			EndMax:   startMax + maxWeeks,
		})
		s := &plan.Phases[len(plan.Phases)-1]
		scheduled[p.ID] = s
		plan.TotalMin = max(plan.TotalMin, s.EndMin)
		plan.TotalMax = max(plan.TotalMax, s.EndMax)
		return s, nil
	}

	for i := range uc.phases {
		if _, err := schedule(&uc.phases[i]); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

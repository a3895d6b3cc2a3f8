package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	goals repository.GoalRepo
	uow   db.UnitOfWork
	opts  options
}

func NewGoalService(goals repository.GoalRepo, uow db.UnitOfWork, opts ...Option) GoalService {
	return &goalService{goals: goals, uow: uow, opts: buildOptions(opts)}
}

func (s *goalService) Add(ctx context.Context, g *domain.Goal) (err error) {
	uc := startUseCase(s.opts.observer, "add-goal", map[string]any{"type": string(g.Type)})
	defer func() { uc.done(ctx, err) }()

	now := s.opts.now()
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.StartDate.IsZero() {
		g.StartDate = domain.Day(now)
	}
	g.CreatedAt = now
	g.UpdatedAt = now
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.goals.Create(ctx, g)
}

func (s *goalService) List(ctx context.Context) ([]GoalView, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.opts.now()
	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, newGoalView(g, now))
	}
	return views, nil
}

func (s *goalService) UpdateProgress(ctx context.Context, idPrefix string, current float64) (view *GoalView, err error) {
	uc := startUseCase(s.opts.observer, "update-goal", map[string]any{"id": idPrefix})
	defer func() { uc.done(ctx, err) }()

	now := s.opts.now()
	var goal *domain.Goal
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteGoalRepo(tx)
		id, err := repo.ResolveID(ctx, idPrefix)
		if err != nil {
			return err
		}
		if goal, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := goal.ApplyProgress(current, now); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return repo.Update(ctx, goal)
	})
	if err != nil {
		return nil, err
	}
	v := newGoalView(goal, now)
	uc.fields["status"] = string(v.Status)
	return &v, nil
}

func (s *goalService) Remove(ctx context.Context, idPrefix string) (*domain.Goal, error) {
	var goal *domain.Goal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteGoalRepo(tx)
		id, err := repo.ResolveID(ctx, idPrefix)
		if err != nil {
			return err
		}
		if goal, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func newGoalView(g *domain.Goal, now time.Time) GoalView {
	v := GoalView{
		Goal:     g,
		Status:   g.Status(now),
		Progress: g.ProgressPct(),
		TimeUsed: g.TimeElapsedPct(now),
	}
	if g.Deadline != nil {
		left := int(math.Ceil(g.Deadline.Sub(domain.Day(now)).Hours() / 24))
		v.DaysLeft = &left
	}
	return v
}

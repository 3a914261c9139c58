package processstep

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	pserrors "go-crm/internal/processstep/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=processstep_service.go -destination=mock/processstep_service_mock.go -package=mock
type Service interface {
	CreateGroup(ctx context.Context, req CreateGroupRequest) ([]StepResponse, error)
	GetGrouped(ctx context.Context) ([]GroupResponse, error)
	ReplaceGroup(ctx context.Context, stepType string, req ReplaceGroupRequest) ([]StepResponse, error)
	DeleteGroup(ctx context.Context, stepType string) error
	DeleteStep(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("processstep.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("processstep.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// buildGroup numbers inputs 1..N in submission order.
func buildGroup(stepType string, inputs []StepInput) []Step {
	steps := make([]Step, 0, len(inputs))
	for i, in := range inputs {
		status := in.Status
		if status == "" {
			status = StatusPending
		}
		steps = append(steps, Step{
			StepType:    stepType,
			StepName:    in.StepName,
			URL:         in.URL,
			Description: in.Description,
			Status:      status,
			Order:       i + 1,
		})
	}
	return steps
}

func (s *service) CreateGroup(ctx context.Context, req CreateGroupRequest) ([]StepResponse, error) {
	stepType := strings.TrimSpace(req.StepType)
	s.logger.Debug("create step group requested", zap.String("step_type", stepType), zap.Int("steps", len(req.Steps)))

	n, err := s.repo.CountByType(ctx, stepType)
	if err != nil {
		s.logger.Error("count step group failed", zap.String("step_type", stepType), zap.Error(err))
		return nil, err
	}
	if n > 0 {
		s.logger.Warn("create step group rejected, already exists", zap.String("step_type", stepType))
		return nil, pserrors.ErrGroupExists.WithMessage(
			fmt.Sprintf("Step Type %q already exists. Please use PUT to update.", stepType))
	}
	if len(req.Steps) == 0 {
		return nil, pserrors.ErrStepsRequired
	}

	steps := buildGroup(stepType, req.Steps)
	if err := s.repo.CreateMany(ctx, steps); err != nil {
		s.logger.Error("create step group failed", zap.String("step_type", stepType), zap.Error(err))
		return nil, err
	}

	s.logger.Info("create step group success", zap.String("step_type", stepType), zap.Int("steps", len(steps)))
	return mapToListResponse(steps), nil
}

// GetGrouped returns template groups sorted by step type, each in step order.
func (s *service) GetGrouped(ctx context.Context) ([]GroupResponse, error) {
	steps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list steps failed", zap.Error(err))
		return nil, err
	}

	groups := make([]GroupResponse, 0)
	for _, st := range steps {
		if len(groups) == 0 || groups[len(groups)-1].StepType != st.StepType {
			groups = append(groups, GroupResponse{StepType: st.StepType, Steps: []StepResponse{}})
		}
		last := &groups[len(groups)-1]
		last.Steps = append(last.Steps, mapToResponse(st))
	}
	return groups, nil
}

// ReplaceGroup drops every step of stepType and inserts the new list. Step ids
// are regenerated.
func (s *service) ReplaceGroup(ctx context.Context, stepType string, req ReplaceGroupRequest) ([]StepResponse, error) {
	if len(req.Steps) == 0 {
		return nil, pserrors.ErrStepsRequired.WithMessage("Steps array is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	removed, err := qtx.DeleteByType(ctx, stepType)
	if err != nil {
		s.logger.Error("clear step group failed", zap.String("step_type", stepType), zap.Error(err))
		return nil, err
	}

	steps := buildGroup(stepType, req.Steps)
	if err := qtx.CreateMany(ctx, steps); err != nil {
		s.logger.Error("insert step group failed", zap.String("step_type", stepType), zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("replace step group success",
		zap.String("step_type", stepType),
		zap.Int64("removed", removed),
		zap.Int("inserted", len(steps)),
	)
	return mapToListResponse(steps), nil
}

func (s *service) DeleteGroup(ctx context.Context, stepType string) error {
	n, err := s.repo.DeleteByType(ctx, stepType)
	if err != nil {
		s.logger.Error("delete step group failed", zap.String("step_type", stepType), zap.Error(err))
		return err
	}
	if n == 0 {
		return pserrors.ErrGroupNotFound.WithMessage(fmt.Sprintf("Step Group '%s' not found.", stepType))
	}
	s.logger.Info("delete step group success", zap.String("step_type", stepType), zap.Int64("removed", n))
	return nil
}

func (s *service) DeleteStep(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return pserrors.ErrInvalidStepID
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pserrors.ErrStepNotFound
		}
		s.logger.Error("delete step failed", zap.String("step_id", id), zap.Error(err))
		return err
	}
	return nil
}

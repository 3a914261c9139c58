package quotation

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-crm/internal/pricing"
	quotationerrors "go-crm/internal/quotation/errors"
	"go-crm/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=quotation_service.go -destination=mock/quotation_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]QuotationResponse, error)
	GetByID(ctx context.Context, id string) (QuotationResponse, error)
	GetByBusiness(ctx context.Context, businessAccountID string) ([]QuotationResponse, error)
	GetCustomers(ctx context.Context) ([]CustomerResponse, error)
	Create(ctx context.Context, req CreateQuotationRequest, createdBy string) (QuotationResponse, error)
	Update(ctx context.Context, id string, req UpdateQuotationRequest) (QuotationResponse, error)
	Delete(ctx context.Context, id string) error
	GetFollowUps(ctx context.Context, id string) ([]FollowUpResponse, error)
	AddFollowUp(ctx context.Context, id string, req FollowUpRequest, addedBy string) ([]FollowUpResponse, error)
	UpdateFollowUp(ctx context.Context, id, followUpID string, req FollowUpRequest) ([]FollowUpResponse, error)
	DeleteFollowUp(ctx context.Context, id, followUpID string) ([]FollowUpResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("quotation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("quotation.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return quotationerrors.ErrQuotationNotFound
	}
	return err
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return quotationerrors.ErrInvalidQuotationID
	}
	return nil
}

func optionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, quotationerrors.ErrInvalidReference
	}
	return &id, nil
}

func lineItems(reqs []LineItemRequest) ([]LineItem, error) {
	items := make([]LineItem, 0, len(reqs))
	for _, r := range reqs {
		if strings.TrimSpace(r.Description) == "" || r.Quantity <= 0 || r.UnitPrice < 0 {
			return nil, quotationerrors.ErrInvalidLineItem
		}
		items = append(items, LineItem{Description: strings.TrimSpace(r.Description), Quantity: r.Quantity, UnitPrice: r.UnitPrice})
	}
	return items, nil
}

// price sets Subtotal, the effective GSTRate and the rounded Total from the
// current line items.
func price(q *Quotation) {
	subtotal := decimal.Zero
	for _, it := range q.Items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice)))
	}
	q.Subtotal = subtotal.Round(2).InexactFloat64()
	q.GSTRate = pricing.EffectiveGSTRate(q.GSTRate)
	q.Total = pricing.WithGST(q.Subtotal, q.GSTRate)
}

func isDuplicateNumber(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapList(quotations []Quotation) []QuotationResponse {
	res := make([]QuotationResponse, 0, len(quotations))
	for i := range quotations {
		res = append(res, mapToResponse(&quotations[i]))
	}
	return res
}

func (s *service) GetAll(ctx context.Context) ([]QuotationResponse, error) {
	quotations, err := s.repo.List(ctx, "")
	if err != nil {
		s.logger.Error("list quotations failed", zap.Error(err))
		return nil, err
	}
	return mapList(quotations), nil
}

func (s *service) GetByID(ctx context.Context, id string) (QuotationResponse, error) {
	if err := parseID(id); err != nil {
		return QuotationResponse{}, err
	}
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return QuotationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(q), nil
}

func (s *service) GetByBusiness(ctx context.Context, businessAccountID string) ([]QuotationResponse, error) {
	if _, err := uuid.Parse(businessAccountID); err != nil {
		return nil, quotationerrors.ErrInvalidReference
	}
	quotations, err := s.repo.List(ctx, businessAccountID)
	if err != nil {
		s.logger.Error("list business quotations failed", zap.String("business_account_id", businessAccountID), zap.Error(err))
		return nil, err
	}
	return mapList(quotations), nil
}

func (s *service) GetCustomers(ctx context.Context) ([]CustomerResponse, error) {
	refs, err := s.repo.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("list customer businesses failed", zap.Error(err))
		return nil, err
	}
	return mapCustomers(refs), nil
}

// Create numbers the quotation Q-0001, Q-0002, ... on the same transaction
// that inserts it.
func (s *service) Create(ctx context.Context, req CreateQuotationRequest, createdBy string) (QuotationResponse, error) {
	s.logger.Debug("create quotation requested", zap.String("business_account_id", req.BusinessAccountID))

	businessID, err := optionalID(req.BusinessAccountID)
	if err != nil {
		return QuotationResponse{}, err
	}
	serviceID, err := optionalID(req.ServiceID)
	if err != nil {
		return QuotationResponse{}, err
	}
	items, err := lineItems(req.Items)
	if err != nil {
		return QuotationResponse{}, err
	}
	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	if !IsValidStatus(status) {
		s.logger.Warn("create quotation rejected: invalid status", zap.String("status", status))
		return QuotationResponse{}, quotationerrors.ErrInvalidStatus
	}

	q := &Quotation{
		ID:                uuid.New(),
		BusinessAccountID: businessID,
		ServiceID:         serviceID,
		Title:             strings.TrimSpace(req.Title),
		Items:             items,
		GSTRate:           req.GSTRate,
		Status:            status,
		ValidUntil:        req.ValidUntil,
		Notes:             req.Notes,
		CreatedBy:         optionalUUID(createdBy),
	}
	price(q)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return QuotationResponse{}, err
	}
	defer tx.Rollback()

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, NumberCounter)
	if err != nil {
		s.logger.Error("quotation number allocation failed", zap.Error(err))
		return QuotationResponse{}, err
	}
	q.Number = counter.Format(NumberPrefix, numberWidth, seq)

	if err := s.repo.WithTx(tx).Create(ctx, q); err != nil {
		if isDuplicateNumber(err) {
			s.logger.Warn("create quotation conflict", zap.String("number", q.Number))
			return QuotationResponse{}, quotationerrors.ErrDuplicateNumber
		}
		s.logger.Error("create quotation failed", zap.Error(err))
		return QuotationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.Error(err))
		return QuotationResponse{}, err
	}

	s.logger.Info("create quotation success", zap.String("quotation_id", q.ID.String()), zap.String("number", q.Number))
	return s.GetByID(ctx, q.ID.String())
}

// Update never renumbers a quotation.
func (s *service) Update(ctx context.Context, id string, req UpdateQuotationRequest) (QuotationResponse, error) {
	if err := parseID(id); err != nil {
		return QuotationResponse{}, err
	}
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return QuotationResponse{}, mapRepositoryError(err)
	}

	if req.Title != nil {
		q.Title = strings.TrimSpace(*req.Title)
	}
	if req.BusinessAccountID != nil {
		if q.BusinessAccountID, err = optionalID(*req.BusinessAccountID); err != nil {
			return QuotationResponse{}, err
		}
		q.Business = nil
	}
	if req.ServiceID != nil {
		if q.ServiceID, err = optionalID(*req.ServiceID); err != nil {
			return QuotationResponse{}, err
		}
		q.Service = nil
	}
	if req.Items != nil {
		if q.Items, err = lineItems(*req.Items); err != nil {
			return QuotationResponse{}, err
		}
	}
	if req.GSTRate != nil {
		q.GSTRate = *req.GSTRate
	}
	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return QuotationResponse{}, quotationerrors.ErrInvalidStatus
		}
		q.Status = *req.Status
	}
	if req.ValidUntil != nil {
		q.ValidUntil = req.ValidUntil
	}
	if req.Notes != nil {
		q.Notes = *req.Notes
	}
	price(q)

	if err := s.repo.Update(ctx, q); err != nil {
		s.logger.Error("update quotation failed", zap.String("quotation_id", id), zap.Error(err))
		return QuotationResponse{}, err
	}

	s.logger.Info("update quotation success", zap.String("quotation_id", id))
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quotationerrors.ErrQuotationNotFound
		}
		s.logger.Error("delete quotation failed", zap.String("quotation_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("delete quotation success", zap.String("quotation_id", id))
	return nil
}

func optionalUUID(raw string) *uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func followUpStatus(status string) (string, error) {
	switch status {
	case "":
		return FollowUpPending, nil
	case FollowUpPending, FollowUpCompleted:
		return status, nil
	}
	return "", quotationerrors.ErrInvalidFollowUpStatus
}

func (s *service) GetFollowUps(ctx context.Context, id string) ([]FollowUpResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.followUps(ctx, id)
}

func (s *service) AddFollowUp(ctx context.Context, id string, req FollowUpRequest, addedBy string) ([]FollowUpResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	status, err := followUpStatus(req.Status)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	f := &FollowUp{
		QuotationID: q.ID,
		Date:        req.Date,
		Note:        req.Note,
		AddedBy:     optionalUUID(addedBy),
		Status:      status,
	}
	if err := s.repo.CreateFollowUp(ctx, f); err != nil {
		s.logger.Error("add follow-up failed", zap.String("quotation_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("add follow-up success", zap.String("quotation_id", id), zap.String("follow_up_id", f.ID.String()))
	return s.followUps(ctx, id)
}

func (s *service) UpdateFollowUp(ctx context.Context, id, followUpID string, req FollowUpRequest) ([]FollowUpResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(followUpID); err != nil {
		return nil, quotationerrors.ErrFollowUpNotFound
	}
	status, err := followUpStatus(req.Status)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.FindFollowUp(ctx, id, followUpID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quotationerrors.ErrFollowUpNotFound
		}
		return nil, err
	}

	f.Date = req.Date
	f.Note = req.Note
	f.Status = status
	if err := s.repo.UpdateFollowUp(ctx, f); err != nil {
		s.logger.Error("update follow-up failed", zap.String("follow_up_id", followUpID), zap.Error(err))
		return nil, err
	}
	return s.followUps(ctx, id)
}

func (s *service) DeleteFollowUp(ctx context.Context, id, followUpID string) ([]FollowUpResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(followUpID); err != nil {
		return nil, quotationerrors.ErrFollowUpNotFound
	}

	if err := s.repo.DeleteFollowUp(ctx, id, followUpID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quotationerrors.ErrFollowUpNotFound
		}
		s.logger.Error("delete follow-up failed", zap.String("follow_up_id", followUpID), zap.Error(err))
		return nil, err
	}
	return s.followUps(ctx, id)
}

func (s *service) followUps(ctx context.Context, id string) ([]FollowUpResponse, error) {
	followUps, err := s.repo.ListFollowUps(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapFollowUps(followUps), nil
}

package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	accounterrors "go-crm/internal/account/errors"
	"go-crm/internal/brandservice"
	"go-crm/internal/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const roleEmployee = "Employee"

// ServiceCatalog resolves the brand service an account is priced against.
type ServiceCatalog interface {
	FindByID(ctx context.Context, id string) (*brandservice.BrandService, error)
}

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]AccountResponse, error)
	GetPaginated(ctx context.Context, q ListQuery) ([]AccountResponse, int64, error)
	GetCounts(ctx context.Context, userID, role string) (CountsResponse, error)
	GetByStatus(ctx context.Context, status string) ([]AccountResponse, error)
	GetLeadsBySource(ctx context.Context, sourceType string) ([]AccountResponse, error)
	GetByID(ctx context.Context, id string) (AccountResponse, error)
	Create(ctx context.Context, req CreateAccountRequest, ownerID string) (AccountResponse, error)
	Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, id string) (AccountResponse, error)
	BulkUpdateStatus(ctx context.Context, req BulkStatusRequest) (int64, error)
	AddNote(ctx context.Context, id string, req AddNoteRequest, author string) ([]NoteResponse, error)
	GetFollowUps(ctx context.Context, id string) ([]FollowUpResponse, error)
	AddFollowUp(ctx context.Context, id string, req FollowUpRequest, addedBy string) ([]FollowUpResponse, error)
	UpdateFollowUp(ctx context.Context, id, followUpID string, req FollowUpRequest) ([]FollowUpResponse, error)
	DeleteFollowUp(ctx context.Context, id, followUpID string) ([]FollowUpResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	catalog ServiceCatalog
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, catalog ServiceCatalog, logger ...*zap.Logger) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	return &service{db: db, repo: repo, catalog: catalog, now: time.Now, logger: l}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return accounterrors.ErrAccountNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return accounterrors.ErrDuplicateBusinessName
	}
	return err
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return accounterrors.ErrInvalidAccountID
	}
	return nil
}

func (s *service) list(ctx context.Context, f Filter) ([]AccountResponse, int64, error) {
	accounts, total, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("list accounts failed", zap.Error(err))
		return nil, 0, err
	}
	res := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		res = append(res, mapToResponse(&accounts[i]))
	}
	return res, total, nil
}

func (s *service) GetAll(ctx context.Context) ([]AccountResponse, error) {
	res, _, err := s.list(ctx, Filter{})
	return res, err
}

// GetPaginated lists one page. Employees only ever see accounts assigned to them.
func (s *service) GetPaginated(ctx context.Context, q ListQuery) ([]AccountResponse, int64, error) {
	s.logger.Debug("paginated accounts requested",
		zap.Int("page", q.Page),
		zap.Int("page_size", q.PageSize),
		zap.String("status", q.Status),
	)

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	f := Filter{
		Search:    strings.TrimSpace(q.Search),
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     q.PageSize,
		Offset:    (q.Page - 1) * q.PageSize,
	}
	if q.Status != "" && q.Status != "all" {
		f.Status = q.Status
	}
	if q.Role == roleEmployee && q.UserID != "" {
		f.AssignedTo = q.UserID
	}

	return s.list(ctx, f)
}

func (s *service) GetCounts(ctx context.Context, userID, role string) (CountsResponse, error) {
	var assignedTo string
	if role == roleEmployee && userID != "" {
		assignedTo = userID
	}

	counts, err := s.repo.CountByStatus(ctx, assignedTo)
	if err != nil {
		s.logger.Error("count accounts failed", zap.Error(err))
		return CountsResponse{}, err
	}

	var all int64
	for _, n := range counts {
		all += n
	}
	return CountsResponse{
		All:         all,
		Active:      counts[StatusActive],
		Pipeline:    counts[StatusPipeline],
		Quotations:  counts[StatusQuotations],
		Customers:   counts[StatusCustomer],
		Closed:      counts[StatusClosed],
		TargetLeads: counts[StatusTargetLeads],
	}, nil
}

func (s *service) GetByStatus(ctx context.Context, status string) ([]AccountResponse, error) {
	if !IsValidStatus(status) {
		return nil, accounterrors.ErrInvalidStatus
	}
	res, _, err := s.list(ctx, Filter{Status: status})
	return res, err
}

// GetLeadsBySource lists non-customer accounts from one source.
func (s *service) GetLeadsBySource(ctx context.Context, sourceType string) ([]AccountResponse, error) {
	res, _, err := s.list(ctx, Filter{SourceType: sourceType, NotStatus: StatusCustomer})
	return res, err
}

func (s *service) GetByID(ctx context.Context, id string) (AccountResponse, error) {
	if err := parseID(id); err != nil {
		return AccountResponse{}, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get account failed", zap.String("account_id", id), zap.Error(err))
		}
		return AccountResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(a), nil
}

func (s *service) duplicateError(existing *Account) error {
	details := DuplicateDetails{ExistingAccount: existing.ID.String()}
	if existing.Assignee == nil {
		return accounterrors.ErrDuplicateBusinessName.WithDetails(details)
	}
	details.AssignedTo = mapMember(existing.Assignee)
	return accounterrors.ErrDuplicateBusinessName.
		WithMessage(fmt.Sprintf(
			"An account with this business name already exists. It is currently assigned to %s.",
			existing.Assignee.Name,
		)).
		WithDetails(details)
}

// price stamps gstRate and totalPrice from the selected service. Accounts without
// a service keep their stored values.
func (s *service) price(ctx context.Context, a *Account) error {
	if a.SelectedServiceID == nil {
		return nil
	}
	svc, err := s.catalog.FindByID(ctx, a.SelectedServiceID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounterrors.ErrServiceNotFound
		}
		return err
	}

	var planID string
	if a.SelectedPlanID != nil {
		planID = a.SelectedPlanID.String()
	}
	quote := pricing.Compute(svc.Pricing(), planID, a.BillingCycle)
	a.GSTRate = quote.GSTRate
	a.TotalPrice = quote.Total
	return nil
}

func validateAccount(a *Account) error {
	if !IsValidStatus(a.Status) {
		return accounterrors.ErrInvalidStatus
	}
	if !pricing.IsValidCycle(a.BillingCycle) {
		return accounterrors.ErrInvalidBillingCycle
	}
	for _, t := range a.TypeOfLead {
		if !IsValidLeadType(t) {
			return accounterrors.ErrInvalidLeadType
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateAccountRequest, ownerID string) (AccountResponse, error) {
	s.logger.Debug("create account requested", zap.String("business_name", req.BusinessName))

	name := strings.TrimSpace(req.BusinessName)
	existing, err := s.repo.FindByBusinessName(ctx, name)
	switch {
	case err == nil:
		s.logger.Warn("create account rejected, duplicate name", zap.String("existing_id", existing.ID.String()))
		return AccountResponse{}, s.duplicateError(existing)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("duplicate lookup failed", zap.Error(err))
		return AccountResponse{}, err
	}

	a := &Account{
		BusinessName:      name,
		OwnerID:           optionalUUID(ownerID),
		SelectedUserID:    optionalUUID(req.SelectedUserID),
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		ContactNumber:     req.ContactNumber,
		GSTNumber:         req.GSTNumber,
		AddressLine1:      req.AddressLine1,
		AddressLine2:      req.AddressLine2,
		City:              req.City,
		State:             req.State,
		Country:           req.Country,
		Pincode:           req.Pincode,
		Website:           req.Website,
		TypeOfLead:        req.TypeOfLead,
		Status:            req.Status,
		SourceType:        req.SourceType,
		AssignedTo:        optionalUUID(req.AssignedTo),
		SelectedServiceID: optionalUUID(req.SelectedServiceID),
		SelectedPlanID:    optionalUUID(req.SelectedPlanID),
		BillingCycle:      req.BillingCycle,
		GSTRate:           pricing.DefaultGSTRate,
	}
	if a.Status == "" {
		a.Status = StatusActive
	}
	if a.SourceType == "" {
		a.SourceType = DefaultSourceType
	}
	if a.BillingCycle == "" {
		a.BillingCycle = pricing.CycleMonthly
	}
	if a.TypeOfLead == nil {
		a.TypeOfLead = []string{}
	}
	if err := validateAccount(a); err != nil {
		return AccountResponse{}, err
	}
	a.IsCustomer = a.Status == StatusCustomer

	if err := s.price(ctx, a); err != nil {
		return AccountResponse{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create account failed", zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create account success",
		zap.String("account_id", a.ID.String()),
		zap.Float64("total_price", a.TotalPrice),
	)
	return s.GetByID(ctx, a.ID.String())
}

func (s *service) Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error) {
	s.logger.Debug("update account requested", zap.String("account_id", id))

	if err := parseID(id); err != nil {
		return AccountResponse{}, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	if req.BusinessName != nil {
		name := strings.TrimSpace(*req.BusinessName)
		if !strings.EqualFold(name, a.BusinessName) {
			existing, err := s.repo.FindByBusinessName(ctx, name)
			if err == nil && existing.ID != a.ID {
				return AccountResponse{}, s.duplicateError(existing)
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return AccountResponse{}, err
			}
		}
		a.BusinessName = name
	}
	mergeStrings(a, req)
	if req.TypeOfLead != nil {
		a.TypeOfLead = *req.TypeOfLead
	}
	if req.SelectedUserID != nil {
		a.SelectedUserID = optionalUUID(*req.SelectedUserID)
	}
	if req.AssignedTo != nil {
		a.AssignedTo = optionalUUID(*req.AssignedTo)
		a.Assignee = nil
	}
	if req.SelectedServiceID != nil {
		a.SelectedServiceID = optionalUUID(*req.SelectedServiceID)
	}
	if req.SelectedPlanID != nil {
		a.SelectedPlanID = optionalUUID(*req.SelectedPlanID)
	}

	if err := validateAccount(a); err != nil {
		return AccountResponse{}, err
	}
	a.IsCustomer = a.Status == StatusCustomer

	if err := s.price(ctx, a); err != nil {
		return AccountResponse{}, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update account failed", zap.String("account_id", id), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update account success", zap.String("account_id", id))
	return s.GetByID(ctx, id)
}

func mergeStrings(a *Account, req UpdateAccountRequest) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.ContactName, req.ContactName)
	set(&a.ContactEmail, req.ContactEmail)
	set(&a.ContactNumber, req.ContactNumber)
	set(&a.GSTNumber, req.GSTNumber)
	set(&a.AddressLine1, req.AddressLine1)
	set(&a.AddressLine2, req.AddressLine2)
	set(&a.City, req.City)
	set(&a.State, req.State)
	set(&a.Country, req.Country)
	set(&a.Pincode, req.Pincode)
	set(&a.Website, req.Website)
	set(&a.Status, req.Status)
	set(&a.SourceType, req.SourceType)
	set(&a.BillingCycle, req.BillingCycle)
}

// Delete closes the account instead of removing the row.
func (s *service) Delete(ctx context.Context, id string) (AccountResponse, error) {
	if err := parseID(id); err != nil {
		return AccountResponse{}, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	a.Status = StatusClosed
	a.IsCustomer = false
	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("close account failed", zap.String("account_id", id), zap.Error(err))
		return AccountResponse{}, err
	}

	s.logger.Info("close account success", zap.String("account_id", id))
	return mapToResponse(a), nil
}

func (s *service) BulkUpdateStatus(ctx context.Context, req BulkStatusRequest) (int64, error) {
	if len(req.IDs) == 0 {
		return 0, accounterrors.ErrNoAccountIDs
	}
	if !IsValidStatus(req.Status) {
		return 0, accounterrors.ErrInvalidStatus
	}

	n, err := s.repo.BulkUpdateStatus(ctx, req.IDs, req.Status)
	if err != nil {
		s.logger.Error("bulk status update failed", zap.Int("ids", len(req.IDs)), zap.Error(err))
		return 0, err
	}

	s.logger.Info("bulk status update success", zap.String("status", req.Status), zap.Int64("updated", n))
	return n, nil
}

func (s *service) AddNote(ctx context.Context, id string, req AddNoteRequest, author string) ([]NoteResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	note := &Note{AccountID: a.ID, Text: req.Text, Author: req.Author, CreatedAt: s.now()}
	if req.Timestamp != nil {
		note.CreatedAt = *req.Timestamp
	}
	if note.Author == "" {
		note.Author = author
	}
	if err := qtx.CreateNote(ctx, note); err != nil {
		s.logger.Error("add note failed", zap.String("account_id", id), zap.Error(err))
		return nil, err
	}

	notes, err := qtx.ListNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return mapNotes(notes), nil
}

func (s *service) GetFollowUps(ctx context.Context, id string) ([]FollowUpResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}
	followUps, err := s.repo.ListFollowUps(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapFollowUps(followUps), nil
}

func followUpStatus(status string) (string, error) {
	switch status {
	case "":
		return FollowUpPending, nil
	case FollowUpPending, FollowUpCompleted:
		return status, nil
	}
	return "", accounterrors.ErrInvalidFollowUpStatus
}

func (s *service) AddFollowUp(ctx context.Context, id string, req FollowUpRequest, addedBy string) ([]FollowUpResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	status, err := followUpStatus(req.Status)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	f := &FollowUp{
		AccountID: a.ID,
		Date:      req.Date,
		Note:      req.Note,
		AddedBy:   optionalUUID(addedBy),
		Status:    status,
	}
	if err := s.repo.CreateFollowUp(ctx, f); err != nil {
		s.logger.Error("add follow-up failed", zap.String("account_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("add follow-up success", zap.String("account_id", id), zap.String("follow_up_id", f.ID.String()))
	return s.followUps(ctx, id)
}

func (s *service) UpdateFollowUp(ctx context.Context, id, followUpID string, req FollowUpRequest) ([]FollowUpResponse, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(followUpID); err != nil {
		return nil, accounterrors.ErrFollowUpNotFound
	}
	status, err := followUpStatus(req.Status)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.FindFollowUp(ctx, id, followUpID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounterrors.ErrFollowUpNotFound
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
		return nil, accounterrors.ErrFollowUpNotFound
	}

	if err := s.repo.DeleteFollowUp(ctx, id, followUpID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounterrors.ErrFollowUpNotFound
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

func optionalUUID(s string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func mapMember(m *Member) *MemberResponse {
	if m == nil {
		return nil
	}
	return &MemberResponse{ID: m.ID.String(), Name: m.Name, Role: m.Role}
}

func mapNotes(notes []Note) []NoteResponse {
	res := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, NoteResponse{ID: n.ID.String(), Text: n.Text, Author: n.Author, Timestamp: n.CreatedAt})
	}
	return res
}

func mapFollowUps(followUps []FollowUp) []FollowUpResponse {
	res := make([]FollowUpResponse, 0, len(followUps))
	for _, f := range followUps {
		res = append(res, FollowUpResponse{
			ID:      f.ID.String(),
			Date:    f.Date,
			Note:    f.Note,
			Status:  f.Status,
			AddedBy: mapMember(f.AddedByUser),
		})
	}
	return res
}

func mapToResponse(a *Account) AccountResponse {
	typeOfLead := a.TypeOfLead
	if typeOfLead == nil {
		typeOfLead = []string{}
	}
	return AccountResponse{
		ID:             a.ID.String(),
		BusinessName:   a.BusinessName,
		OwnerID:        uuidString(a.OwnerID),
		SelectedUserID: uuidString(a.SelectedUserID),
		ContactName:    a.ContactName,
		ContactEmail:   a.ContactEmail,
		ContactNumber:  a.ContactNumber,
		GSTNumber:      a.GSTNumber,
		Address: AddressResponse{
			Line1:   a.AddressLine1,
			Line2:   a.AddressLine2,
			City:    a.City,
			State:   a.State,
			Pincode: a.Pincode,
			Country: a.Country,
		},
		Website:           a.Website,
		TypeOfLead:        typeOfLead,
		Status:            a.Status,
		SourceType:        a.SourceType,
		AssignedTo:        mapMember(a.Assignee),
		SelectedServiceID: uuidString(a.SelectedServiceID),
		SelectedPlanID:    uuidString(a.SelectedPlanID),
		BillingCycle:      a.BillingCycle,
		TotalPrice:        a.TotalPrice,
		GSTRate:           a.GSTRate,
		IsCustomer:        a.IsCustomer,
		Notes:             mapNotes(a.Notes),
		FollowUps:         mapFollowUps(a.FollowUps),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

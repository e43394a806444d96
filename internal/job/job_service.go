package job

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-erp/internal/domain"
	"go-erp/internal/events"
	joberrors "go-erp/internal/job/errors"
	"go-erp/internal/messaging/kafka"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/search"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetByID(ctx context.Context, id int64) (JobResponse, error)
	Update(ctx context.Context, id int64, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64, req CompleteJobRequest) (JobResponse, error)
	SearchActive(ctx context.Context, criteria *JobSearchCriteria) (search.PageResponse[JobTableInfo], error)
	SearchDone(ctx context.Context, criteria *JobSearchCriteria) (search.PageResponse[JobTableInfo], error)
	DeliveryNote(ctx context.Context, id int64) ([]byte, string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.DropOffDate != nil && req.DropOffDate.Before(req.PickUpDate) {
		return JobResponse{}, joberrors.ErrDropOffBeforePickUp
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status, err := qtx.OrderStatus(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobResponse{}, joberrors.ErrOrderNotFound
		}
		return JobResponse{}, err
	}
	if status == domain.OrderStatusDelivered {
		return JobResponse{}, joberrors.ErrOrderDelivered
	}
	if err := s.checkAssignees(ctx, qtx, req.VehicleID, req.EmployeeID); err != nil {
		return JobResponse{}, err
	}

	j := &Job{
		OrderID:     req.OrderID,
		VehicleID:   req.VehicleID,
		EmployeeID:  req.EmployeeID,
		PickUpDate:  req.PickUpDate,
		DropOffDate: req.DropOffDate,
		Comment:     req.Comment,
	}
	if err := qtx.Create(ctx, j); err != nil {
		log.Error("create job persist failed", zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}
	if err := qtx.StartOrder(ctx, req.OrderID); err != nil {
		log.Error("start order failed", zap.Int64("order_id", req.OrderID), zap.Error(err))
		return JobResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return JobResponse{}, err
	}

	log.Info("create job success", zap.Int64("job_id", j.ID), zap.Int64("order_id", j.OrderID))
	return mapToResponse(*j), nil
}

func (s *service) checkAssignees(ctx context.Context, repo Repository, vehicleID, employeeID int64) error {
	ok, err := repo.VehicleExists(ctx, vehicleID)
	if err != nil {
		return err
	}
	if !ok {
		return joberrors.ErrVehicleNotFound
	}

	ok, err = repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return joberrors.ErrEmployeeNotFound
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (JobResponse, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*j), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateJobRequest) (JobResponse, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	vehicleID, employeeID := j.VehicleID, j.EmployeeID
	if req.VehicleID != nil {
		vehicleID = *req.VehicleID
	}
	if req.EmployeeID != nil {
		employeeID = *req.EmployeeID
	}
	if req.VehicleID != nil || req.EmployeeID != nil {
		if err := s.checkAssignees(ctx, s.repo, vehicleID, employeeID); err != nil {
			return JobResponse{}, err
		}
	}
	j.VehicleID, j.EmployeeID = vehicleID, employeeID

	if req.PickUpDate != nil {
		j.PickUpDate = *req.PickUpDate
	}
	if req.DropOffDate != nil {
		j.DropOffDate = req.DropOffDate
	}
	if j.DropOffDate != nil && j.DropOffDate.Before(j.PickUpDate) {
		return JobResponse{}, joberrors.ErrDropOffBeforePickUp
	}
	if req.Comment != nil {
		j.Comment = *req.Comment
	}

	if err := s.repo.Update(ctx, j); err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*j), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

// Complete closes the job and records a job_completed event in the same transaction,
// so the event exists if and only if the completion was committed.
func (s *service) Complete(ctx context.Context, id int64, req CompleteJobRequest) (JobResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	j, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	if j.Complete {
		return JobResponse{}, joberrors.ErrJobAlreadyComplete
	}

	dropOff := s.now().UTC()
	if req.DropOffDate != nil {
		dropOff = *req.DropOffDate
	}
	if dropOff.Before(j.PickUpDate) {
		return JobResponse{}, joberrors.ErrDropOffBeforePickUp
	}

	j.Complete = true
	j.DropOffDate = &dropOff
	if err := qtx.Update(ctx, j); err != nil {
		log.Error("complete job persist failed", zap.Int64("job_id", id), zap.Error(err))
		return JobResponse{}, err
	}

	event, err := kafka.NewOutboxEvent(rid, "job", strconv.FormatInt(j.ID, 10),
		events.JobCompletedEventType, events.JobCompletedTopic,
		events.JobCompletedEvent{
			EventType:   events.JobCompletedEventType,
			RequestID:   rid,
			JobID:       j.ID,
			OrderID:     j.OrderID,
			EmployeeID:  j.EmployeeID,
			VehicleID:   j.VehicleID,
			DropOffDate: dropOff,
			OccurredAt:  s.now().UTC(),
		},
	)
	if err != nil {
		return JobResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		log.Error("complete job outbox persist failed", zap.Int64("job_id", id), zap.Error(err))
		return JobResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return JobResponse{}, err
	}

	log.Info("complete job success",
		zap.Int64("job_id", j.ID),
		zap.Int64("order_id", j.OrderID),
		zap.String("outbox_id", event.ID),
	)
	return mapToResponse(*j), nil
}

func (s *service) SearchActive(ctx context.Context, criteria *JobSearchCriteria) (search.PageResponse[JobTableInfo], error) {
	return s.search(ctx, criteria, activeSpec)
}

func (s *service) SearchDone(ctx context.Context, criteria *JobSearchCriteria) (search.PageResponse[JobTableInfo], error) {
	return s.search(ctx, criteria, doneSpec)
}

func (s *service) search(
	ctx context.Context,
	criteria *JobSearchCriteria,
	build func(JobSearchCriteria) *search.Spec,
) (search.PageResponse[JobTableInfo], error) {
	if criteria == nil {
		criteria = &JobSearchCriteria{}
	}

	pageable, err := sortTable.Resolve(criteria.PageCriteria)
	if err != nil {
		return search.PageResponse[JobTableInfo]{}, err
	}

	page, err := s.repo.Search(ctx, build(*criteria), pageable)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search jobs failed", zap.Error(err))
		return search.PageResponse[JobTableInfo]{}, err
	}

	return search.NewPageResponse(search.MapPage(page, toTableInfo)), nil
}

func (s *service) DeliveryNote(ctx context.Context, id int64) ([]byte, string, error) {
	note, err := s.repo.FindDeliveryNote(ctx, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}

	data, filename, err := buildDeliveryNotePDF(*note, s.now())
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("render delivery note failed", zap.Int64("job_id", id), zap.Error(err))
		return nil, "", apperror.Wrap(err, apperror.CodeInternalError, "Could not render delivery note", http.StatusInternalServerError)
	}
	return data, filename, nil
}

func mapToResponse(j Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		OrderID:     j.OrderID,
		VehicleID:   j.VehicleID,
		EmployeeID:  j.EmployeeID,
		PickUpDate:  j.PickUpDate,
		DropOffDate: j.DropOffDate,
		Complete:    j.Complete,
		Comment:     j.Comment,
	}
}

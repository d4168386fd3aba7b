package repositories

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"promisewatch-be/docstore"
	"promisewatch-be/models"
)

const (
	ReportsCollection  = "reports"
	DefaultRecentLimit = 20
)

// ReportRepository stores citizen breach reports.
type ReportRepository struct {
	store    docstore.Store
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

func NewReportRepository(store docstore.Store, log zerolog.Logger) *ReportRepository {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &ReportRepository{
		store:    store,
		validate: validate,
		log:      log.With().Str("component", "report_repository").Logger(),
		now:      time.Now,
	}
}

// Submit validates input and writes one report for uid. Nothing reaches
// the store when validation fails.
func (r *ReportRepository) Submit(ctx context.Context, uid string, in models.ReportInput) (string, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Details = strings.TrimSpace(in.Details)

	if strings.TrimSpace(uid) == "" {
		reportsSubmitted.WithLabelValues("invalid").Inc()
		return "", fmt.Errorf("%w: a signed-in user is required", models.ErrValidation)
	}
	if err := r.validate.Struct(in); err != nil {
		reportsSubmitted.WithLabelValues("invalid").Inc()
		return "", fmt.Errorf("%w: %s", models.ErrValidation, describe(err))
	}

	report := models.Report{
		UID:       uid,
		PromiseID: in.PromiseID,
		Category:  in.Category,
		Title:     in.Title,
		Details:   in.Details,
		PhotoURL:  in.PhotoURL,
		Location:  in.Location,
		Status:    models.ReportPending,
		CreatedAt: r.now().UTC(),
	}

	id, err := r.store.AddOne(ctx, ReportsCollection, report)
	if err != nil {
		reportsSubmitted.WithLabelValues("error").Inc()
		r.log.Error().Err(err).Str("uid", uid).Msg("report write failed")
		return "", fmt.Errorf("submit report: %w", err)
	}
	reportsSubmitted.WithLabelValues("ok").Inc()
	r.log.Info().Str("report_id", id).Str("uid", uid).Msg("report submitted")
	return id, nil
}

// ForPromise returns the reports filed against one promise, newest first.
func (r *ReportRepository) ForPromise(ctx context.Context, promiseID string) ([]models.Report, error) {
	raws, err := r.store.GetWhere(ctx, ReportsCollection, "promiseId", promiseID)
	reports, err := r.decode(raws, err, "promise")
	if err != nil {
		return reports, err
	}
	newestFirst(reports)
	return reports, nil
}

// Recent returns up to limit reports, newest first. A non-positive limit
// uses DefaultRecentLimit.
func (r *ReportRepository) Recent(ctx context.Context, limit int) ([]models.Report, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	raws, err := r.store.GetAll(ctx, ReportsCollection)
	reports, err := r.decode(raws, err, "recent")
	if err != nil {
		return reports, err
	}
	newestFirst(reports)
	if len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func (r *ReportRepository) decode(raws []bson.Raw, err error, query string) ([]models.Report, error) {
	if err != nil {
		r.log.Error().Err(err).Str("query", query).Msg("report query failed")
		return []models.Report{}, errors.Join(models.ErrUnavailable, err)
	}
	reports, err := docstore.Decode[models.Report](raws)
	if err != nil {
		r.log.Error().Err(err).Str("query", query).Msg("report decode failed")
		return []models.Report{}, err
	}
	return reports, nil
}

func newestFirst(reports []models.Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
}

// describe turns validator errors into a message fit for the submitter.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "url":
			msgs = append(msgs, field+" must be a valid URL")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

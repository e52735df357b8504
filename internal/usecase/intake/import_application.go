package intake

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rushdesk/rush-scheduler/internal/audit"
	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/httperr"
	"github.com/rushdesk/rush-scheduler/internal/models"
	"github.com/rushdesk/rush-scheduler/internal/pdfparser"
)

// Parser is the external application parse service.
type Parser interface {
	ParseApplication(ctx context.Context, filename string, file io.Reader) (*pdfparser.ParsedApplication, error)
}

// Archiver stores the original uploaded document. Failures are logged, never
// fatal: the parse result is the deliverable, the archive a safety net.
type Archiver interface {
	Store(ctx context.Context, filename string, data []byte) error
}

type ImportResult struct {
	Rushee         *models.Rushee              `json:"rushee"`
	Availabilities []models.RusheeAvailability `json:"availabilities"`
	Dropped        int                         `json:"dropped"`
}

// ======================================================
// USE CASE
// ======================================================

type ImportApplication struct {
	repo     domain.Repository
	parser   Parser
	archiver Archiver
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewImportApplication(
	repo domain.Repository,
	parser Parser,
	archiver Archiver,
	auditDisp *audit.Dispatcher,
	log *zap.Logger,
) *ImportApplication {
	return &ImportApplication{
		repo:     repo,
		parser:   parser,
		archiver: archiver,
		audit:    auditDisp,
		log:      log,
	}
}

// Preview parses and validates without writing anything, so the admin can
// review and correct the extracted data first.
func (uc *ImportApplication) Preview(
	ctx context.Context,
	actor domain.Actor,
	filename string,
	data []byte,
) (*pdfparser.ParsedApplication, error) {

	if !actor.CanImportApplications() {
		return nil, httperr.ErrValidation("not_permitted")
	}

	parsed, err := uc.parse(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	if err := uc.rejectDuplicateEmail(ctx, parsed.Rushee.Email); err != nil {
		return nil, err
	}

	return parsed, nil
}

// Execute parses the document and creates the rushee with their
// availabilities in one transaction.
func (uc *ImportApplication) Execute(
	ctx context.Context,
	actor domain.Actor,
	filename string,
	data []byte,
) (*ImportResult, error) {

	if !actor.CanImportApplications() {
		return nil, httperr.ErrValidation("not_permitted")
	}

	parsed, err := uc.parse(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	return uc.Commit(ctx, actor, filename, data, parsed)
}

// Commit persists an already-parsed (possibly admin-edited) application.
func (uc *ImportApplication) Commit(
	ctx context.Context,
	actor domain.Actor,
	filename string,
	data []byte,
	parsed *pdfparser.ParsedApplication,
) (*ImportResult, error) {

	if !actor.CanImportApplications() {
		return nil, httperr.ErrValidation("not_permitted")
	}
	if parsed.Rushee.Name == "" || parsed.Rushee.Email == "" {
		return nil, httperr.ErrValidation("missing_rushee_fields")
	}

	if err := uc.rejectDuplicateEmail(ctx, parsed.Rushee.Email); err != nil {
		return nil, err
	}

	dates, err := uc.repo.ListInterviewDates(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rushee := &models.Rushee{
		ID:          uuid.NewString(),
		Name:        parsed.Rushee.Name,
		Email:       parsed.Rushee.Email,
		PhoneNumber: parsed.Rushee.PhoneNumber,
		Major:       parsed.Rushee.Major,
	}

	avails, dropped := buildAvailabilities(rushee.ID, parsed.Availabilities, dates, now)

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateRushee(ctx, rushee); err != nil {
			return err
		}
		if len(avails) == 0 {
			return nil
		}
		return tx.CreateRusheeAvailabilities(ctx, avails)
	})
	if err != nil {
		return nil, err
	}

	if data != nil {
		if err := uc.archiver.Store(ctx, filename, data); err != nil {
			uc.log.Warn("pdf archive failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
		}
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ID,
		Action:   "application_imported",
		Entity:   "rushee",
		EntityID: &rushee.ID,
		Metadata: map[string]any{
			"availabilities": len(avails),
			"dropped":        dropped,
		},
	})

	return &ImportResult{
		Rushee:         rushee,
		Availabilities: avails,
		Dropped:        dropped,
	}, nil
}

func (uc *ImportApplication) parse(
	ctx context.Context,
	filename string,
	data []byte,
) (*pdfparser.ParsedApplication, error) {

	parsed, err := uc.parser.ParseApplication(ctx, filename, bytes.NewReader(data))
	if err != nil {
		if ctx.Err() != nil {
			return nil, httperr.ErrTransient("parse_service_timeout")
		}
		uc.log.Warn("application parse failed", zap.String("filename", filename), zap.Error(err))
		return nil, httperr.ErrValidation("unparseable_application")
	}
	if parsed.Rushee.Name == "" || parsed.Rushee.Email == "" {
		return nil, httperr.ErrValidation("missing_rushee_fields")
	}
	return parsed, nil
}

func (uc *ImportApplication) rejectDuplicateEmail(ctx context.Context, email string) error {
	if existing, err := uc.repo.FindRusheeByEmail(ctx, email); err == nil && existing != nil {
		return httperr.ErrValidation("rushee_email_exists")
	}
	return nil
}

// buildAvailabilities converts parsed entries into rows, dropping entries
// with unparseable dates or times and exact (date, start, end) duplicates of
// an earlier entry in the same batch. Each surviving entry is linked to the
// interview date sharing its calendar day, when one exists.
func buildAvailabilities(
	rusheeID string,
	entries []pdfparser.ParsedAvailability,
	dates []models.InterviewDate,
	now time.Time,
) ([]models.RusheeAvailability, int) {

	seen := make(map[pdfparser.ParsedAvailability]bool, len(entries))
	var out []models.RusheeAvailability
	dropped := 0

	for _, e := range entries {
		if e.Date == "" {
			dropped++
			continue
		}
		if seen[e] {
			dropped++
			continue
		}
		seen[e] = true

		day, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			dropped++
			continue
		}
		start, err := time.Parse(time.RFC3339, e.StartTime)
		if err != nil {
			dropped++
			continue
		}
		end, err := time.Parse(time.RFC3339, e.EndTime)
		if err != nil || !end.After(start) {
			dropped++
			continue
		}

		var dateID *string
		for i := range dates {
			if sameUTCDay(dates[i].Date, day) {
				dateID = &dates[i].ID
				break
			}
		}

		out = append(out, models.RusheeAvailability{
			ID:              uuid.NewString(),
			RusheeID:        rusheeID,
			InterviewDateID: dateID,
			Date:            day,
			StartTime:       start.UTC(),
			EndTime:         end.UTC(),
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	return out, dropped
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

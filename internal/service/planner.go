package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/domain"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/logger"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/repository"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/schedule"
	"github.com/google/uuid"
)

// PlannerConfig holds configuration for the planner service.
type PlannerConfig struct {
	SetupHours    float64
	RevenueTarget float64
	Currency      string
	Reps          []string
}

// PlannerService computes and persists production schedules. Scheduling and
// persistence of one job run as a single unit under the planner mutex so two
// near-simultaneous jobs contending for the same machine cannot both claim
// the same slot.
type PlannerService struct {
	jobs    *repository.JobRepository
	steps   *repository.StepRepository
	cal     schedule.Calendar
	catalog map[string]schedule.Process
	cfg     PlannerConfig
	log     *logger.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewPlannerService creates a new planner service.
func NewPlannerService(
	jobs *repository.JobRepository,
	steps *repository.StepRepository,
	cal schedule.Calendar,
	defs []domain.ProcessDefinition,
	log *logger.Logger,
	cfg *PlannerConfig,
) *PlannerService {
	catalog := make(map[string]schedule.Process, len(defs))
	for _, d := range defs {
		catalog[d.Name] = schedule.Process{
			Name:        d.Name,
			RatePerHour: d.RatePerHour,
			BufferHours: d.BufferHours,
		}
	}

	var c PlannerConfig
	if cfg != nil {
		c = *cfg
	}
	if c.SetupHours == 0 {
		c.SetupHours = 2
	}

	return &PlannerService{
		jobs:    jobs,
		steps:   steps,
		cal:     cal,
		catalog: catalog,
		cfg:     c,
		log:     log,
		now:     time.Now,
	}
}

// PlanRequest carries the raw user input for one job.
type PlanRequest struct {
	Name          string     `json:"name" binding:"required"`
	SalesRep      string     `json:"sales_rep"`
	FinishedQty   int        `json:"finished_qty"`
	UpsPerSheet   int        `json:"ups_per_sheet"`
	OversPct      float64    `json:"overs_pct"`
	Impressions   int        `json:"impressions"` // pre-supplied; 0 derives from qty/ups/overs
	Processes     []string   `json:"processes" binding:"required"`
	ContractValue float64    `json:"contract_value"`
	NightShift    bool       `json:"night_shift"`
	WeekendWork   bool       `json:"weekend_work"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	DueAt         *time.Time `json:"due_at,omitempty"`
}

// PlanJob validates the request, computes the schedule against the current
// booking snapshot, and persists job and steps as one unit. The request
// fails as a whole on any validation or persistence error; no partial step
// set is ever left behind.
func (s *PlannerService) PlanJob(ctx context.Context, req *PlanRequest) (*domain.Job, error) {
	impressions := req.Impressions
	if impressions <= 0 {
		var err error
		impressions, err = schedule.Impressions(req.FinishedQty, req.UpsPerSheet, req.OversPct)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.steps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking snapshot: %w", err)
	}

	planned, err := s.cal.ScheduleJob(schedule.Input{
		Impressions: impressions,
		Processes:   req.Processes,
		NightShift:  req.NightShift,
		WeekendWork: req.WeekendWork,
		StartAt:     req.StartAt,
		Now:         s.now(),
		SetupHours:  s.cfg.SetupHours,
		Catalog:     s.catalog,
		Bookings:    bookings(existing),
	})
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:            uuid.New().String(),
		Name:          req.Name,
		SalesRep:      req.SalesRep,
		FinishedQty:   req.FinishedQty,
		UpsPerSheet:   req.UpsPerSheet,
		OversPct:      req.OversPct,
		Impressions:   impressions,
		ContractValue: req.ContractValue,
		NightShift:    req.NightShift,
		WeekendWork:   req.WeekendWork,
		StartAt:       req.StartAt,
		DueAt:         req.DueAt,
		Status:        domain.JobStatusScheduled,
	}

	perStep := req.ContractValue / float64(len(planned))
	job.Steps = make([]domain.ScheduleStep, 0, len(planned))
	for _, p := range planned {
		job.Steps = append(job.Steps, domain.ScheduleStep{
			ID:            uuid.New().String(),
			JobID:         job.ID,
			Seq:           p.Seq,
			Process:       p.Process,
			StartAt:       p.StartAt,
			FinishAt:      p.FinishAt,
			DurationHours: p.DurationHours,
			Impressions:   p.Impressions,
			StepValue:     perStep,
		})
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to persist job %s: %w", job.ID, err)
	}

	ctx = logger.SetJobID(ctx, job.ID)
	logger.CtxInfo(ctx, "Job scheduled: name=%q, steps=%d, impressions=%d, finish=%s",
		job.Name, len(job.Steps), impressions, job.Steps[len(job.Steps)-1].FinishAt.Format(time.RFC3339))

	return job, nil
}

// ListJobs returns all jobs with their steps, newest first.
func (s *PlannerService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.List(ctx)
}

// GetJob returns one job with its steps.
func (s *PlannerService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// DeleteJob removes a job and all of its steps.
func (s *PlannerService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	logger.CtxInfo(logger.SetJobID(ctx, id), "Job deleted")
	return nil
}

// UpdateJobValue sets a job's contract value and re-splits it across steps.
func (s *PlannerService) UpdateJobValue(ctx context.Context, id string, value float64) (*domain.Job, error) {
	if value < 0 {
		return nil, &schedule.ValidationError{Field: "contract_value", Reason: "must not be negative"}
	}
	return s.jobs.UpdateValue(ctx, id, value)
}

// RescheduleFrom moves the start of one step and recomputes every later
// step of the same job against the current bookings of other jobs. Steps
// before fromSeq keep their slots.
func (s *PlannerService) RescheduleFrom(ctx context.Context, jobID string, fromSeq int, newStart time.Time) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if fromSeq < 0 || fromSeq >= len(job.Steps) {
		return nil, &schedule.ValidationError{
			Field:  "seq",
			Reason: fmt.Sprintf("step %d out of range, job has %d steps", fromSeq, len(job.Steps)),
		}
	}
	if fromSeq > 0 && newStart.Before(job.Steps[fromSeq-1].FinishAt) {
		return nil, &schedule.ValidationError{
			Field: "start_at",
			Reason: fmt.Sprintf("start %s is before the previous step finishes at %s",
				newStart.Format(time.RFC3339), job.Steps[fromSeq-1].FinishAt.Format(time.RFC3339)),
		}
	}

	tail := make([]string, 0, len(job.Steps)-fromSeq)
	for _, st := range job.Steps[fromSeq:] {
		tail = append(tail, st.Process)
	}

	existing, err := s.steps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking snapshot: %w", err)
	}
	// Drop this job's own tail from the snapshot; the slots being replaced
	// must not block their replacements.
	snapshot := existing[:0:0]
	for _, st := range existing {
		if st.JobID == jobID && st.Seq >= fromSeq {
			continue
		}
		snapshot = append(snapshot, st)
	}

	planned, err := s.cal.ScheduleJob(schedule.Input{
		Impressions: job.Impressions,
		Processes:   tail,
		NightShift:  job.NightShift,
		WeekendWork: job.WeekendWork,
		StartAt:     &newStart,
		Now:         s.now(),
		SetupHours:  s.cfg.SetupHours,
		Catalog:     s.catalog,
		Bookings:    bookings(snapshot),
	})
	if err != nil {
		return nil, err
	}

	perStep := 0.0
	if len(job.Steps) > 0 {
		perStep = job.ContractValue / float64(len(job.Steps))
	}
	replacement := make([]domain.ScheduleStep, 0, len(planned))
	for i, p := range planned {
		replacement = append(replacement, domain.ScheduleStep{
			ID:            uuid.New().String(),
			JobID:         jobID,
			Seq:           fromSeq + i,
			Process:       p.Process,
			StartAt:       p.StartAt,
			FinishAt:      p.FinishAt,
			DurationHours: p.DurationHours,
			Impressions:   p.Impressions,
			StepValue:     perStep,
		})
	}

	if err := s.steps.ReplaceFrom(ctx, jobID, fromSeq, replacement); err != nil {
		return nil, fmt.Errorf("failed to replace steps for job %s: %w", jobID, err)
	}

	logger.CtxInfo(logger.SetJobID(ctx, jobID), "Job rescheduled: from_seq=%d, new_start=%s, steps=%d",
		fromSeq, newStart.Format(time.RFC3339), len(replacement))

	return s.jobs.GetByID(ctx, jobID)
}

// MachineLoad is one machine's booked steps plus its earliest free instant.
type MachineLoad struct {
	Process     string                `json:"process"`
	RatePerHour float64               `json:"rate_per_hour"`
	FreeAt      time.Time             `json:"free_at"`
	Steps       []domain.ScheduleStep `json:"steps"`
}

// Load returns the booked steps and earliest free instant for one machine.
func (s *PlannerService) Load(ctx context.Context, process string) (*MachineLoad, error) {
	p, ok := s.catalog[process]
	if !ok {
		return nil, &schedule.ValidationError{Field: "process", Reason: fmt.Sprintf("unknown process %q", process)}
	}
	steps, err := s.steps.ListByProcess(ctx, process)
	if err != nil {
		return nil, err
	}
	logger.CtxDebug(logger.SetMachine(ctx, process), "Machine load computed: steps=%d", len(steps))
	return &MachineLoad{
		Process:     process,
		RatePerHour: p.RatePerHour,
		FreeAt:      schedule.EarliestFree(process, bookings(steps), s.now()),
		Steps:       steps,
	}, nil
}

// Machines returns the machine catalog sorted by name.
func (s *PlannerService) Machines() []schedule.Process {
	out := make([]schedule.Process, 0, len(s.catalog))
	for _, p := range s.catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reps returns the sales representative roster.
func (s *PlannerService) Reps() []string {
	return s.cfg.Reps
}

// Stats summarizes the production floor for the dashboard: projected
// revenue against the annual target plus load counts.
type Stats struct {
	Currency         string  `json:"currency"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	RevenueTarget    float64 `json:"revenue_target"`
	RevenueGap       float64 `json:"revenue_gap"`
	TargetPct        float64 `json:"target_pct"`
	Jobs             int64   `json:"jobs"`
	Steps            int64   `json:"steps"`
	BusiestMachine   string  `json:"busiest_machine,omitempty"`
}

// Stats computes the dashboard summary.
func (s *PlannerService) Stats(ctx context.Context) (*Stats, error) {
	revenue, err := s.jobs.RevenueTotal(ctx)
	if err != nil {
		return nil, err
	}
	jobCount, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}
	steps, err := s.steps.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	hoursByMachine := map[string]float64{}
	for _, st := range steps {
		hoursByMachine[st.Process] += st.DurationHours
	}
	busiest := ""
	best := 0.0
	for name, hours := range hoursByMachine {
		if hours > best || (hours == best && (busiest == "" || name < busiest)) {
			busiest, best = name, hours
		}
	}

	out := &Stats{
		Currency:         s.cfg.Currency,
		ProjectedRevenue: revenue,
		RevenueTarget:    s.cfg.RevenueTarget,
		Jobs:             jobCount,
		Steps:            int64(len(steps)),
		BusiestMachine:   busiest,
	}
	if gap := s.cfg.RevenueTarget - revenue; gap > 0 {
		out.RevenueGap = gap
	}
	if s.cfg.RevenueTarget > 0 {
		out.TargetPct = revenue / s.cfg.RevenueTarget * 100
	}
	return out, nil
}

// bookings converts persisted steps into the scheduler's snapshot view.
func bookings(steps []domain.ScheduleStep) []schedule.Booking {
	out := make([]schedule.Booking, 0, len(steps))
	for _, st := range steps {
		out = append(out, schedule.Booking{
			Process:  st.Process,
			StartAt:  st.StartAt,
			FinishAt: st.FinishAt,
		})
	}
	return out
}

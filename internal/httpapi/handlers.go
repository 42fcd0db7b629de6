package httpapi

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "ai": handler.svc.Guidance.AIEnabled()})
}

// today reads the optional ?date=YYYY-MM-DD override.
func (handler *Handler) today(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return domain.DateOf(handler.now()), nil
	}
	d, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	return d, nil
}

func (handler *Handler) GetToday(c *fiber.Ctx) error {
	today, err := handler.today(c)
	if err != nil {
		return err
	}
	req := contract.NewTodayRequest()
	req.Now = &today
	view, err := handler.svc.Cycle.Today(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

type allocationResponse struct {
	TaskID   string  `json:"task_id"`
	TaskName string  `json:"task"`
	Hours    float64 `json:"hours"`
}

type dayLoadResponse struct {
	Date        string               `json:"date"`
	TotalHours  float64              `json:"total_hours"`
	Overloaded  bool                 `json:"overloaded"`
	Allocations []allocationResponse `json:"allocations"`
}

type scheduleResponse struct {
	Today         string            `json:"today"`
	HealthyLimit  float64           `json:"healthy_limit"`
	PeakHours     float64           `json:"peak_hours"`
	OverloadCount int               `json:"overloaded_days"`
	Days          []dayLoadResponse `json:"days"`
}

func newScheduleResponse(s scheduler.Schedule) scheduleResponse {
	resp := scheduleResponse{
		Today:         s.Today.Format(domain.DateLayout),
		HealthyLimit:  s.HealthyLimit,
		PeakHours:     s.PeakHours(),
		OverloadCount: len(s.OverloadedDays()),
		Days:          make([]dayLoadResponse, len(s.Days)),
	}
	for i, d := range s.Days {
		day := dayLoadResponse{
			Date: d.Date.Format(domain.DateLayout),
			// Raw sums can carry float noise; clients see tenths.
			TotalHours:  roundTenth(d.TotalHours),
			Overloaded:  d.Overloaded,
			Allocations: make([]allocationResponse, len(d.Allocations)),
		}
		for j, a := range d.Allocations {
			day.Allocations[j] = allocationResponse{TaskID: a.TaskID, TaskName: a.TaskName, Hours: a.Hours}
		}
		resp.Days[i] = day
	}
	return resp
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func (handler *Handler) GetSchedule(c *fiber.Ctx) error {
	today, err := handler.today(c)
	if err != nil {
		return err
	}
	sched, err := handler.svc.Tasks.Schedule(c.UserContext(), today)
	if err != nil {
		return err
	}
	return c.JSON(newScheduleResponse(sched))
}

func (handler *Handler) GetPatterns(c *fiber.Ctx) error {
	req := contract.NewPatternsRequest()
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return &domain.ValidationError{Field: "top", Message: "must be a positive integer"}
		}
		req.TopN = n
	}
	view, err := handler.svc.Symptoms.Patterns(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

type taskResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"task"`
	Category  string  `json:"category"`
	Deadline  string  `json:"deadline"`
	Hours     float64 `json:"hours"`
	Intensity string  `json:"intensity"`
	Completed bool    `json:"completed"`
	Urgency   string  `json:"urgency"`
}

func (handler *Handler) GetTasks(c *fiber.Ctx) error {
	today, err := handler.today(c)
	if err != nil {
		return err
	}
	tasks, err := handler.svc.Tasks.List(c.UserContext(), c.QueryBool("all", false))
	if err != nil {
		return err
	}
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range scheduler.SortByDeadline(tasks) {
		out = append(out, taskResponse{
			ID:        t.ID,
			Name:      t.Name,
			Category:  string(t.Category),
			Deadline:  t.Deadline.Format(domain.DateLayout),
			Hours:     t.Hours,
			Intensity: string(t.Intensity),
			Completed: t.Completed,
			Urgency:   string(scheduler.Urgency(t.Deadline, today)),
		})
	}
	return c.JSON(out)
}

type symptomEntryResponse struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Phase    *string  `json:"phase"`
	Mood     string   `json:"mood"`
	Energy   int      `json:"energy"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	entries, err := handler.svc.Symptoms.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]symptomEntryResponse, 0, len(entries))
	for _, e := range entries {
		r := symptomEntryResponse{
			ID:       e.ID,
			Date:     e.Date.Format(domain.DateLayout),
			Mood:     e.Mood.Label(),
			Energy:   e.Energy,
			Symptoms: e.Symptoms,
			Notes:    e.Notes,
		}
		if r.Symptoms == nil {
			r.Symptoms = []string{}
		}
		if e.Phase != nil {
			p := string(*e.Phase)
			r.Phase = &p
		}
		out = append(out, r)
	}
	return c.JSON(out)
}

func (handler *Handler) PostMeditation(c *fiber.Ctx) error {
	today, err := handler.today(c)
	if err != nil {
		return err
	}
	m, err := handler.svc.Guidance.Meditation(c.UserContext(), today)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (handler *Handler) PostMealPlan(c *fiber.Ctx) error {
	today, err := handler.today(c)
	if err != nil {
		return err
	}
	p, err := handler.svc.Guidance.MealPlan(c.UserContext(), today)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (handler *Handler) GetRemedies(c *fiber.Ctx) error {
	remedies, err := handler.svc.Guidance.Remedies(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(remedies)
}

func (handler *Handler) PostRemedy(c *fiber.Ctx) error {
	symptom, err := url.PathUnescape(c.Params("symptom"))
	if err != nil {
		return &domain.ValidationError{Field: "symptom", Message: "malformed"}
	}
	r, err := handler.svc.Guidance.Remedy(c.UserContext(), symptom)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

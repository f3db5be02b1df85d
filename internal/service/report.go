package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/resource"
)

// topSkillsLimit caps the skills report at the most frequent entries.
const topSkillsLimit = 10

// OverviewStats summarizes the whole resource pool.
type OverviewStats struct {
	Total           int     `json:"total"`
	Urgent          int     `json:"urgent"`
	Available       int     `json:"available"`
	Assigned        int     `json:"assigned"`
	AvgIdleDuration float64 `json:"avgIdleDuration"`
}

// DepartmentStats summarizes one department.
type DepartmentStats struct {
	Department      string  `json:"department"`
	Count           int     `json:"count"`
	Available       int     `json:"available"`
	Urgent          int     `json:"urgent"`
	AvgIdleDuration float64 `json:"avgIdleDuration"`
}

// SkillCount is one row of the skills report.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TrendBucket counts resources created in one calendar month.
type TrendBucket struct {
	Month    string `json:"month"`
	Total    int    `json:"total"`
	Assigned int    `json:"assigned"`
}

// resourceFacts is the slice of a resource the aggregations need. Keeping
// it separate from ent.Resource lets the fold helpers stay pure.
type resourceFacts struct {
	Department   string
	Status       string
	IdleDuration int
	IsUrgent     bool
	Skills       []string
	CreatedAt    time.Time
}

// ReportService computes read-only aggregations over the resource store.
type ReportService struct {
	client      *ent.Client
	trendMonths int
}

// NewReportService creates a new ReportService. trendMonths bounds the
// trend report window.
func NewReportService(client *ent.Client, trendMonths int) *ReportService {
	return &ReportService{client: client, trendMonths: trendMonths}
}

// Overview returns pool-wide counts and the mean idle duration.
func (s *ReportService) Overview(ctx context.Context) (*OverviewStats, error) {
	facts, err := s.fetchFacts(ctx)
	if err != nil {
		return nil, err
	}
	stats := foldOverview(facts)
	return &stats, nil
}

// ByDepartment returns per-department stats sorted by headcount descending.
func (s *ReportService) ByDepartment(ctx context.Context) ([]DepartmentStats, error) {
	facts, err := s.fetchFacts(ctx)
	if err != nil {
		return nil, err
	}
	return foldDepartments(facts), nil
}

// TopSkills returns the most common skills across all resources.
func (s *ReportService) TopSkills(ctx context.Context) ([]SkillCount, error) {
	facts, err := s.fetchFacts(ctx)
	if err != nil {
		return nil, err
	}
	return foldSkills(facts, topSkillsLimit), nil
}

// Trends returns per-month creation counts for the most recent window,
// ordered chronologically.
func (s *ReportService) Trends(ctx context.Context, now time.Time) ([]TrendBucket, error) {
	cutoff := monthStart(now).AddDate(0, -(s.trendMonths - 1), 0)

	rows, err := s.client.Resource.Query().
		Where(resource.CreatedAtGTE(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query resources for trends: %w", err)
	}
	return foldTrends(toFacts(rows)), nil
}

func (s *ReportService) fetchFacts(ctx context.Context) ([]resourceFacts, error) {
	// Creation order keeps tie-breaking in the skill fold deterministic.
	rows, err := s.client.Resource.Query().
		Order(ent.Asc(resource.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	return toFacts(rows), nil
}

func toFacts(rows []*ent.Resource) []resourceFacts {
	facts := make([]resourceFacts, 0, len(rows))
	for _, r := range rows {
		facts = append(facts, resourceFacts{
			Department:   string(r.Department),
			Status:       string(r.Status),
			IdleDuration: r.IdleDuration,
			IsUrgent:     r.IsUrgent,
			Skills:       r.Skills,
			CreatedAt:    r.CreatedAt,
		})
	}
	return facts
}

func foldOverview(facts []resourceFacts) OverviewStats {
	stats := OverviewStats{Total: len(facts)}
	idleSum := 0
	for _, f := range facts {
		idleSum += f.IdleDuration
		if f.IsUrgent {
			stats.Urgent++
		}
		switch f.Status {
		case string(resource.StatusAvailable):
			stats.Available++
		case string(resource.StatusAssigned):
			stats.Assigned++
		}
	}
	if stats.Total > 0 {
		stats.AvgIdleDuration = meanOneDecimal(idleSum, stats.Total)
	}
	return stats
}

func foldDepartments(facts []resourceFacts) []DepartmentStats {
	type acc struct {
		stats   DepartmentStats
		idleSum int
	}
	byDept := map[string]*acc{}
	for _, f := range facts {
		a, ok := byDept[f.Department]
		if !ok {
			a = &acc{stats: DepartmentStats{Department: f.Department}}
			byDept[f.Department] = a
		}
		a.stats.Count++
		a.idleSum += f.IdleDuration
		if f.Status == string(resource.StatusAvailable) {
			a.stats.Available++
		}
		if f.IsUrgent {
			a.stats.Urgent++
		}
	}

	out := make([]DepartmentStats, 0, len(byDept))
	for _, a := range byDept {
		a.stats.AvgIdleDuration = meanOneDecimal(a.idleSum, a.stats.Count)
		out = append(out, a.stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Department < out[j].Department
	})
	return out
}

func foldSkills(facts []resourceFacts, limit int) []SkillCount {
	// Ties keep first-encountered order, hence the index map and stable sort.
	index := map[string]int{}
	var out []SkillCount
	for _, f := range facts {
		for _, skill := range f.Skills {
			i, ok := index[skill]
			if !ok {
				index[skill] = len(out)
				out = append(out, SkillCount{Skill: skill})
				i = index[skill]
			}
			out[i].Count++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func foldTrends(facts []resourceFacts) []TrendBucket {
	type acc struct {
		total    int
		assigned int
	}
	byMonth := map[string]*acc{}
	for _, f := range facts {
		key := f.CreatedAt.UTC().Format("2006-01")
		a, ok := byMonth[key]
		if !ok {
			a = &acc{}
			byMonth[key] = a
		}
		a.total++
		if f.Status == string(resource.StatusAssigned) {
			a.assigned++
		}
	}

	out := make([]TrendBucket, 0, len(byMonth))
	for key, a := range byMonth {
		out = append(out, TrendBucket{Month: key, Total: a.total, Assigned: a.assigned})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func meanOneDecimal(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}

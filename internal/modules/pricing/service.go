package pricing

import (
	"context"
	"fmt"
	"time"

	"courtbook/internal/domain"
)

type Service struct {
	rules  RuleRepository
	courts CourtReader
}

func NewService(rules RuleRepository, courts CourtReader) *Service {
	return &Service{rules: rules, courts: courts}
}

// CreateRule validates and inserts a pricing rule after scanning the
// court's other rules for a shared weekday with an overlapping window.
// The scan is explicit application logic; there is no DB exclusion
// constraint backing it.
func (s *Service) CreateRule(ctx context.Context, courtID int64, req CreateRuleRequest) (*domain.PricingRule, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, ErrNotFound
	}

	days, start, end, err := parseRuleFields(req.Days, req.StartTime, req.EndTime, req.PricePerHour)
	if err != nil {
		return nil, err
	}

	if err := s.assertNoOverlap(ctx, courtID, 0, days, start, end); err != nil {
		return nil, err
	}

	rule := &domain.PricingRule{
		CourtID:      courtID,
		Days:         days,
		StartTime:    start,
		EndTime:      end,
		PricePerHour: req.PricePerHour,
		Label:        req.Label,
	}
	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// UpdateRule applies the provided fields and re-runs the overlap scan
// against all other rules of the court using the post-update values.
func (s *Service) UpdateRule(ctx context.Context, courtID, ruleID int64, req UpdateRuleRequest) (*domain.PricingRule, error) {
	rule, err := s.rules.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil || rule.CourtID != courtID {
		return nil, ErrNotFound
	}

	days := rule.Days
	if req.Days != nil {
		days = domain.Weekdays(*req.Days)
	}
	start := rule.StartTime
	if req.StartTime != nil {
		if start, err = domain.ParseTimeOfDay(*req.StartTime); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	end := rule.EndTime
	if req.EndTime != nil {
		if end, err = domain.ParseTimeOfDay(*req.EndTime); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	rate := rule.PricePerHour
	if req.PricePerHour != nil {
		rate = *req.PricePerHour
	}

	if _, _, _, err := parseRuleFields(days, start.String(), end.String(), rate); err != nil {
		return nil, err
	}
	if err := s.assertNoOverlap(ctx, courtID, ruleID, days, start, end); err != nil {
		return nil, err
	}

	rule.Days = days
	rule.StartTime = start
	rule.EndTime = end
	rule.PricePerHour = rate
	if req.Label != nil {
		rule.Label = *req.Label
	}
	if err := s.rules.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) DeleteRule(ctx context.Context, courtID, ruleID int64) error {
	rule, err := s.rules.GetByID(ctx, ruleID)
	if err != nil {
		return err
	}
	if rule == nil || rule.CourtID != courtID {
		return ErrNotFound
	}
	return s.rules.Delete(ctx, ruleID)
}

func (s *Service) ListRules(ctx context.Context, courtID int64) ([]domain.PricingRule, error) {
	return s.rules.GetByCourt(ctx, courtID)
}

// FindRateFor resolves the single rule pricing [start, end) on the given
// date. Lookup requires containment, not overlap: a request straddling
// two adjacent windows has no price. At most one rule can match thanks to
// the write-time overlap scan.
func (s *Service) FindRateFor(ctx context.Context, courtID int64, date time.Time, start, end domain.TimeOfDay) (*domain.PricingRule, error) {
	day := domain.WeekdayIndex(date)
	rules, err := s.rules.GetByCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}
	for i := range rules {
		if rules[i].Days.Contains(day) && rules[i].ContainsRange(start, end) {
			return &rules[i], nil
		}
	}
	return nil, ErrNoPricing
}

// RulesForDay returns the rules applicable to the date's weekday ordered
// by window start. An empty result means the court is not bookable that
// day.
func (s *Service) RulesForDay(ctx context.Context, courtID int64, date time.Time) ([]domain.PricingRule, error) {
	day := domain.WeekdayIndex(date)
	rules, err := s.rules.GetByCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PricingRule, 0, len(rules))
	for _, r := range rules {
		if r.Days.Contains(day) {
			out = append(out, r)
		}
	}
	return out, nil
}

// DayPricing is the public "what does this court cost on this date" view.
func (s *Service) DayPricing(ctx context.Context, courtID int64, date time.Time) ([]domain.PricingRule, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if court == nil || !court.IsActive {
		return nil, ErrNotFound
	}

	rules, err := s.RulesForDay(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, ErrNoPricing
	}
	return rules, nil
}

func (s *Service) assertNoOverlap(ctx context.Context, courtID, excludeID int64, days domain.Weekdays, start, end domain.TimeOfDay) error {
	existing, err := s.rules.GetByCourt(ctx, courtID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if other.Days.SharesDay(days) && domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return ErrRuleOverlap
		}
	}
	return nil
}

func parseRuleFields(days []int, startStr, endStr string, rate float64) (domain.Weekdays, domain.TimeOfDay, domain.TimeOfDay, error) {
	if len(days) == 0 {
		return nil, 0, 0, fmt.Errorf("%w: day set must not be empty", ErrValidation)
	}
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, 0, 0, fmt.Errorf("%w: weekday %d out of range 0..6", ErrValidation, d)
		}
		if seen[d] {
			return nil, 0, 0, fmt.Errorf("%w: duplicate weekday %d", ErrValidation, d)
		}
		seen[d] = true
	}

	start, err := domain.ParseTimeOfDay(startStr)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := domain.ParseTimeOfDay(endStr)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if end <= start {
		return nil, 0, 0, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	if rate <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: price per hour must be positive", ErrValidation)
	}
	return domain.Weekdays(days), start, end, nil
}

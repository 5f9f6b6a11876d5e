package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nutriclinic/internal/domain/entity"
	"nutriclinic/internal/infrastructure/textgen"

	"github.com/sirupsen/logrus"
)

var (
	ErrMealPlanDisabled = errors.New("meal plan generation is not configured")
	// ErrMealPlanUnavailable wraps the last remote failure once every model
	// has been tried or a terminal error was hit.
	ErrMealPlanUnavailable = errors.New("meal plan generation failed")
)

// PlanCache is satisfied by cache.MealPlanCache. The model that produced a
// plan is stored with it.
type PlanCache interface {
	Get(ctx context.Context, prompt string) (model, plan string, ok bool, err error)
	Set(ctx context.Context, prompt, model, plan string, ttl time.Duration) error
}

type MealPlan struct {
	Text   string
	Model  string
	Cached bool
}

type MealPlanService interface {
	Generate(ctx context.Context, patient entity.Patient) (*MealPlan, error)
	// Ask sends a free prompt through the same model fallback, bypassing the
	// cache. It backs the connection test.
	Ask(ctx context.Context, prompt string) (*MealPlan, error)
	Models() []string
}

type mealPlanService struct {
	log       *logrus.Logger
	generator textgen.Generator
	models    []string
	cache     PlanCache
	cacheTTL  time.Duration
}

// NewMealPlanService builds the service. generator may be nil, in which case
// Generate returns ErrMealPlanDisabled; cache may be nil to skip caching.
func NewMealPlanService(
	log *logrus.Logger,
	generator textgen.Generator,
	models []string,
	cache PlanCache,
	cacheTTL time.Duration,
) MealPlanService {
	return &mealPlanService{
		log:       log,
		generator: generator,
		models:    models,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *mealPlanService) Models() []string {
	return append([]string(nil), s.models...)
}

// Generate builds the patient's prompt and answers it from the cache or the
// configured models.
func (s *mealPlanService) Generate(ctx context.Context, patient entity.Patient) (*MealPlan, error) {
	if !s.enabled() {
		return nil, ErrMealPlanDisabled
	}

	prompt := BuildMealPlanPrompt(patient)

	if s.cache != nil {
		model, text, ok, err := s.cache.Get(ctx, prompt)
		if err != nil {
			s.log.Warnf("Failed to read meal plan cache: %+v", err)
		} else if ok {
			return &MealPlan{Text: text, Model: model, Cached: true}, nil
		}
	}

	plan, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	s.store(ctx, prompt, plan)
	return plan, nil
}

func (s *mealPlanService) Ask(ctx context.Context, prompt string) (*MealPlan, error) {
	if !s.enabled() {
		return nil, ErrMealPlanDisabled
	}
	return s.generate(ctx, prompt)
}

func (s *mealPlanService) enabled() bool {
	return s.generator != nil && len(s.models) > 0
}

// generate tries each configured model in order. Only ErrModelNotFound moves
// on to the next model; credential and transport failures stop immediately.
func (s *mealPlanService) generate(ctx context.Context, prompt string) (*MealPlan, error) {
	var lastErr error
	for _, model := range s.models {
		text, err := s.generator.Generate(ctx, model, prompt)
		if err == nil {
			return &MealPlan{Text: text, Model: model}, nil
		}

		lastErr = err
		if !errors.Is(err, textgen.ErrModelNotFound) {
			s.log.Warnf("Generation with %s failed: %+v", model, err)
			return nil, fmt.Errorf("%w: %w", ErrMealPlanUnavailable, err)
		}
		s.log.Infof("Model %s not available, trying next", model)
	}

	return nil, fmt.Errorf("%w: no configured model available: %w", ErrMealPlanUnavailable, lastErr)
}

func (s *mealPlanService) store(ctx context.Context, prompt string, plan *MealPlan) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, prompt, plan.Model, plan.Text, s.cacheTTL); err != nil {
		s.log.Warnf("Failed to write meal plan cache: %+v", err)
	}
}

// BuildMealPlanPrompt interpolates the patient's name, goal and clinical
// history into the instruction sent to the model.
func BuildMealPlanPrompt(p entity.Patient) string {
	var b strings.Builder
	b.WriteString("You are a clinical nutritionist. Write a one-day meal plan ")
	b.WriteString("(breakfast, morning snack, lunch, afternoon snack, dinner) ")
	fmt.Fprintf(&b, "for the patient %s.\n", p.Name)
	fmt.Fprintf(&b, "Goal: %s.\n", p.Goal)
	fmt.Fprintf(&b, "Clinical history (allergies, conditions, medications): %s.\n", p.ClinicalHistory)
	b.WriteString("Respect every restriction in the clinical history and list portion sizes.")
	return b.String()
}

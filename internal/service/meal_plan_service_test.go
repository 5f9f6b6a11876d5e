package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"nutriclinic/internal/domain/entity"
	"nutriclinic/internal/infrastructure/textgen"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	responses map[string]error
	text      string
	calls     []string
}

func (f *fakeGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.responses[model]; ok && err != nil {
		return "", err
	}
	return f.text + " (" + model + ")", nil
}

type cachedPlan struct {
	model string
	text  string
}

type memoryCache struct {
	plans  map[string]cachedPlan
	getErr error
}

func (m *memoryCache) Get(ctx context.Context, prompt string) (string, string, bool, error) {
	if m.getErr != nil {
		return "", "", false, m.getErr
	}
	p, ok := m.plans[prompt]
	return p.model, p.text, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, prompt, model, plan string, ttl time.Duration) error {
	m.plans[prompt] = cachedPlan{model: model, text: plan}
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var ana = entity.Patient{ID: 1, Name: "Ana", Goal: entity.GoalWeightLoss, ClinicalHistory: "celiac disease"}

func notFound(model string) error {
	return fmt.Errorf("%w: models/%s", textgen.ErrModelNotFound, model)
}

func TestMealPlanService_PrimaryModelSucceeds(t *testing.T) {
	gen := &fakeGenerator{text: "plan"}
	svc := NewMealPlanService(quietLogger(), gen, []string{"primary", "fallback"}, nil, time.Hour)

	plan, err := svc.Generate(context.Background(), ana)
	require.NoError(t, err)
	assert.Equal(t, "primary", plan.Model)
	assert.Equal(t, "plan (primary)", plan.Text)
	assert.Equal(t, []string{"primary"}, gen.calls)
}

func TestMealPlanService_FallsBackOnModelNotFound(t *testing.T) {
	gen := &fakeGenerator{text: "plan", responses: map[string]error{"primary": notFound("primary")}}
	svc := NewMealPlanService(quietLogger(), gen, []string{"primary", "fallback"}, nil, time.Hour)

	plan, err := svc.Generate(context.Background(), ana)
	require.NoError(t, err)
	assert.Equal(t, "fallback", plan.Model)
	assert.Equal(t, []string{"primary", "fallback"}, gen.calls)
}

func TestMealPlanService_TerminalErrorsStopImmediately(t *testing.T) {
	for _, kind := range []error{textgen.ErrUnauthorized, textgen.ErrTransport} {
		t.Run(kind.Error(), func(t *testing.T) {
			gen := &fakeGenerator{responses: map[string]error{"primary": fmt.Errorf("%w: boom", kind)}}
			svc := NewMealPlanService(quietLogger(), gen, []string{"primary", "fallback"}, nil, time.Hour)

			_, err := svc.Generate(context.Background(), ana)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMealPlanUnavailable)
			assert.ErrorIs(t, err, kind)
			assert.Equal(t, []string{"primary"}, gen.calls)
		})
	}
}

func TestMealPlanService_AllModelsMissing(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]error{"a": notFound("a"), "b": notFound("b")}}
	svc := NewMealPlanService(quietLogger(), gen, []string{"a", "b"}, nil, time.Hour)

	_, err := svc.Generate(context.Background(), ana)
	assert.ErrorIs(t, err, ErrMealPlanUnavailable)
	assert.ErrorIs(t, err, textgen.ErrModelNotFound)
	assert.Equal(t, []string{"a", "b"}, gen.calls)
}

func TestMealPlanService_Disabled(t *testing.T) {
	svc := NewMealPlanService(quietLogger(), nil, []string{"a"}, nil, time.Hour)
	_, err := svc.Generate(context.Background(), ana)
	assert.ErrorIs(t, err, ErrMealPlanDisabled)

	svc = NewMealPlanService(quietLogger(), &fakeGenerator{}, nil, nil, time.Hour)
	_, err = svc.Generate(context.Background(), ana)
	assert.ErrorIs(t, err, ErrMealPlanDisabled)
}

func TestMealPlanService_UsesCache(t *testing.T) {
	gen := &fakeGenerator{text: "plan"}
	cache := &memoryCache{plans: map[string]cachedPlan{}}
	svc := NewMealPlanService(quietLogger(), gen, []string{"primary"}, cache, time.Hour)

	first, err := svc.Generate(context.Background(), ana)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.Generate(context.Background(), ana)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, "primary", second.Model)
	assert.Len(t, gen.calls, 1)
}

func TestMealPlanService_CacheFailureFallsThrough(t *testing.T) {
	gen := &fakeGenerator{text: "plan"}
	cache := &memoryCache{plans: map[string]cachedPlan{}, getErr: errors.New("redis down")}
	svc := NewMealPlanService(quietLogger(), gen, []string{"primary"}, cache, time.Hour)

	plan, err := svc.Generate(context.Background(), ana)
	require.NoError(t, err)
	assert.Equal(t, "primary", plan.Model)
}

func TestMealPlanService_AskFallsBackAndSkipsCache(t *testing.T) {
	gen := &fakeGenerator{text: "pong", responses: map[string]error{"primary": notFound("primary")}}
	cache := &memoryCache{plans: map[string]cachedPlan{}}
	svc := NewMealPlanService(quietLogger(), gen, []string{"primary", "fallback"}, cache, time.Hour)

	reply, err := svc.Ask(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "fallback", reply.Model)
	assert.Equal(t, "pong (fallback)", reply.Text)
	assert.Empty(t, cache.plans)
}

func TestMealPlanService_AskErrors(t *testing.T) {
	_, err := NewMealPlanService(quietLogger(), nil, nil, nil, time.Hour).Ask(context.Background(), "ping")
	assert.ErrorIs(t, err, ErrMealPlanDisabled)

	gen := &fakeGenerator{responses: map[string]error{"primary": fmt.Errorf("%w: bad key", textgen.ErrUnauthorized)}}
	_, err = NewMealPlanService(quietLogger(), gen, []string{"primary"}, nil, time.Hour).Ask(context.Background(), "ping")
	assert.ErrorIs(t, err, ErrMealPlanUnavailable)
	assert.ErrorIs(t, err, textgen.ErrUnauthorized)
}

func TestBuildMealPlanPrompt(t *testing.T) {
	prompt := BuildMealPlanPrompt(ana)
	assert.Contains(t, prompt, "Ana")
	assert.Contains(t, prompt, entity.GoalWeightLoss)
	assert.Contains(t, prompt, "celiac disease")
}

func TestMealPlanService_ModelsIsACopy(t *testing.T) {
	models := []string{"a", "b"}
	svc := NewMealPlanService(quietLogger(), nil, models, nil, time.Hour)

	got := svc.Models()
	got[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, svc.Models())
}

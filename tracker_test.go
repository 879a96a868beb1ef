package ftracker_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bzimmer/ftracker"
)

func defaultConfig(t *testing.T) *ftracker.Config {
	val, err := ftracker.Content.ReadFile("etc/packages.json")
	require.NoError(t, err)
	var cfg ftracker.Config
	require.NoError(t, json.Unmarshal(val, &cfg))
	return &cfg
}

func TestSummaries(t *testing.T) {
	for _, n := range []int{0, 1, 8} {
		cfg := defaultConfig(t)
		cfg.Concurrency = n
		sums, err := ftracker.NewTracker(cfg).Summaries(context.Background())
		require.NoError(t, err)
		require.Len(t, sums, 3)
		for i, code := range []string{"SWM", "RUN", "WLK"} {
			assert.Equal(t, i, sums[i].Index)
			assert.Equal(t, code, sums[i].Code)
			assert.Equal(t, sums[i].Info.Message(), sums[i].Message)
		}
		assert.InDelta(t, 336.0, sums[0].Info.Calories, 1e-9)
		assert.InDelta(t, 699.75, sums[1].Info.Calories, 1e-9)
		assert.InDelta(t, 157.5, sums[2].Info.Calories, 1e-9)
	}
}

func TestSummariesLanguage(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Language = ftracker.Russian
	sums, err := ftracker.NewTracker(cfg).Summaries(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sums[1].Message, "Тип тренировки: Running;")

	cfg.Language = "xx"
	_, err = ftracker.NewTracker(cfg).Summaries(context.Background())
	assert.ErrorIs(t, err, ftracker.ErrUnknownLanguage)
}

func TestSummariesFailure(t *testing.T) {
	a := assert.New(t)
	cfg := &ftracker.Config{
		Packages: []ftracker.Package{
			{Code: "RUN", Values: []float64{15000, 1, 75}},
			{Code: "XYZ", Values: []float64{1, 2, 3}},
		},
	}
	sums, err := ftracker.NewTracker(cfg).Summaries(context.Background())
	a.ErrorIs(err, ftracker.ErrUnknownWorkoutCode)
	a.Contains(err.Error(), "package 1 (XYZ)")
	a.Nil(sums)

	cfg.Packages[1] = ftracker.Package{Code: "RUN", Values: []float64{1, 2}}
	_, err = ftracker.NewTracker(cfg).Summaries(context.Background())
	a.ErrorIs(err, ftracker.ErrArityMismatch)
}

func TestSummariesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sums, err := ftracker.NewTracker(defaultConfig(t)).Summaries(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sums)
}

func TestSummarize(t *testing.T) {
	a := assert.New(t)
	sum, err := ftracker.NewTracker(&ftracker.Config{}).Summarize(ftracker.Package{Code: "WLK", Values: []float64{9000, 1, 75, 180}})
	a.NoError(err)
	a.Equal("WLK", sum.Code)
	a.Equal("SportsWalking", sum.Info.TrainingType)
	a.Contains(sum.Message, "Calories burned: 157.500.")
}

package ftracker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const concurrency = 4

type Tracker struct {
	config *Config
}

func NewTracker(config *Config) *Tracker {
	return &Tracker{config: config}
}

func (t *Tracker) concurrency() int {
	if t.config.Concurrency > 0 {
		return t.config.Concurrency
	}
	return concurrency
}

func (t *Tracker) language() Language {
	if t.config.Language != "" {
		return t.config.Language
	}
	return English
}

// Summarize builds and renders a single package
func (t *Tracker) Summarize(pkg Package) (*Summary, error) {
	return t.summarize(0, pkg)
}

func (t *Tracker) summarize(idx int, pkg Package) (*Summary, error) {
	log.Debug().Int("index", idx).Str("code", pkg.Code).Floats64("values", pkg.Values).Msg("summarize")
	info, err := func() (*InfoMessage, error) {
		trn, err := ReadPackage(pkg)
		if err != nil {
			return nil, err
		}
		return ShowTrainingInfo(trn)
	}()
	if err != nil {
		summaryFailures.WithLabelValues(pkg.Code).Inc()
		return nil, err
	}
	msg, err := info.Localized(t.language())
	if err != nil {
		return nil, err
	}
	summaries.WithLabelValues(pkg.Code).Inc()
	return &Summary{Index: idx, Code: pkg.Code, Info: info, Message: msg}, nil
}

// Summaries returns a summary for every configured package in the configured order
func (t *Tracker) Summaries(c context.Context) ([]*Summary, error) {
	type job struct {
		idx int
		pkg Package
	}

	pkgs := t.config.Packages
	res := make([]*Summary, len(pkgs))
	jobs := make(chan job, len(pkgs))

	grp, ctx := errgroup.WithContext(c)
	for i := 0; i < t.concurrency(); i++ {
		grp.Go(func() error {
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				sum, err := t.summarize(j.idx, j.pkg)
				if err != nil {
					return fmt.Errorf("package %d (%s): %w", j.idx, j.pkg.Code, err)
				}
				// each worker writes a distinct index
				res[j.idx] = sum
			}
			return nil
		})
	}

	for i, pkg := range pkgs {
		jobs <- job{idx: i, pkg: pkg}
	}
	close(jobs)

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	log.Info().Int("n", len(res)).Msg("summaries")
	return res, nil
}

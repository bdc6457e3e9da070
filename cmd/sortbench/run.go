package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"

	"github.com/amp-labs/keysort/cli"
	"github.com/amp-labs/keysort/compare"
	"github.com/amp-labs/keysort/corpus"
	"github.com/amp-labs/keysort/envutil"
	errs "github.com/amp-labs/keysort/errors"
	"github.com/amp-labs/keysort/logger"
	"github.com/amp-labs/keysort/ordered"
	"github.com/amp-labs/keysort/page"
	"github.com/amp-labs/keysort/sortable"
	"github.com/amp-labs/keysort/telemetry"
)

var (
	// ErrFingerprintMismatch means the strategies ordered the collection differently.
	ErrFingerprintMismatch = errors.New("strategies produced different orders")

	errOutOfRange = errors.New("value out of range")
)

const (
	defaultSize     = 10_000
	defaultSparsity = 0.5
	defaultRounds   = 5
	metricsLabel    = "sortbench"
)

type config struct {
	Dir         string
	Param       string
	Size        int
	Sparsity    float64
	Seed        uint64
	Rounds      int
	Workers     int
	Descending  bool
	Interactive bool
}

func atLeast(n int) func(int) error {
	return func(v int) error {
		if v < n {
			return fmt.Errorf("%w: %d is below %d", errOutOfRange, v, n)
		}

		return nil
	}
}

func fraction(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %v is outside [0, 1]", errOutOfRange, v)
	}

	return nil
}

// read takes the value of rdr, recording any error in failures.
func read[T any](failures *errs.Collection, rdr envutil.Reader[T]) T {
	val, err := rdr.Value()
	failures.Add(err)

	return val
}

// loadConfig reads the SORTBENCH_* variables. Every invalid variable is
// reported, not just the first.
func loadConfig() (config, error) {
	var failures errs.Collection

	cfg := config{
		Dir:      read(&failures, envutil.String("SORTBENCH_DIR", envutil.Default(""))),
		Param:    read(&failures, envutil.String("SORTBENCH_PARAM", envutil.Default(""))),
		Size:     read(&failures, envutil.Int("SORTBENCH_SIZE", envutil.Default(defaultSize), envutil.Validate(atLeast(0)))),
		Sparsity: read(&failures, envutil.Float64("SORTBENCH_SPARSITY", envutil.Default(defaultSparsity), envutil.Validate(fraction))),
		Seed:     read(&failures, envutil.Uint64("SORTBENCH_SEED", envutil.Default[uint64](1))),
		Rounds:   read(&failures, envutil.Int("SORTBENCH_ROUNDS", envutil.Default(defaultRounds), envutil.Validate(atLeast(1)))),
		Workers: read(&failures, envutil.Int("SORTBENCH_WORKERS",
			envutil.Default(runtime.GOMAXPROCS(0)), envutil.Validate(atLeast(1)))),
		Descending:  read(&failures, envutil.Bool("SORTBENCH_DESCENDING", envutil.Default(false))),
		Interactive: read(&failures, envutil.Bool("SORTBENCH_INTERACTIVE", envutil.Default(false))),
	}

	if failures.HasError() {
		return config{}, failures.GetError()
	}

	return cfg, nil
}

type sortFunc func(
	items []*page.Page,
	key ordered.KeyFunc[*page.Page, any],
	keys compare.Func[any],
	fallback compare.Func[*page.Page],
	opts ...ordered.Option,
) ([]*page.Page, error)

type strategy struct {
	name string
	sort sortFunc
}

var strategies = []strategy{ //nolint:gochecknoglobals
	{name: "decorated", sort: ordered.Sort[*page.Page, any]},
	{name: "naive", sort: ordered.Naive[*page.Page, any]},
}

// result is the outcome of one strategy. Calls and Comparisons are per round.
type result struct {
	Strategy    string
	Best        time.Duration
	Calls       int64
	Comparisons int64
	Fingerprint uint64
}

func collect(ctx context.Context, cfg config) (page.Pages, error) {
	if cfg.Dir == "" {
		return corpus.Generate(corpus.Options{
			Size:     cfg.Size,
			Sparsity: cfg.Sparsity,
			Param:    cfg.Param,
			Seed:     cfg.Seed,
		}), nil
	}

	return page.Load(ctx, os.DirFS(cfg.Dir), page.WithWorkers(cfg.Workers))
}

var builtinKeys = []string{"title", "weight", "date", "path"} //nolint:gochecknoglobals

// sortChoices lists the built-in sort names followed by the params of pages.
// A param that shares its name with a built-in field is offered as
// "params.<name>".
func sortChoices(pages page.Pages) []string {
	params := pages.ParamNames()

	for i, name := range params {
		if slices.Contains(builtinKeys, name) {
			params[i] = page.ParamsPrefix + name
		}
	}

	return slices.Concat(builtinKeys, params)
}

// choose settles the sort key and direction, asking the user when the run is
// interactive and no param was configured. A generated corpus is always
// sorted by its param, even when the param is named after a built-in field.
func choose(cfg config, pages page.Pages) (config, error) {
	if cfg.Param != "" {
		if cfg.Dir == "" {
			cfg.Param = corpus.SortName(cfg.Param)
		}

		return cfg, nil
	}

	if !cfg.Interactive {
		cfg.Param = corpus.SortName(corpus.DefaultParam)

		return cfg, nil
	}

	param, err := cli.Select("Sort by", sortChoices(pages)...)
	if err != nil {
		return cfg, err
	}

	descending, err := cli.PromptConfirm("Descending")
	if err != nil {
		return cfg, err
	}

	cfg.Param = param
	cfg.Descending = descending

	return cfg, nil
}

func counting[T any](f compare.Func[T], n *atomic.Int64) compare.Func[T] {
	return func(a, b T) (int, error) {
		n.Inc()

		return f(a, b)
	}
}

func measure(ctx context.Context, pages page.Pages, cfg config, strat strategy) (res result, err error) {
	ctx, span := telemetry.Tracer(ctx).Start(ctx, "sortbench.measure", trace.WithAttributes(
		attribute.String("strategy", strat.name),
		attribute.Int("rounds", cfg.Rounds),
	))
	defer func() { telemetry.End(span, err) }()

	opts := []ordered.Option{ordered.WithLabel(metricsLabel)}
	if cfg.Descending {
		opts = append(opts, ordered.Descending())
	}

	res = result{Strategy: strat.name}

	for round := range cfg.Rounds {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}

		key, calls := ordered.Count(page.Key(cfg.Param))
		comparisons := atomic.NewInt64(0)

		start := time.Now()
		sorted, err := strat.sort(pages, key,
			counting[any](compare.Dynamic, comparisons),
			counting(sortable.Func[*page.Page](), comparisons),
			opts...)
		elapsed := time.Since(start)

		if err != nil {
			return result{}, fmt.Errorf("%s: %w", strat.name, err)
		}

		if round == 0 || elapsed < res.Best {
			res.Best = elapsed
		}

		res.Calls = calls.Load()
		res.Comparisons = comparisons.Load()
		res.Fingerprint = page.Pages(sorted).Fingerprint()
	}

	span.SetAttributes(
		attribute.Int64("best_ns", res.Best.Nanoseconds()),
		attribute.Int64("calls", res.Calls),
		attribute.Int64("comparisons", res.Comparisons),
	)

	return res, nil
}

func run(ctx context.Context, cfg config) (results []result, err error) {
	ctx, span := telemetry.Tracer(ctx).Start(ctx, "sortbench.run")
	defer func() { telemetry.End(span, err) }()

	pages, err := collect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cfg, err = choose(cfg, pages)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("param", cfg.Param),
		attribute.Int("pages", len(pages)),
		attribute.Bool("descending", cfg.Descending),
	)

	ctx = logger.With(ctx, "param", cfg.Param, "pages", len(pages))
	log := logger.Get(ctx)

	log.Info("benchmarking",
		"keyed", corpus.Keyed(pages, cfg.Param),
		"rounds", cfg.Rounds,
		"descending", cfg.Descending)

	results = make([]result, 0, len(strategies))

	for _, strat := range strategies {
		res, err := measure(ctx, pages, cfg, strat)
		if err != nil {
			return nil, err
		}

		log.Info("strategy finished",
			"strategy", res.Strategy,
			"best", res.Best,
			"calls", res.Calls,
			"comparisons", res.Comparisons,
			"fingerprint", fmt.Sprintf("%016x", res.Fingerprint))

		results = append(results, res)
	}

	for _, res := range results[1:] {
		if res.Fingerprint != results[0].Fingerprint {
			return results, fmt.Errorf("%w: %s %016x, %s %016x", ErrFingerprintMismatch,
				results[0].Strategy, results[0].Fingerprint, res.Strategy, res.Fingerprint)
		}
	}

	return results, nil
}

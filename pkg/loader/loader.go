// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loader

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/tally/pkg/outcome"
)

// Loader loads outcome sets from directories. It is immutable once built and
// safe for concurrent use.
type Loader struct {
	env         Environment
	format      OutcomeFormat
	workers     int
	parser      Parser
	formatSet   bool
	workersSet  bool
	constructed bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithFormat fixes the outcome format, bypassing EnvReportFormat.
func WithFormat(f OutcomeFormat) Option {
	return func(l *Loader) {
		l.format = f
		l.formatSet = true
	}
}

// WithEnvironment sets the source of EnvReportFormat and EnvLoaderWorkers.
// Defaults to OSEnvironment.
func WithEnvironment(env Environment) Option {
	return func(l *Loader) {
		l.env = env
	}
}

// WithWorkers sets the number of files parsed concurrently, bypassing
// EnvLoaderWorkers. New rejects values outside [1, defaults.LoaderMaxWorkers].
func WithWorkers(n int) Option {
	return func(l *Loader) {
		l.workers = n
		l.workersSet = true
	}
}

// WithParser replaces the format's parser. Discovery still uses the
// configured format's extension.
func WithParser(p Parser) Option {
	return func(l *Loader) {
		l.parser = p
	}
}

// New builds a Loader, resolving anything not set by options from the
// environment.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{env: OSEnvironment{}}
	for _, opt := range opts {
		opt(l)
	}

	if !l.formatSet {
		cfg, err := NewFormatConfiguration(l.env)
		if err != nil {
			return nil, err
		}
		l.format = cfg.Format()
	} else if _, err := ParseFormat(l.format.String()); err != nil {
		return nil, err
	}

	if !l.workersSet {
		n, err := WorkersFromEnvironment(l.env)
		if err != nil {
			return nil, err
		}
		l.workers = n
	} else if err := validateWorkers(l.workers); err != nil {
		return nil, err
	}

	l.constructed = true
	return l, nil
}

// Format returns the active outcome format.
func (l *Loader) Format() OutcomeFormat {
	return l.format
}

// Workers returns the size of the worker pool.
func (l *Loader) Workers() int {
	return l.workers
}

// ForFormat returns a copy of l that loads files of format f. The receiver is
// not modified.
func (l *Loader) ForFormat(f OutcomeFormat) *Loader {
	c := *l
	c.format = f
	c.formatSet = true
	return &c
}

// LoadFrom loads every outcome file of the active format found directly in
// dir. It blocks until all files have been attempted. Files that cannot be
// parsed are skipped; only a directory access failure is returned as an
// error.
func (l *Loader) LoadFrom(dir string) (*outcome.Outcomes, error) {
	if !l.constructed {
		return nil, fmt.Errorf("loader must be created with loader.New")
	}

	parser := l.parser
	if parser == nil {
		var err error
		if parser, err = ParserFor(l.format); err != nil {
			return nil, err
		}
	}

	format := l.format.String()
	start := time.Now()
	defer func() {
		loadDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
	}()

	files, err := Discover(dir, l.format)
	if err != nil {
		loadsTotal.WithLabelValues(format, "error").Inc()
		slog.Error("failed to discover outcome files", "dir", dir, "format", format, "error", err)
		return nil, err
	}

	filesDiscovered.WithLabelValues(format).Add(float64(len(files)))
	slog.Debug("discovered outcome files", "dir", dir, "format", format, "count", len(files))

	if len(files) == 0 {
		loadsTotal.WithLabelValues(format, "success").Inc()
		lastLoadOutcomes.WithLabelValues(format).Set(0)
		return outcome.Empty(), nil
	}

	var mu sync.Mutex
	results := make([]outcome.TestOutcome, 0, len(files))

	var g errgroup.Group
	g.SetLimit(l.workers)

	for _, path := range files {
		g.Go(func() error {
			o, ok := l.parseRecovered(parser, path)
			if !ok {
				return nil
			}
			mu.Lock()
			results = append(results, o)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait is the completion barrier.
	_ = g.Wait()

	outcomesLoaded.WithLabelValues(format).Add(float64(len(results)))
	lastLoadOutcomes.WithLabelValues(format).Set(float64(len(results)))
	loadsTotal.WithLabelValues(format, "success").Inc()

	slog.Debug("loaded outcomes",
		"dir", dir,
		"format", format,
		"files", len(files),
		"outcomes", len(results),
		"duration", time.Since(start))

	return outcome.NewOutcomes(results), nil
}

// parseRecovered runs p on path, converting a panic into "no outcome".
func (l *Loader) parseRecovered(p Parser, path string) (o outcome.TestOutcome, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			parseFailures.WithLabelValues(l.format.String(), failurePanic).Inc()
			slog.Error("recovered panic while parsing outcome file",
				"path", path,
				"panic", r,
				"stack", string(debug.Stack()))
			o, ok = outcome.TestOutcome{}, false
		}
	}()
	return p.Parse(path)
}

// LoadFrom loads outcomes from dir using the format and worker count
// configured in the process environment.
func LoadFrom(dir string) (*outcome.Outcomes, error) {
	l, err := New()
	if err != nil {
		return nil, err
	}
	return l.LoadFrom(dir)
}

// OutcomesIn is an alias of LoadFrom.
func OutcomesIn(dir string) (*outcome.Outcomes, error) {
	return LoadFrom(dir)
}

// LoadFromInFormat loads outcomes of format f from dir, ignoring
// EnvReportFormat.
func LoadFromInFormat(dir string, f OutcomeFormat) (*outcome.Outcomes, error) {
	l, err := New(WithFormat(f))
	if err != nil {
		return nil, err
	}
	return l.LoadFrom(dir)
}

// Builder assembles a load step by step:
//
//	set, err := loader.LoadOutcomes().InFormat(loader.FormatJSON).From(dir)
type Builder struct {
	opts []Option
}

// LoadOutcomes starts a Builder with the given base options.
func LoadOutcomes(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// InFormat returns a Builder that loads files of format f.
func (b *Builder) InFormat(f OutcomeFormat) *Builder {
	return b.with(WithFormat(f))
}

// WithWorkers returns a Builder that uses n workers.
func (b *Builder) WithWorkers(n int) *Builder {
	return b.with(WithWorkers(n))
}

func (b *Builder) with(opt Option) *Builder {
	opts := make([]Option, 0, len(b.opts)+1)
	opts = append(opts, b.opts...)
	return &Builder{opts: append(opts, opt)}
}

// From runs the load.
func (b *Builder) From(dir string) (*outcome.Outcomes, error) {
	l, err := New(b.opts...)
	if err != nil {
		return nil, err
	}
	return l.LoadFrom(dir)
}

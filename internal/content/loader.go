package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/mandy1eigh007/resume-workshop-app/internal/parsing"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/skills"
	"github.com/mandy1eigh007/resume-workshop-app/internal/validation"
)

// Loader reads a Source into a Registry. Concurrent Load calls share one read.
type Loader struct {
	source Source
	logger *zap.Logger
	filter *rewriting.NeutralFilter
	limits validation.Limits

	group   singleflight.Group
	current atomic.Pointer[Registry]
	loads   atomic.Int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFilter sets the neutral-language filter used by the library checks.
func WithFilter(filter *rewriting.NeutralFilter) Option {
	return func(l *Loader) {
		if filter != nil {
			l.filter = filter
		}
	}
}

// WithLimits sets the limits used by the library checks.
func WithLimits(limits validation.Limits) Option {
	return func(l *Loader) {
		l.limits = limits.MergeWithDefaults()
	}
}

// NewLoader creates a loader for source.
func NewLoader(source Source, opts ...Option) *Loader {
	l := &Loader{
		source: source,
		logger: zap.NewNop(),
		filter: rewriting.DefaultNeutralFilter(),
		limits: validation.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the source the loader reads from.
func (l *Loader) Source() Source {
	return l.source
}

// Current returns the last completed load, or a NotLoaded registry.
func (l *Loader) Current() *Registry {
	if reg := l.current.Load(); reg != nil {
		return reg
	}
	return NotLoaded()
}

// Loads counts completed loads.
func (l *Loader) Loads() int64 {
	return l.loads.Load()
}

// Load reads every content file and swaps in the new registry. A read or decode
// failure yields an empty registry in the LoadedEmpty state. A cancelled load
// leaves the current registry in place and returns it.
func (l *Loader) Load(ctx context.Context) *Registry {
	v, _, _ := l.group.Do("load", func() (interface{}, error) {
		return l.load(ctx), nil
	})
	return v.(*Registry)
}

func (l *Loader) load(ctx context.Context) *Registry {
	start := time.Now()
	name := l.source.String()

	files, err := l.readAll(ctx)
	if err == nil {
		var reg *Registry
		reg, err = l.decode(files)
		if err == nil {
			reg.source = name
			l.store(reg)
			l.logger.Info("content loaded",
				zap.String("source", name),
				zap.Stringer("state", reg.State()),
				zap.Int("trades", len(reg.lib.Objectives)),
				zap.Int("warnings", len(reg.warnings)),
				zap.Duration("elapsed", time.Since(start)))
			return reg
		}
	}

	if ctx.Err() != nil {
		l.logger.Warn("content load cancelled", zap.String("source", name), zap.Error(ctx.Err()))
		return l.Current()
	}

	l.logger.Error("content load failed", zap.String("source", name), zap.Error(err))
	reg := emptyRegistry(name, err)
	l.store(reg)
	return reg
}

func (l *Loader) store(reg *Registry) {
	l.current.Store(reg)
	l.loads.Add(1)
}

// readAll reads every content file in parallel. A file that is not UTF-8 text
// fails the load; a missing translations file does not.
func (l *Loader) readAll(ctx context.Context) (map[string][]byte, error) {
	names := append(append([]string{}, RequiredFiles...), FileTranslations)
	data := make([][]byte, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := l.source.ReadFile(name)
			if err != nil {
				if name == FileTranslations && errors.Is(err, fs.ErrNotExist) {
					l.logger.Warn("translations file not found; prior-industry translation disabled",
						zap.String("source", l.source.String()))
					return nil
				}
				return &LoadError{File: name, Message: "failed to read content file", Cause: err}
			}
			if !utf8.Valid(b) {
				return &LoadError{File: name, Message: "content file is not valid UTF-8"}
			}
			data[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(names))
	for i, name := range names {
		if data[i] != nil {
			files[name] = data[i]
		}
	}
	return files, nil
}

// decode parses the files. Markdown problems become warnings; malformed CSV or
// YAML fails the load.
func (l *Loader) decode(files map[string][]byte) (*Registry, error) {
	var lib Library
	var warnings []parsing.Warning
	collect := func(w []parsing.Warning) {
		warnings = append(warnings, w...)
	}

	var w []parsing.Warning
	lib.Objectives, w = parsing.ParseObjectives(string(files[FileObjectives]))
	collect(w)
	lib.Roles, w = parsing.ParseRoleBullets(string(files[FileRoles]))
	collect(w)
	lib.Skills, w = parsing.ParseSkillsCanon(string(files[FileSkills]))
	collect(w)
	lib.Badges, w = parsing.ParseBadges(string(files[FileBadges]))
	collect(w)
	lib.Templates, w = parsing.ParseArtifactTemplates(string(files[FileTemplates]))
	collect(w)

	certs, w, err := parsing.ParseCertifications(bytes.NewReader(files[FileCertifications]))
	if err != nil {
		return nil, &LoadError{File: FileCertifications, Message: "failed to decode certification table", Cause: err}
	}
	lib.Certifications = certs
	collect(w)

	table, err := skills.ParseKeywordTable(files[FileKeywords])
	if err != nil {
		return nil, &LoadError{File: FileKeywords, Message: "failed to decode keyword table", Cause: err}
	}
	lib.Keywords = table

	if raw, ok := files[FileTranslations]; ok {
		translator, err := rewriting.LoadTranslations(bytes.NewReader(raw))
		if err != nil {
			return nil, &LoadError{File: FileTranslations, Message: "failed to decode translations", Cause: err}
		}
		lib.Translations = translator.Rules()
	}

	collect(CheckLibrary(lib, l.filter, l.limits))
	for _, warning := range warnings {
		l.logger.Warn("content warning", zap.String("warning", warning.String()))
	}

	reg := NewRegistry(lib)
	reg.warnings = warnings
	if reg.State() == StateLoadedEmpty {
		reg.loadErr = fmt.Sprintf("content source %s contains no content", l.source)
	}
	return reg, nil
}

package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"mediaprobe/internal/config"
	"mediaprobe/internal/deps"
	"mediaprobe/internal/logging"
	"mediaprobe/internal/media/ffprobe"
	"mediaprobe/internal/media/mediainfo"
	"mediaprobe/internal/media/record"
)

// DefaultTimeout bounds a single backend run.
const DefaultTimeout = 120 * time.Second

// Config holds the settings a Prober is built from.
type Config struct {
	// BackendPath is an explicit backend executable or program name. When set
	// Mode is ignored.
	BackendPath string
	Mode        Mode
	// Timeout limits each backend run. Zero disables the limit.
	Timeout     time.Duration
	CountFrames bool
	// RelativeName runs mediainfo from the file's directory and passes only
	// the base name.
	RelativeName bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeAuto,
		Timeout:      DefaultTimeout,
		CountFrames:  true,
		RelativeName: true,
	}
}

// ConfigFrom converts application configuration into prober settings.
func ConfigFrom(cfg *config.Config) (Config, error) {
	if cfg == nil {
		return DefaultConfig(), nil
	}
	mode, err := ParseMode(cfg.Backend.Mode)
	if err != nil {
		return Config{}, err
	}
	return Config{
		BackendPath:  cfg.Backend.Path,
		Mode:         mode,
		Timeout:      cfg.Timeout(),
		CountFrames:  cfg.FFprobe.CountFrames,
		RelativeName: cfg.MediaInfo.RelativePath,
	}, nil
}

// Option configures the prober.
type Option func(*Prober)

// WithLocator replaces the $PATH search used to discover backends.
func WithLocator(locator Locator) Option {
	return func(p *Prober) {
		if locator != nil {
			p.locator = locator
		}
	}
}

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(p *Prober) {
		if exec != nil {
			p.exec = exec
		}
	}
}

// WithLogger sets the logger probe outcomes are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prober) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Prober extracts records from media files. It is safe for concurrent use;
// every call runs its own backend process.
type Prober struct {
	cfg        Config
	locator    Locator
	exec       Executor
	logger     *slog.Logger
	backend    Backend
	backendErr error
}

// New constructs a Prober and resolves its backend. A backend that cannot be
// resolved is not an error here: every probe then yields nil and Backend
// reports why.
func New(cfg Config, opts ...Option) *Prober {
	p := &Prober{
		cfg:    cfg,
		exec:   commandExecutor{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.locator == nil {
		p.locator = deps.EnvLocator()
	}
	p.logger = logging.NewComponentLogger(p.logger, "prober")
	p.backend, p.backendErr = Select(cfg.BackendPath, cfg.Mode, p.locator)
	if p.backendErr == nil {
		p.logger.Debug("backend selected",
			logging.String(logging.FieldBackend, p.backend.Kind.String()),
			logging.String("backend_path", p.backend.Path),
		)
	}
	return p
}

// Backend returns the resolved backend, or the reason none is usable.
func (p *Prober) Backend() (Backend, error) {
	return p.backend, p.backendErr
}

// Probe returns the record for path. It returns nil when the file or the
// backend is missing, and an empty record when the backend fails or reports
// nothing recognizable.
func (p *Prober) Probe(ctx context.Context, path string) *record.Record {
	rec, _ := p.Inspect(ctx, path)
	return rec
}

// Inspect behaves like Probe and also returns the cause of any failure.
// Errors wrap one of the package sentinels; check them with errors.Is.
func (p *Prober) Inspect(ctx context.Context, path string) (*record.Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithProbeID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, p.logger).With(
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldBackend, p.backend.Kind.String()),
	)

	started := time.Now()
	rec, err := p.inspect(ctx, path)
	if err != nil {
		logger.Warn("probe failed",
			logging.Bool("has_record", rec != nil),
			logging.Error(err),
		)
		return rec, err
	}
	logger.Debug("probe complete",
		logging.Int("fields", len(rec.Entries())),
		logging.Duration("elapsed", time.Since(started)),
	)
	return rec, nil
}

func (p *Prober) inspect(ctx context.Context, path string) (*record.Record, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFileNotFound)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}
	if p.backendErr != nil {
		return nil, p.backendErr
	}
	if !deps.IsExecutable(p.backend.Path) {
		return nil, fmt.Errorf("%w: %s is missing or not executable", ErrBackendUnavailable, p.backend.Path)
	}

	empty := &record.Record{}
	cmd, err := p.command(path)
	if err != nil {
		return empty, err
	}

	runCtx := ctx
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	output, runErr := p.exec.Run(runCtx, cmd)
	if runErr != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return empty, fmt.Errorf("%w after %s: %w", ErrTimeout, p.cfg.Timeout, runErr)
		}
		if reported := reportedError(p.backend.Kind, output); reported != nil {
			return empty, fmt.Errorf("%w: %w", ErrBackendFailed, reported)
		}
		return empty, fmt.Errorf("%w: %s: %w", ErrBackendFailed, p.backend.Kind, runErr)
	}

	rec, err := Normalize(p.backend.Kind, output)
	if err != nil {
		return empty, err
	}
	return &rec, nil
}

// command builds the invocation for path according to the backend kind.
func (p *Prober) command(path string) (Command, error) {
	switch p.backend.Kind {
	case KindFFprobe:
		return Command{Binary: p.backend.Path, Args: ffprobe.Args(path, p.cfg.CountFrames)}, nil
	case KindMediaInfo:
		abs, err := filepath.Abs(path)
		if err != nil {
			return Command{}, fmt.Errorf("%w: resolve %s: %w", ErrBackendFailed, path, err)
		}
		if !p.cfg.RelativeName {
			return Command{Binary: p.backend.Path, Args: mediainfo.Args(abs)}, nil
		}
		name := filepath.Base(abs)
		if strings.HasPrefix(name, "-") {
			name = "." + string(filepath.Separator) + name
		}
		return Command{Binary: p.backend.Path, Args: mediainfo.Args(name), Dir: filepath.Dir(abs)}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownBackend, filepath.Base(p.backend.Path))
	}
}

// reportedError extracts the error object ffprobe prints with -show_error
// before exiting unsuccessfully.
func reportedError(kind Kind, output []byte) error {
	if kind != KindFFprobe || len(output) == 0 {
		return nil
	}
	text, err := decodeOutput(output)
	if err != nil {
		return nil
	}
	result, err := ffprobe.Decode(text)
	if err != nil || result.Error == nil {
		return nil
	}
	return result.Error
}

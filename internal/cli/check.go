package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sdejongh/wfam/internal/platform"
	"github.com/sdejongh/wfam/pkg/compare"
	"github.com/sdejongh/wfam/pkg/config"
	"github.com/sdejongh/wfam/pkg/expand"
	"github.com/sdejongh/wfam/pkg/index"
	"github.com/sdejongh/wfam/pkg/logging"
	"github.com/sdejongh/wfam/pkg/models"
	"github.com/sdejongh/wfam/pkg/output"
	"github.com/sdejongh/wfam/pkg/storage"
)

var (
	// ErrNoBaseDirs is returned when the base pattern resolves to no directory
	ErrNoBaseDirs = errors.New("base folder is not available")
	// ErrUnsortedMissing is returned when the unsorted root is not a directory
	ErrUnsortedMissing = errors.New("unsorted folder is not available")
)

// ExitError carries the exit code of a run that completed without a fatal error
type ExitError struct {
	Status models.RunStatus
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("check finished with status %s", e.Status)
}

// Code returns the process exit code
func (e *ExitError) Code() int {
	return e.Status.ExitCode()
}

// CheckFlags holds check command flags
type CheckFlags struct {
	Base       string
	Unsorted   string
	Ext        string
	Miss       string
	Diff       string
	ListFormat string
	Output     string
	NameCase   string
	NoProgress bool
}

var checkFlags CheckFlags

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "List unsorted files missing from the base folders",
		Long: `Check every file of the unsorted folder against the base folders.
A file is missing when no base file has its name, and different when base
files share its name but none has its size.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	AddCheckFlags(cmd)

	return cmd
}

// AddCheckFlags registers the check flags on cmd
func AddCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&checkFlags.Base, "base", "b", "", "base folder, '*' and '?' allowed in any segment (required)")
	cmd.Flags().StringVarP(&checkFlags.Unsorted, "unsorted", "u", "", "unsorted folder (required)")
	cmd.Flags().StringVarP(&checkFlags.Ext, "ext", "e", "", "comma separated extensions to check, e.g. \".jpg,.jpeg\"")
	cmd.Flags().StringVarP(&checkFlags.Miss, "miss", "m", "", "write the list of missing files to this file")
	cmd.Flags().StringVarP(&checkFlags.Diff, "diff", "d", "", "write the list of different files to this file")
	cmd.Flags().StringVar(&checkFlags.ListFormat, "format", "", "list file format: text, json")
	cmd.Flags().StringVarP(&checkFlags.Output, "output", "o", "", "report format: human, json")
	cmd.Flags().StringVar(&checkFlags.NameCase, "name-case", "", "file name matching: auto, sensitive, insensitive")
	cmd.Flags().BoolVar(&checkFlags.NoProgress, "no-progress", false, "disable the progress bar")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate flags
	if err := validateCheckFlags(); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create logger
	logger, err := createLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	report, err := executeCheck(ctx, cfg, logger, cmd.ErrOrStderr())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn(ctx, "check interrupted", nil)
			return &ExitError{Status: models.StatusCancelled}
		}
		return err
	}

	// Result lists are only produced when non-empty, like the report sections
	if checkFlags.Miss != "" && len(report.Result.Missing) > 0 {
		if err := output.WriteList(platform.ExpandEnv(checkFlags.Miss), report.Result.Missing, cfg.Check.ListFormat); err != nil {
			return err
		}
	}
	if checkFlags.Diff != "" && len(report.Result.Different) > 0 {
		if err := output.WriteList(platform.ExpandEnv(checkFlags.Diff), report.Result.Different, cfg.Check.ListFormat); err != nil {
			return err
		}
	}

	if !cfg.Output.Quiet {
		formatter, err := output.NewFormatter(cfg.Output.Format, cfg.Output.Color && logging.IsTerminal(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		if err := formatter.Complete(cmd.OutOrStdout(), report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if report.Status != models.StatusAllPresent {
		return &ExitError{Status: report.Status}
	}
	return nil
}

// executeCheck expands the base pattern, indexes the base folders and
// classifies the unsorted tree
func executeCheck(ctx context.Context, cfg *config.Config, logger logging.Logger, progressOut io.Writer) (*models.Report, error) {
	report := &models.Report{
		RunID:        uuid.New().String(),
		BasePattern:  platform.ExpandEnv(checkFlags.Base),
		UnsortedPath: platform.ExpandEnv(checkFlags.Unsorted),
		Extensions:   models.NewExtensionFilter(cfg.Check.Extensions),
		NameCase:     cfg.Check.NameCase,
		StartTime:    time.Now(),
	}
	logger = logger.WithFields(logging.Fields{"run_id": report.RunID})
	logger.Info(ctx, "WhichFilesAreMissing console utility", nil)

	backend := storage.NewHost()
	defer backend.Close()

	dirs, err := expand.NewExpander(backend, logger).Expand(ctx, report.BasePattern)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w. Value provided: %s", ErrNoBaseDirs, report.BasePattern)
	}
	report.BaseDirs = dirs

	info, err := backend.Stat(ctx, report.UnsortedPath)
	if err != nil || !info.IsDir {
		return nil, fmt.Errorf("%w. Value provided: %s", ErrUnsortedMissing, report.UnsortedPath)
	}

	idx, err := index.NewIndexer(backend, cfg.Check.NameCase, logger).Index(ctx, dirs, report.Extensions)
	if err != nil {
		return nil, err
	}
	report.IndexedNames = idx.Len()
	report.IndexedFiles = idx.Files()

	comparator := compare.NewTreeComparator(backend, logger)
	if cfg.Output.Progress && !cfg.Output.Quiet && output.ShouldShowProgress(progressOut) {
		comparator.SetProgress(output.NewBarProgress(progressOut, "Checking"))
	}

	result, err := comparator.Compare(ctx, idx, report.UnsortedPath, report.Extensions)
	if err != nil {
		return nil, err
	}

	report.Result = result
	report.Status = models.StatusFor(result)
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	logger.Info(ctx, "check completed", logging.Fields{
		"status":    string(report.Status),
		"missing":   len(result.Missing),
		"different": len(result.Different),
		"duration":  report.Duration.String(),
	})

	return report, nil
}

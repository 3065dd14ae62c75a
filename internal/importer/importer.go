package importer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"signdex/internal/config"
	"signdex/internal/dataset"
	"signdex/internal/fileutil"
	"signdex/internal/glossary"
	"signdex/internal/ledger"
	"signdex/internal/logging"
	"signdex/internal/manifest"
	"signdex/internal/services"
	"signdex/internal/textutil"
)

// Entry describes one clip placed in the assets directory.
type Entry struct {
	Gloss    string        `json:"gloss"`
	Tier     glossary.Tier `json:"tier"`
	Source   string        `json:"source"`
	DestFile string        `json:"dest_file"`
	Skipped  bool          `json:"skipped,omitempty"`
}

// Report summarizes a completed import run.
type Report struct {
	RunID       string         `json:"run_id"`
	DatasetPath string         `json:"dataset_path"`
	SourceTag   string         `json:"source"`
	Layout      dataset.Layout `json:"layout"`
	IndexSize   int            `json:"index_size"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
	Copied      []Entry        `json:"copied"`
	Missing     []string       `json:"missing"`
}

// Importer executes import runs against a configured assets directory.
type Importer struct {
	cfg    *config.Config
	store  *ledger.Store
	logger *slog.Logger
}

// New constructs an importer. The ledger store may be nil, in which case runs
// are not recorded in history.
func New(cfg *config.Config, store *ledger.Store, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{
		cfg:    cfg,
		store:  store,
		logger: logger.With(logging.String("component", "importer")),
	}
}

// Run imports the configured vocabulary from the dataset at root.
func (im *Importer) Run(ctx context.Context, root string) (Report, error) {
	report := Report{
		RunID:     uuid.NewString(),
		SourceTag: im.cfg.Dataset.SourceTag,
		StartedAt: time.Now().UTC(),
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return report, services.Wrap(services.ErrConfiguration, "importing", "resolve dataset path", root, err)
	}
	report.DatasetPath = absRoot

	if err := im.cfg.EnsureDirectories(); err != nil {
		return report, services.Wrap(services.ErrConfiguration, "importing", "prepare directories", "", err)
	}

	lock := flock.New(filepath.Join(im.cfg.Paths.LogDir, "signdex.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return report, services.Wrap(services.ErrConfiguration, "importing", "acquire lock", "", err)
	}
	if !locked {
		return report, services.Wrap(services.ErrConfiguration, "importing", "acquire lock",
			"another signdex import is already running", nil)
	}
	defer func() { _ = lock.Unlock() }()

	im.logger.Info("starting import",
		logging.String("run_id", report.RunID),
		logging.String("dataset", absRoot),
		logging.String("assets", im.cfg.Paths.AssetsDir),
	)

	idx, err := dataset.Build(absRoot, im.cfg.Dataset, im.logger)
	if err != nil {
		return report, err
	}
	report.Layout = idx.Layout()
	report.IndexSize = idx.Len()
	im.logger.Info("indexed dataset",
		logging.String("layout", string(idx.Layout())),
		logging.Int("glosses", idx.Len()),
	)

	result := glossary.Resolve(im.cfg.Vocabulary.Glosses, idx)
	for _, res := range result.Resolutions {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !res.Resolved {
			im.logger.Info("no match for gloss", logging.String("gloss", res.Target))
			report.Missing = append(report.Missing, res.Target)
			continue
		}
		entry, err := im.copyClip(res)
		if err != nil {
			// Clip disappeared or became unreadable after indexing;
			// record the gloss as missing and keep going.
			im.logger.Warn("copy failed",
				logging.String("gloss", res.Target),
				logging.String("source", res.Video.Path),
				logging.Error(err),
			)
			report.Missing = append(report.Missing, res.Target)
			continue
		}
		im.logger.Info("imported clip",
			logging.String("gloss", entry.Gloss),
			logging.String("tier", string(entry.Tier)),
			logging.String("dest", entry.DestFile),
			logging.Bool("skipped", entry.Skipped),
		)
		report.Copied = append(report.Copied, entry)
	}

	report.FinishedAt = time.Now().UTC()
	im.writeArtifacts(idx, &report)
	im.recordRun(ctx, report)

	im.logger.Info("import finished",
		logging.Int("copied", len(report.Copied)),
		logging.Int("missing", len(report.Missing)),
		logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

func (im *Importer) copyClip(res glossary.Resolution) (Entry, error) {
	entry := Entry{
		Gloss:    res.Target,
		Tier:     res.Tier,
		Source:   res.Video.Path,
		DestFile: textutil.AssetFileName(res.Target),
	}
	dest := filepath.Join(im.cfg.Paths.AssetsDir, entry.DestFile)

	if !im.cfg.Import.OverwriteExisting {
		if _, err := os.Stat(dest); err == nil {
			entry.Skipped = true
			return entry, nil
		}
	}

	copyFn := fileutil.CopyFile
	if im.cfg.Import.VerifyCopies {
		copyFn = fileutil.CopyFileVerified
	}
	if err := copyFn(res.Video.Path, dest); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// writeArtifacts drops the manifest and gloss listing beside the clips. Both
// are best-effort.
func (im *Importer) writeArtifacts(idx *dataset.Index, report *Report) {
	copied := make([]string, 0, len(report.Copied))
	for _, entry := range report.Copied {
		copied = append(copied, entry.Gloss)
	}

	m := manifest.New(report.SourceTag, report.RunID, copied, report.Missing)
	if err := m.Write(im.cfg.Paths.AssetsDir); err != nil {
		im.logger.Warn("manifest write failed", logging.Error(err))
	}
	if err := manifest.WriteGlossList(im.cfg.Paths.AssetsDir, idx.Glosses()); err != nil {
		im.logger.Warn("gloss listing write failed", logging.Error(err))
	}
}

// recordRun persists the run in the ledger. Best-effort.
func (im *Importer) recordRun(ctx context.Context, report Report) {
	if im.store == nil {
		return
	}
	run := ledger.Run{
		RunID:       report.RunID,
		DatasetPath: report.DatasetPath,
		SourceTag:   report.SourceTag,
		Layout:      string(report.Layout),
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Copied:      len(report.Copied),
		Missing:     len(report.Missing),
	}
	outcomes := make([]ledger.Outcome, 0, len(report.Copied)+len(report.Missing))
	for _, entry := range report.Copied {
		outcomes = append(outcomes, ledger.Outcome{
			RunID:      report.RunID,
			Gloss:      entry.Gloss,
			Status:     ledger.StatusCopied,
			Tier:       string(entry.Tier),
			SourcePath: entry.Source,
			DestFile:   entry.DestFile,
		})
	}
	for _, gloss := range report.Missing {
		outcomes = append(outcomes, ledger.Outcome{
			RunID:  report.RunID,
			Gloss:  gloss,
			Status: ledger.StatusMissing,
		})
	}
	if err := im.store.RecordRun(ctx, run, outcomes); err != nil && !errors.Is(err, context.Canceled) {
		im.logger.Warn("ledger write failed", logging.Error(err))
	}
}

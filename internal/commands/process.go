package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ekstre-dev/ekstre/internal/batch"
	"github.com/ekstre-dev/ekstre/internal/config"
	"github.com/ekstre-dev/ekstre/internal/importer"
	"github.com/ekstre-dev/ekstre/internal/model"
	"github.com/ekstre-dev/ekstre/internal/runlog"
	"github.com/ekstre-dev/ekstre/internal/statement"
	"github.com/ekstre-dev/ekstre/internal/workbook"
)

const cutoffLayout = "2006-01-02"

func newProcessCommand() *cobra.Command {
	var mode string
	var startDate string
	var merge bool
	var out string
	var configPath string

	cmd := &cobra.Command{
		Use:   "process <file|directory>...",
		Short: "Process statement files into reconciled workbooks",
		Long: `Process reads factoring account statements (.xlsx or .xls), runs the
reconciliation pipeline (subtotal confirmation, amount splitting,
same-day collection aggregation and, in dated mode, carry-forward
resolution) and writes .xlsx artifacts with a live running-balance
formula chain.

A failure on one file never aborts the others; the run ends with a
summary of successes, warnings and errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args, statement.Mode(mode), startDate, merge, out, configPath)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(statement.ModeGeneral), `processing mode: "genel" or "tarihli"`)
	cmd.Flags().StringVar(&startDate, "start-date", "", "statement start date (YYYY-MM-DD, required with --mode tarihli)")
	cmd.Flags().BoolVar(&merge, "merge", false, "merge all statements into one workbook, one sheet per file")
	cmd.Flags().StringVar(&out, "out", "", "output file (single input or --merge) or output directory")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: "+config.FileName+" under the user config dir)")

	return cmd
}

func runProcess(args []string, mode statement.Mode, startDate string, merge bool, out, configPath string) error {
	cfgDir, cfgDirErr := config.Dir()
	if configPath == "" && cfgDirErr == nil {
		configPath = filepath.Join(cfgDir, config.FileName)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Configuration errors surface before any file is touched.
	var cutoff time.Time
	switch mode {
	case statement.ModeGeneral:
	case statement.ModeDated:
		if startDate == "" {
			return statement.ErrCutoffRequired
		}
		parsed, err := time.Parse(cutoffLayout, startDate)
		if err != nil {
			return fmt.Errorf("parsing start date %q: %w", startDate, err)
		}
		cutoff = parsed
	default:
		return fmt.Errorf("bilinmeyen işlem modu: %q", mode)
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("Lütfen önce bir veya daha fazla dosya seçin!")
	}

	outcome := batch.Run(files, batch.Options{
		Mode:      mode,
		Cutoff:    cutoff,
		HeaderRow: cfg.HeaderRow,
		Progress: func(i, n int, name string) {
			fmt.Printf("İşleniyor (%d/%d): %s\n", i, n, name)
		},
	})

	summary := outcome.Summarize()

	if len(outcome.Results) == 0 {
		for _, line := range summary.ErrorLines {
			fmt.Fprintln(os.Stderr, line)
		}
		return errors.New("Hiçbir dosya işlenemedi.")
	}

	outDir, err := writeArtifacts(outcome, cfg, merge && len(files) > 1, out)
	if err != nil {
		return err
	}

	printSummary(summary, outDir)

	if cfgDirErr == nil {
		if err := runlog.Append(cfgDir, logEntries(outcome)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
		}
	}

	// Remember the directories for the next run.
	cfg.SourceDir = filepath.Dir(files[0])
	cfg.OutputDir = outDir
	if configPath != "" {
		if err := config.Save(configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save config: %v\n", err)
		}
	}

	return nil
}

// collectFiles expands directory arguments into their statement files
// and de-duplicates the combined list. Nonexistent paths are kept so
// the batch reports them per file instead of failing the invocation.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			found, err := importer.Scan(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		files = append(files, arg)
	}

	sort.Strings(files)
	deduped := files[:0]
	var prev string
	for i, f := range files {
		if i > 0 && f == prev {
			continue
		}
		deduped = append(deduped, f)
		prev = f
	}
	return deduped, nil
}

// writeArtifacts writes the output workbook(s) and returns the
// directory holding them.
func writeArtifacts(outcome batch.Outcome, cfg *config.Config, merge bool, out string) (string, error) {
	defaultDir := cfg.OutputDir
	if defaultDir == "" {
		defaultDir = "."
	}

	switch {
	case merge:
		path := out
		if path == "" || isDir(path) {
			dir := defaultDir
			if path != "" {
				dir = path
			}
			path = filepath.Join(dir, workbook.MergedOutputName)
		}
		if err := workbook.Write(path, outcome.Results, true); err != nil {
			return "", err
		}
		return filepath.Dir(path), nil

	case len(outcome.Results) == 1:
		path := out
		if path == "" || isDir(path) {
			dir := defaultDir
			if path != "" {
				dir = path
			}
			path = filepath.Join(dir, workbook.OutputName(outcome.Files[0]))
		}
		if err := workbook.Write(path, outcome.Results, false); err != nil {
			return "", err
		}
		return filepath.Dir(path), nil

	default:
		dir := out
		if dir == "" {
			dir = defaultDir
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
		for i, res := range outcome.Results {
			path := filepath.Join(dir, workbook.OutputName(outcome.Files[i]))
			if err := workbook.Write(path, []model.Result{res}, false); err != nil {
				return "", err
			}
		}
		return dir, nil
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func printSummary(s batch.Summary, outDir string) {
	fmt.Printf("İşlem tamamlandı. %d başarılı, %d hatalı.\n", s.Succeeded, s.Failed)

	if len(s.WarningBlocks) > 0 {
		fmt.Println("\nBazı dosyalarda uyarılar bulundu:")
		for _, block := range s.WarningBlocks {
			fmt.Println(block)
		}
	}

	if len(s.ErrorLines) > 0 {
		fmt.Printf("\n%d dosyada hata oluştu:\n", s.Failed)
		for _, line := range s.ErrorLines {
			fmt.Println(line)
		}
	}

	fmt.Printf("\nÇıktı klasörü: %s\n", outDir)
}

func logEntries(outcome batch.Outcome) []runlog.Entry {
	now := time.Now()
	entries := make([]runlog.Entry, 0, len(outcome.Results)+len(outcome.Errors))
	for i, res := range outcome.Results {
		entries = append(entries, runlog.Entry{
			Timestamp: now,
			File:      filepath.Base(outcome.Files[i]),
			Status:    runlog.StatusOK,
			Details:   strings.Join(res.Warnings, "; "),
		})
	}
	for _, fe := range outcome.Errors {
		entries = append(entries, runlog.Entry{
			Timestamp: now,
			File:      fe.File,
			Status:    runlog.StatusError,
			Details:   fe.Message,
		})
	}
	return entries
}

package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/knave/internal/model"
)

const (
	indexFileName   = "_index.yaml"
	reportExtension = ".yaml"
)

// ErrEmptyReportsPath is returned when a report operation gets no directory.
var ErrEmptyReportsPath = errors.New("reports path is empty")

// ReportStore persists and retrieves per-file rename reports.
type ReportStore interface {
	// SaveReports writes one YAML file per report into dir.
	SaveReports(dir m.Path, reports []m.Report) error
	// LoadReports reads every report stored in dir, sorted by path.
	LoadReports(dir m.Path) ([]m.Report, error)
	// RegenerateIndex rewrites the _index.yaml summary of dir.
	RegenerateIndex(dir m.Path) error
	// CleanReports deletes the reports of the given sources, or all reports
	// when sources is empty.
	CleanReports(dir m.Path, sources []m.Source) error
}

// LocalReportStore stores reports as YAML files on disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type indexEntry struct {
	Path    m.Path          `yaml:"path"`
	Status  m.RewriteStatus `yaml:"status"`
	Renames int             `yaml:"renames"`
	Report  string          `yaml:"report"`
}

type indexFile struct {
	TotalFiles     int          `yaml:"total_files"`
	RenamedFiles   int          `yaml:"renamed_files"`
	UnchangedFiles int          `yaml:"unchanged_files"`
	IgnoredFiles   int          `yaml:"ignored_files"`
	FailedFiles    int          `yaml:"failed_files"`
	TotalRenames   int          `yaml:"total_renames"`
	Files          []indexEntry `yaml:"files"`
}

// SaveReports writes each report to <hash>.yaml, where hash is derived from
// the file path, so a later run over the same file replaces its report.
func (rs *LocalReportStore) SaveReports(dir m.Path, reports []m.Report) error {
	if dir == "" {
		return ErrEmptyReportsPath
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", report.Path, err)
		}

		name := filepath.Join(string(dir), rs.reportFileName(report.Path))
		if err := os.WriteFile(name, data, 0o600); err != nil {
			return fmt.Errorf("write report for %s: %w", report.Path, err)
		}
	}

	return nil
}

// LoadReports reads every report file of dir. A missing directory yields no
// reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	if dir == "" {
		return nil, ErrEmptyReportsPath
	}

	names, err := rs.reportFiles(dir)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", name, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", name, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	return reports, nil
}

// RegenerateIndex summarises the reports of dir into _index.yaml. The index
// is removed when no reports remain.
func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	reports, err := rs.LoadReports(dir)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(string(dir), indexFileName)

	if len(reports) == 0 {
		if err := os.Remove(indexPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove index: %w", err)
		}

		return nil
	}

	idx := indexFile{TotalFiles: len(reports)}

	for _, report := range reports {
		switch report.Status {
		case m.StatusRenamed:
			idx.RenamedFiles++
		case m.StatusNothingToRename:
			idx.UnchangedFiles++
		case m.StatusIgnored:
			idx.IgnoredFiles++
		case m.StatusFailed:
			idx.FailedFiles++
		}

		idx.TotalRenames += len(report.Renames)
		idx.Files = append(idx.Files, indexEntry{
			Path:    report.Path,
			Status:  report.Status,
			Renames: len(report.Renames),
			Report:  rs.reportFileName(report.Path),
		})
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := os.WriteFile(indexPath, data, 0o600); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	return nil
}

// CleanReports removes stored reports and regenerates the index.
func (rs *LocalReportStore) CleanReports(dir m.Path, sources []m.Source) error {
	if dir == "" {
		return ErrEmptyReportsPath
	}

	if _, err := os.Stat(string(dir)); os.IsNotExist(err) {
		return nil
	}

	var names []string

	if len(sources) == 0 {
		all, err := rs.reportFiles(dir)
		if err != nil {
			return err
		}

		names = all
	} else {
		for _, source := range sources {
			if source.Origin == nil {
				continue
			}

			names = append(names, rs.reportFileName(displayPath(source)))
		}
	}

	for _, name := range names {
		if err := os.Remove(filepath.Join(string(dir), name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove report %s: %w", name, err)
		}
	}

	return rs.RegenerateIndex(dir)
}

func (rs *LocalReportStore) reportFiles(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var names []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, reportExtension) {
			continue
		}

		names = append(names, name)
	}

	return names, nil
}

// reportFileName returns the first 16 hex chars of the SHA-256 of path.
func (rs *LocalReportStore) reportFileName(path m.Path) string {
	sum := sha256.Sum256([]byte(path))

	return fmt.Sprintf("%x", sum[:8]) + reportExtension
}

// displayPath is the path recorded in reports for source.
func displayPath(source m.Source) m.Path {
	if source.Origin.ShortPath != "" {
		return source.Origin.ShortPath
	}

	return source.Origin.Path
}

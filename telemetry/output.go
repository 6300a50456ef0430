package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/rubble/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir        string
	statsFile  *os.File
	framesFile *os.File

	statsHeaderWritten  bool
	framesHeaderWritten bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil
// if dir is empty (output disabled); a nil manager is safe to use.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	f, err = os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.framesFile = f

	return om, nil
}

// WriteConfig saves the effective configuration next to the CSV logs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends one window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}
	return nil
}

// WriteFrames appends one frame-time summary record to frames.csv.
func (om *OutputManager) WriteFrames(summary FrameSummary) error {
	if om == nil {
		return nil
	}

	records := []FrameSummary{summary}
	if !om.framesHeaderWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
		om.framesHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() {
	if om == nil {
		return
	}
	om.statsFile.Close()
	om.framesFile.Close()
}

package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cityscout/internal/domain"
	"cityscout/internal/eventbus"

	"github.com/charmbracelet/log"
)

// BuiltinSource names the embedded dataset in logs and events
const BuiltinSource = "builtin"

//go:embed data/default.toml
var builtinDataset []byte

// Loader reads datasets and announces them on the event bus
type Loader struct {
	bus    eventbus.EventBus
	logger *log.Logger
}

// NewLoader creates a loader. bus may be nil.
func NewLoader(bus eventbus.EventBus) *Loader {
	return &Loader{
		bus:    bus,
		logger: log.WithPrefix("catalog"),
	}
}

// Builtin parses the embedded dataset
func Builtin() (*Dataset, error) {
	return Parse(builtinDataset, BuiltinSource)
}

// Load reads the dataset at path: a single file, a directory of *.toml
// files, or the embedded dataset when path is empty.
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {
	ds, err := l.read(ctx, path)
	if err != nil {
		if l.bus != nil {
			l.bus.Publish(eventbus.ErrorEvent{Message: "failed to load dataset", Err: err})
		}
		return nil, err
	}

	for _, skipped := range ds.Skipped {
		l.logger.Warn("skipping malformed record", "record", skipped.String())
	}
	if len(ds.Cities) == 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(ds.Sources, ", "), domain.ErrEmptyDataset)
	}

	l.logger.Info("dataset loaded", "cities", len(ds.Cities), "events", len(ds.Events), "skipped", len(ds.Skipped))
	if l.bus != nil {
		l.bus.Publish(eventbus.DatasetLoadedEvent{
			Cities:  len(ds.Cities),
			Events:  len(ds.Events),
			Skipped: len(ds.Skipped),
			Source:  strings.Join(ds.Sources, ", "),
		})
	}
	return ds, nil
}

func (l *Loader) read(ctx context.Context, path string) (*Dataset, error) {
	if path == "" {
		return Builtin()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	if !info.IsDir() {
		return readFile(path)
	}

	files, err := Discover(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("discover datasets in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no *.toml datasets in %s: %w", path, domain.ErrEmptyDataset)
	}

	merged := &Dataset{}
	for _, file := range files {
		ds, err := readFile(file)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("read dataset", "file", file, "cities", len(ds.Cities), "events", len(ds.Events))
		merged.Merge(ds)
	}
	return merged, nil
}

func readFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(data, path)
}

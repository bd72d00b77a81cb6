package catalog

import (
	"errors"
	"fmt"
	"strings"

	"cityscout/internal/domain"
	"cityscout/internal/logic"

	"github.com/pelletier/go-toml/v2"
)

// Dataset is the reference data read from one or more TOML files
type Dataset struct {
	Cities  []domain.City
	Events  []domain.Event
	Skipped []SkippedRecord
	Sources []string
}

// SkippedRecord describes a record that was dropped while loading
type SkippedRecord struct {
	Source string
	Table  string // "cities" or "events"
	Index  int
	Reason string
}

func (s SkippedRecord) String() string {
	return fmt.Sprintf("%s: %s[%d]: %s", s.Source, s.Table, s.Index, s.Reason)
}

// rawDataset keeps records untyped so one bad record cannot fail the whole file
type rawDataset struct {
	Cities []map[string]any `toml:"cities"`
	Events []map[string]any `toml:"events"`
}

// Parse decodes a dataset. Only TOML syntax errors are returned; records
// that are incomplete or ill-typed are skipped and listed in Skipped.
func Parse(data []byte, source string) (*Dataset, error) {
	var raw rawDataset
	if err := toml.Unmarshal(data, &raw); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse %s:%d:%d: %w", source, row, col, err)
		}
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	ds := &Dataset{Sources: []string{source}}
	for i, rec := range raw.Cities {
		city, err := cityFromRecord(rec)
		if err != nil {
			ds.Skipped = append(ds.Skipped, SkippedRecord{Source: source, Table: "cities", Index: i, Reason: err.Error()})
			continue
		}
		ds.Cities = append(ds.Cities, city)
	}
	for i, rec := range raw.Events {
		event, err := eventFromRecord(rec)
		if err != nil {
			ds.Skipped = append(ds.Skipped, SkippedRecord{Source: source, Table: "events", Index: i, Reason: err.Error()})
			continue
		}
		ds.Events = append(ds.Events, event)
	}
	return ds, nil
}

// Merge appends other to d. Duplicates are resolved later by the stores.
func (d *Dataset) Merge(other *Dataset) {
	d.Cities = append(d.Cities, other.Cities...)
	d.Events = append(d.Events, other.Events...)
	d.Skipped = append(d.Skipped, other.Skipped...)
	d.Sources = append(d.Sources, other.Sources...)
}

// Directory builds the in-memory city directory
func (d *Dataset) Directory() *logic.MemoryDirectory {
	return logic.NewMemoryDirectory(d.Cities)
}

// EventStore builds the in-memory event store
func (d *Dataset) EventStore() *logic.MemoryEventStore {
	return logic.NewMemoryEventStore(d.Events)
}

func cityFromRecord(rec map[string]any) (domain.City, error) {
	name, err := requiredString(rec, "name")
	if err != nil {
		return domain.City{}, err
	}
	country, err := optionalString(rec, "country")
	if err != nil {
		return domain.City{}, err
	}
	count, err := optionalInt(rec, "events")
	if err != nil {
		return domain.City{}, err
	}
	if count < 0 {
		return domain.City{}, fmt.Errorf("events must not be negative (got %d)", count)
	}
	return domain.City{Name: name, Country: country, EventCount: count}, nil
}

func eventFromRecord(rec map[string]any) (domain.Event, error) {
	var (
		e   domain.Event
		err error
	)

	if _, ok := rec["id"]; !ok {
		return e, errors.New("missing id")
	}
	if e.ID, err = optionalInt(rec, "id"); err != nil {
		return e, err
	}
	if e.Name, err = requiredString(rec, "name"); err != nil {
		return e, err
	}
	if e.City, err = requiredString(rec, "city"); err != nil {
		return e, err
	}

	category, err := requiredString(rec, "category")
	if err != nil {
		return e, err
	}
	var known bool
	if e.Category, known = domain.ParseCategory(logic.Normalize(category)); !known {
		return e, fmt.Errorf("unknown category %q", category)
	}

	if e.Date, err = dateField(rec, "date"); err != nil {
		return e, err
	}
	if e.Location, err = optionalString(rec, "location"); err != nil {
		return e, err
	}
	if e.Description, err = optionalString(rec, "description"); err != nil {
		return e, err
	}
	if e.Image, err = optionalString(rec, "image"); err != nil {
		return e, err
	}
	if v, ok := rec["featured"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return e, fmt.Errorf("featured must be a boolean (got %T)", v)
		}
		e.Featured = b
	}
	return e, nil
}

func requiredString(rec map[string]any, key string) (string, error) {
	s, err := optionalString(rec, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("missing %s", key)
	}
	return s, nil
}

func optionalString(rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", nil
	}
	s, isString := v.(string)
	if !isString {
		return "", fmt.Errorf("%s must be a string (got %T)", key, v)
	}
	return strings.TrimSpace(s), nil
}

func optionalInt(rec map[string]any, key string) (int, error) {
	v, ok := rec[key]
	if !ok {
		return 0, nil
	}
	n, isInt := v.(int64)
	if !isInt {
		return 0, fmt.Errorf("%s must be an integer (got %T)", key, v)
	}
	return int(n), nil
}

// dateField accepts either a quoted "YYYY-MM-DD" string or a TOML local date
func dateField(rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	var s string
	switch d := v.(type) {
	case string:
		s = strings.TrimSpace(d)
	case toml.LocalDate:
		s = d.String()
	default:
		return "", fmt.Errorf("%s must be a date (got %T)", key, v)
	}
	if !logic.ValidDate(s) {
		return "", fmt.Errorf("%s %q is not a YYYY-MM-DD date", key, s)
	}
	return s, nil
}

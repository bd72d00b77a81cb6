// Command cityquery runs the suggestion engine and event filter without the
// terminal UI, for scripting and quick checks against a dataset.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"cityscout/internal/catalog"
	"cityscout/internal/config"
	"cityscout/internal/domain"
	"cityscout/internal/logic"

	"github.com/charmbracelet/log"
)

const usage = `usage: cityquery [-data path] [-config path] <command> [args]

commands:
  suggest <text>                         rank cities for typed text
  filter [-city c] [-category c] [-date YYYY-MM-DD]
                                         list matching events
  cities [prefix]                        list directory cities
`

func main() {
	var (
		dataPath   string
		configPath string
	)
	flag.StringVar(&dataPath, "data", "", "Dataset file or directory of *.toml datasets")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfigService(configPath).Load()
	if err != nil {
		log.Warn("using default config", "error", err)
		cfg = config.DefaultConfig()
	}
	if dataPath == "" {
		dataPath = cfg.Data.Path
	}

	dataset, err := catalog.NewLoader(nil).Load(context.Background(), dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	switch args[0] {
	case "suggest":
		err = suggest(os.Stdout, dataset.Directory(), cfg.Suggest, strings.Join(args[1:], " "))
	case "filter":
		err = filter(os.Stdout, dataset, args[1:])
	case "cities":
		prefix := ""
		if len(args) > 1 {
			prefix = args[1]
		}
		err = cities(os.Stdout, dataset.Directory(), prefix)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func suggest(w io.Writer, directory logic.Directory, settings config.SuggestSettings, text string) error {
	var list domain.SuggestionList
	switch {
	case logic.Normalize(text) == "":
		list = logic.PopularCities(directory.Cities(), settings.MaxSuggestions)
	case utf8.RuneCountInString(logic.Normalize(text)) >= settings.MinLength:
		list = logic.Rank(text, directory.Cities(), settings.MaxSuggestions)
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no suggestions")
		return err
	}
	for _, s := range list {
		name := s.City.Name
		if s.Span != nil {
			name = name[:s.Span.Start] + "[" + name[s.Span.Start:s.Span.End] + "]" + name[s.Span.End:]
		}
		if _, err := fmt.Fprintf(w, "%-24s %-16s %d events\n", name, s.City.Country, s.City.EventCount); err != nil {
			return err
		}
	}
	return nil
}

func filter(w io.Writer, dataset *catalog.Dataset, args []string) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	var criteria domain.FilterCriteria
	fs.StringVar(&criteria.City, "city", "", "City name")
	fs.StringVar(&criteria.Category, "category", "", "Event category")
	fs.StringVar(&criteria.Date, "date", "", "Event date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// flags take display text, the filter compares enum values
	criteria.Category = logic.Normalize(criteria.Category)
	if criteria.Date != "" && !logic.ValidDate(criteria.Date) {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", criteria.Date)
	}

	result := logic.Filter(dataset.EventStore().Events(), criteria, dataset.Directory())
	if len(result.Events) == 0 {
		msg, hint := logic.NoResultsMessage(criteria, result)
		_, err := fmt.Fprintf(w, "%s\n%s\n", msg, hint)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", logic.ResultsTitle(criteria), logic.ResultsSummary(len(result.Events), criteria)); err != nil {
		return err
	}
	for _, e := range result.Events {
		if _, err := fmt.Fprintf(w, "%4d  %-10s %-18s %s (%s)\n", e.ID, e.Date, logic.CategoryTitle(string(e.Category)), e.Name, e.City); err != nil {
			return err
		}
	}
	return nil
}

func cities(w io.Writer, directory *logic.MemoryDirectory, prefix string) error {
	list := directory.Cities()
	if prefix != "" {
		list = directory.WithPrefix(prefix)
	}
	for _, c := range list {
		if _, err := fmt.Fprintf(w, "%-24s %-16s %d\n", c.Name, c.Country, c.EventCount); err != nil {
			return err
		}
	}
	return nil
}

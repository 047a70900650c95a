package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/clipboard"
	"github.com/hienpham123/tabletify/internal/config"
	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/history"
	"github.com/hienpham123/tabletify/internal/initcmd"
	"github.com/hienpham123/tabletify/internal/settings"
	"github.com/hienpham123/tabletify/internal/source"
	"github.com/hienpham123/tabletify/internal/theme"
	"github.com/hienpham123/tabletify/internal/ui"
	"github.com/hienpham123/tabletify/internal/watcher"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type repeatableFlag []string

func (f *repeatableFlag) String() string { return strings.Join(*f, ",") }
func (f *repeatableFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var (
		filePath     string
		sqlitePath   string
		tableName    string
		demo         bool
		demoRows     int
		pageSize     int
		overrides    repeatableFlag
		showRecent   bool
		showVersion  bool
		initDir      string
		initTemplate string
		initForce    bool
		initList     bool
	)

	flag.StringVar(&filePath, "file", "", "Path to a CSV file to open")
	flag.StringVar(&sqlitePath, "sqlite", "", "Path to a SQLite database to open")
	flag.StringVar(&tableName, "table", "", "Table to load from the SQLite database")
	flag.BoolVar(&demo, "demo", false, "Open a generated demo dataset")
	flag.IntVar(&demoRows, "rows", 500, "Row count for the demo dataset")
	flag.IntVar(&pageSize, "page", -1, "Page size override, 0 disables pagination")
	flag.Var(&overrides, "set", "Override a setting, e.g. -set grid.page_size=100 (repeatable)")
	flag.BoolVar(&showRecent, "recent", false, "Print recently opened sources and exit")
	flag.BoolVar(&showVersion, "version", false, "Show tabletify version")
	flag.StringVar(&initDir, "init", "", "Scaffold a starter workspace into the given directory")
	flag.StringVar(&initTemplate, "init-template", "", "Scaffold template name")
	flag.BoolVar(&initForce, "init-force", false, "Overwrite existing files when scaffolding")
	flag.BoolVar(&initList, "init-list", false, "List scaffold templates and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("tabletify %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if initList || initDir != "" {
		err := initcmd.Run(initcmd.Opt{
			Dir:      initDir,
			Template: initTemplate,
			Force:    initForce,
			List:     initList,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	recent := history.NewRecentStore(config.RecentPath(), 20)
	if err := recent.Load(); err != nil {
		log.Printf("recent sources load error: %v", err)
	}
	if showRecent {
		printRecent(recent)
		return
	}

	cfg, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings load error: %v", err)
	}
	applier := settings.New(
		settings.GridHandler(&cfg),
		settings.ClipboardHandler(&cfg),
		settings.UIHandler(&cfg),
	)
	leftover, err := applier.ApplyAll(settings.ParsePairs(overrides))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	for key := range leftover {
		log.Printf("unknown setting %q ignored", key)
	}
	if pageSize >= 0 {
		cfg.Grid.PageSize = pageSize
	}

	th := theme.DefaultTheme()
	theme.ApplyAccent(&th, cfg.UI.Accent)

	if filePath == "" && sqlitePath == "" && !demo && flag.NArg() > 0 {
		filePath = flag.Arg(0)
	}

	src, err := resolveSource(filePath, sqlitePath, tableName, demo, demoRows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ds, err := src.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if src.path != "" {
		err := recent.Touch(history.Entry{
			Path:     src.path,
			Kind:     src.kind,
			Table:    src.table,
			Rows:     ds.Len(),
			OpenedAt: time.Now(),
		})
		if err != nil {
			log.Printf("recent sources save error: %v", err)
		}
	}

	var port clipboard.Port
	if cfg.Clipboard.SystemEnabled {
		port = clipboard.SystemPort{}
	}

	var watch *watcher.Watcher
	if src.path != "" {
		watch = watcher.New(watcher.Options{})
		if data, err := os.ReadFile(src.path); err == nil {
			watch.Track(src.path, data)
		}
		defer watch.Stop()
	}

	model := ui.New(ui.Config{
		Dataset:     ds,
		Theme:       &th,
		Settings:    cfg,
		Port:        port,
		SourcePath:  src.path,
		SourceKind:  src.kind,
		SourceTable: src.table,
		Reload:      src.load,
		Watch:       watch,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// sourceSpec binds a load function to the identity the UI and the recent
// list report for it.
type sourceSpec struct {
	path  string
	kind  string
	table string
	load  func() (*dataset.Dataset, error)
}

func resolveSource(filePath, sqlitePath, tableName string, demo bool, demoRows int) (sourceSpec, error) {
	switch {
	case sqlitePath != "":
		path := filepath.Clean(sqlitePath)
		table := tableName
		if table == "" {
			tables, err := source.Tables(path)
			if err != nil {
				return sourceSpec{}, err
			}
			if len(tables) != 1 {
				return sourceSpec{}, fmt.Errorf(
					"database has %d tables, pick one with -table (%s)",
					len(tables), strings.Join(tables, ", "))
			}
			table = tables[0]
		}
		return sourceSpec{
			path:  path,
			kind:  "sqlite",
			table: table,
			load:  func() (*dataset.Dataset, error) { return source.LoadSQLite(path, table) },
		}, nil

	case filePath != "":
		path := filepath.Clean(filePath)
		return sourceSpec{
			path: path,
			kind: "csv",
			load: func() (*dataset.Dataset, error) { return source.LoadCSV(path) },
		}, nil

	default:
		rows := demoRows
		return sourceSpec{
			kind: "demo",
			load: func() (*dataset.Dataset, error) { return source.Demo(rows), nil },
		}, nil
	}
}

func printRecent(recent *history.RecentStore) {
	entries := recent.Entries()
	if len(entries) == 0 {
		fmt.Println("no recent sources")
		return
	}
	for _, e := range entries {
		name := e.Path
		if e.Table != "" {
			name += ":" + e.Table
		}
		fmt.Printf("%-50s %6d rows  %s\n", name, e.Rows, e.OpenedAt.Format("2006-01-02 15:04"))
	}
}

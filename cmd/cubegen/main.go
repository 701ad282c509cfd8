package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cognicore/cubegen/pkg/cubegen"
	"github.com/cognicore/cubegen/pkg/cubegen/config"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/finetune"
	"github.com/cognicore/cubegen/pkg/cubegen/store"
	"github.com/cognicore/cubegen/pkg/cubegen/store/memstore"
	"github.com/cognicore/cubegen/pkg/cubegen/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (.yaml or .toml, optional)")
		dbPath     = flag.String("db", "", "Dataset database path (overrides config)")
		seed       = flag.Int64("seed", 0, "Random seed (overrides config)")
		logLevel   = flag.String("log-level", "", "Log level (overrides config)")
		prompt     = flag.String("prompt", "", "One-shot prompt (non-interactive mode)")
		template   = flag.String("template", "", "Generate a named template")
		random     = flag.Bool("random", false, "Generate random parameters")
		groupType  = flag.String("group", "", "Group type: wall, floor, column, structure, terrain")
		dims       = flag.String("dims", "", "Group dimensions as x,y,z (optional)")
		composite  = flag.String("composite", "", "Composite request JSON file")
		batch      = flag.String("batch", "", "Batch file, one prompt per line")
		grouping   = flag.String("grouping", "individual", "Batch grouping: individual, related, themed")
		styleWord  = flag.String("style", "", "Batch style prefix")
		theme      = flag.String("theme", "", "Theme for batch and interactive generation")
		exportPath = flag.String("export", "", "Write the fine-tuning dataset to a JSON file")
		importPath = flag.String("import", "", "Load the fine-tuning dataset from a JSON file")
		list       = flag.Bool("list", false, "List stored datasets")
		plain      = flag.Bool("plain", false, "Disable color swatches")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *dbPath != "" {
		cfg.Dataset = *dbPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()

	a, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	out := newPrinter(os.Stdout, !*plain)

	switch {
	case *importPath != "":
		err = importDataset(ctx, a, *importPath)
	case *exportPath != "":
		err = exportDataset(a, *exportPath)
	case *list:
		err = listDatasets(ctx, a, out)
	case *template != "":
		err = out.result(a.engine.FromTemplate(ctx, *template))
	case *random:
		err = out.result(a.engine.Random(ctx))
	case *groupType != "":
		var d [3]int
		if d, err = parseDims(*dims); err == nil {
			err = out.group(a.engine.Group(ctx, *groupType, *prompt, d))
		}
	case *composite != "":
		err = runComposite(ctx, a, out, *composite)
	case *batch != "":
		err = runBatch(ctx, a, out, *batch, cubegen.BatchRequest{
			Style:    *styleWord,
			Grouping: *grouping,
			Theme:    *theme,
		})
	case *prompt != "":
		err = out.result(a.generate(ctx, *prompt, *theme))
	default:
		interactive(ctx, a, out, *theme)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

// app bundles the engine with the store backing its dataset.
type app struct {
	engine *cubegen.Engine
	store  store.Store
	log    zerolog.Logger
	last   *lastResult
}

type lastResult struct {
	prompt string
	object cube.Object
}

// generate prefers a matching fine-tuning example, then themed or plain
// generation.
func (a *app) generate(ctx context.Context, prompt, theme string) cube.Result {
	var res cube.Result
	if theme != "" {
		res = a.engine.Contextual(ctx, prompt, cubegen.Context{Theme: theme})
	} else {
		res = a.engine.WithFineTuning(ctx, prompt)
	}
	if res.Success && res.Object != nil {
		a.last = &lastResult{prompt: prompt, object: *res.Object}
	}
	return res
}

func interactive(ctx context.Context, a *app, out *printer, theme string) {
	fmt.Println("===========================================")
	fmt.Println("  Cubegen")
	fmt.Println("  Describe an object, in English or Russian")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Commands: :template NAME, :random, :group TYPE DESCRIPTION,")
	fmt.Println("          :theme NAME, :rate 0..1, :templates, :themes")
	fmt.Println("Type a description (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := execute(ctx, a, out, line, &theme); err != nil {
			fmt.Println("Error:", err)
		}
	}

	fmt.Println("\nGoodbye!")
}

func execute(ctx context.Context, a *app, out *printer, line string, theme *string) error {
	if !strings.HasPrefix(line, ":") {
		return out.result(a.generate(ctx, line, *theme))
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "template":
		return out.result(a.engine.FromTemplate(ctx, arg))
	case "random":
		return out.result(a.engine.Random(ctx))
	case "group":
		typ, desc, _ := strings.Cut(arg, " ")
		return out.group(a.engine.Group(ctx, typ, desc, [3]int{}))
	case "theme":
		*theme = arg
		fmt.Printf("theme set to %q\n", arg)
		return nil
	case "rate":
		if a.last == nil {
			return fmt.Errorf("nothing generated yet")
		}
		rating, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("rating %q: %w", arg, err)
		}
		if err := a.engine.RecordFeedback(ctx, a.last.prompt, a.last.object, rating); err != nil {
			return err
		}
		fmt.Printf("recorded rating %.2f for %q\n", cube.Clamp01(rating), a.last.prompt)
		return nil
	case "templates":
		fmt.Println(strings.Join(a.engine.Templates(), ", "))
		return nil
	case "themes":
		fmt.Println(strings.Join(a.engine.Themes(), ", "))
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func buildApp(ctx context.Context, cfg config.Config) (*app, func(), error) {
	components, err := cfg.Loader().Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	var st store.Store
	if cfg.Dataset != "" {
		st, err = sqlite.OpenSQLite(ctx, cfg.Dataset)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
	} else {
		st = memstore.New()
	}

	tuner := finetune.New(finetune.Options{Pipeline: components.Pipeline, Store: st})
	restored, err := tuner.Restore(ctx)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	if restored {
		d := tuner.Dataset()
		logger.Info().Str("dataset", d.ID).Int("examples", len(d.Examples)).Msg("restored fine-tuning dataset")
	}

	engine := cubegen.New(cubegen.Options{
		Pipeline: components.Pipeline,
		Tuner:    tuner,
		Logger:   &logger,
		Seed:     cfg.Seed,
		Author:   cfg.Author,
		Easing:   cfg.Easing(),
	})

	cleanup := func() {
		st.Close()
	}

	return &app{engine: engine, store: st, log: logger}, cleanup, nil
}

func parseDims(s string) ([3]int, error) {
	var d [3]int
	if strings.TrimSpace(s) == "" {
		return d, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return d, fmt.Errorf("dims %q: want x,y,z", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return d, fmt.Errorf("dims %q: %w", s, err)
		}
		d[i] = n
	}
	return d, nil
}

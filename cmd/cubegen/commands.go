package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen"
)

func importDataset(ctx context.Context, a *app, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	if err := a.engine.LoadDataset(ctx, data); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	d := a.engine.Dataset()
	a.log.Info().Str("dataset", d.ID).Int("examples", len(d.Examples)).Msg("imported dataset")
	return nil
}

func exportDataset(a *app, path string) error {
	data, err := a.engine.ExportDataset()
	if err != nil {
		return fmt.Errorf("export dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	a.log.Info().Str("path", path).Msg("exported dataset")
	return nil
}

func listDatasets(ctx context.Context, a *app, out *printer) error {
	infos, err := a.store.ListDatasets(ctx)
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}
	if len(infos) == 0 {
		fmt.Fprintln(out.w, "No datasets stored.")
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(out.w, "%s  %-16s v%-4d %4d examples  updated %s\n",
			info.ID, info.Name, info.Version, info.Examples, info.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runComposite(ctx context.Context, a *app, out *printer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read composite: %w", err)
	}
	var req cubegen.CompositeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode composite: %w", err)
	}
	return out.composite(a.engine.Composite(ctx, req))
}

func runBatch(ctx context.Context, a *app, out *printer, path string, req cubegen.BatchRequest) error {
	prompts, err := readPrompts(path)
	if err != nil {
		return err
	}
	req.Prompts = prompts
	for _, res := range a.engine.Batch(ctx, req) {
		if err := out.result(res); err != nil {
			return err
		}
	}
	return nil
}

// readPrompts reads one prompt per line, skipping blanks and # comments.
func readPrompts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch: %w", err)
	}
	defer f.Close()

	var prompts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prompts = append(prompts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return prompts, nil
}

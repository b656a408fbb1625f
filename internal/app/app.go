package app

import (
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/sokinpui/feedup/internal/cli"
	"github.com/sokinpui/feedup/internal/feeds"
	"github.com/sokinpui/feedup/internal/fs"
	"github.com/sokinpui/feedup/internal/parser"
	"github.com/sokinpui/feedup/internal/source"
	"github.com/sokinpui/feedup/internal/splice"
	"github.com/sokinpui/feedup/internal/state"
	"github.com/sokinpui/feedup/internal/ui"
)

// App orchestrates the entire application logic.
type App struct {
	cfg          *cli.Config
	stateManager *state.Manager
	provider     *source.Provider
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	stateManager, err := state.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize state manager: %w", err)
	}
	return &App{
		cfg:          cfg,
		stateManager: stateManager,
		provider:     source.New(),
	}, nil
}

// Run executes the main application logic based on parsed flags.
func (a *App) Run() (err error) {
	// Centralized panic recovery to provide stack traces for unexpected errors.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	switch {
	case a.cfg.Undo:
		return a.undoLastOperation()
	case a.cfg.Redo:
		return a.redoLastOperation()
	case a.cfg.PrintOnly:
		return a.printOldSection()
	default:
		return a.updateFeeds()
	}
}

// updateFeeds handles the core logic: locate the feed-list region, print
// it, splice in the replacement block and write the target file back.
func (a *App) updateFeeds() error {
	block, ok, err := a.replacementBlock()
	if err != nil {
		return err
	}
	if !ok {
		ui.Warning("Replacement source is empty. Nothing to process.")
		return nil
	}

	content, err := fs.ReadFile(a.cfg.File)
	if err != nil {
		return err
	}

	region, err := splice.Locate(content, splice.DefaultMarkers())
	if err != nil {
		return fmt.Errorf("failed to locate feed-list region in %s: %w", a.cfg.File, err)
	}
	ui.PrintOldSection(region.Extract(content))

	updated := splice.Splice(content, region, block)

	if a.cfg.DryRun {
		ui.Header("--- Dry run: resulting file ---")
		fmt.Print(updated)
		return nil
	}

	op, err := a.rewrite(a.cfg.File, updated)
	if err != nil {
		return err
	}
	if err := a.stateManager.Write([]state.Operation{op}); err != nil {
		ui.Warning("Update succeeded but history could not be saved: %v", err)
		ui.Warning("Undo will not be available for this operation.")
	}

	ui.PrintDone()
	return nil
}

// replacementBlock picks the replacement: the piped/clipboard block, the
// rendered registry, or the built-in default. ok is false when the source
// turned out to be empty and there is nothing to do.
func (a *App) replacementBlock() (block string, ok bool, err error) {
	switch {
	case a.cfg.Input:
		content, err := a.provider.GetContent()
		if err != nil {
			return "", false, err
		}
		if strings.TrimSpace(content) == "" {
			return "", false, nil
		}
		block, err := parser.ExtractBlock(content)
		if err != nil {
			return "", false, fmt.Errorf("failed to extract replacement block: %w", err)
		}
		return block, true, nil
	case a.cfg.FeedsFile != "":
		reg, err := feeds.Load(a.cfg.FeedsFile)
		if err != nil {
			return "", false, err
		}
		return reg.Render(), true, nil
	default:
		return feeds.DefaultBlock, true, nil
	}
}

// rewrite snapshots the target before and after the write so the run can
// be undone, and returns the history operation recording it.
func (a *App) rewrite(path, content string) (state.Operation, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	preHash, err := fs.Snapshot(abs, a.stateManager.SnapshotDir())
	if err != nil {
		return state.Operation{}, err
	}
	if err := fs.WriteBack(abs, content); err != nil {
		return state.Operation{}, err
	}
	postHash, err := fs.Snapshot(abs, a.stateManager.SnapshotDir())
	if err != nil {
		return state.Operation{}, err
	}
	return state.Operation{Path: abs, PreHash: preHash, PostHash: postHash}, nil
}

// printOldSection locates and prints the region without touching the file.
func (a *App) printOldSection() error {
	content, err := fs.ReadFile(a.cfg.File)
	if err != nil {
		return err
	}
	region, err := splice.Locate(content, splice.DefaultMarkers())
	if err != nil {
		return fmt.Errorf("failed to locate feed-list region in %s: %w", a.cfg.File, err)
	}
	ui.PrintOldSection(region.Extract(content))
	return nil
}

// undoLastOperation restores the pre-write snapshots of the last run.
func (a *App) undoLastOperation() error {
	ops := a.stateManager.GetOperationsToUndo()
	if len(ops) == 0 {
		ui.Warning("No operation to undo.")
		return nil
	}

	ui.Header("--- Undoing last operation ---")
	return a.restore(ops, func(op state.Operation) (expect, restore string) {
		return op.PostHash, op.PreHash
	})
}

// redoLastOperation re-applies the post-write snapshots of the last
// undone run.
func (a *App) redoLastOperation() error {
	ops := a.stateManager.GetOperationsToRedo()
	if len(ops) == 0 {
		ui.Warning("No operation to redo.")
		return nil
	}

	ui.Header("--- Redoing last undone operation ---")
	return a.restore(ops, func(op state.Operation) (expect, restore string) {
		return op.PreHash, op.PostHash
	})
}

// restore writes snapshots back, refusing any file whose current content
// no longer matches the hash recorded for it.
func (a *App) restore(ops []state.Operation, pick func(state.Operation) (expect, restore string)) error {
	var failed []string
	for _, op := range ops {
		expectHash, restoreHash := pick(op)

		current, err := fs.FileSHA256(op.Path)
		if err != nil {
			ui.Error("  -> Cannot hash %s: %v", op.Path, err)
			failed = append(failed, op.Path)
			continue
		}
		if current != expectHash {
			ui.Error("  -> %s was modified outside feedup; refusing to restore.", op.Path)
			failed = append(failed, op.Path)
			continue
		}

		snapshot, err := fs.ReadSnapshot(a.stateManager.SnapshotDir(), restoreHash)
		if err != nil {
			ui.Error("  -> %v", err)
			failed = append(failed, op.Path)
			continue
		}
		if err := fs.WriteBack(op.Path, snapshot); err != nil {
			ui.Error("  -> %v", err)
			failed = append(failed, op.Path)
			continue
		}
		ui.Success("  -> Restored: %s", op.Path)
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to restore %d file(s)", len(failed))
	}
	return nil
}

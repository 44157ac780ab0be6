package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/mccutchen/styledterm/internal/slogctx"
	"github.com/mccutchen/styledterm/printer"
	"github.com/mccutchen/styledterm/style"
)

// Document line markers understood by render.
const (
	ruleMarker  = "--"
	enterMarker = ">"
	exitMarker  = "<"
)

func newRenderCmd(o *globalOpts) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render styledterm documents",
		Long: `Render one or more documents, one line at a time:

  H1: text   a header of the given kind (also H2:, H3:, H4:, HF:)
  > title    open an indented section
  <          close the innermost open section
  --         a horizontal rule
  (blank)    skipped
  anything   a line of text annotated with inline tags

Files are rendered concurrently and written out in the order given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return errors.New("--workers must be at least 1")
			}
			return renderFiles(cmd.Context(), args, workers, o.newPrinterTo, o.sink)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of documents to render concurrently")
	return cmd
}

// renderFiles renders each file into its own independent printer, with at
// most workers files in flight, and writes the results to dst in order.
func renderFiles(ctx context.Context, paths []string, workers int, newPrinter func(io.Writer) *printer.Printer, dst io.Writer) error {
	var (
		bufs       = make([]bytes.Buffer, len(paths))
		memo       = &Memo[string, []style.Segment]{}
		sem        = semaphore.NewWeighted(int64(workers))
		acquireErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		// if the group context was canceled, another file failed and its
		// error is reported by g.Wait below
		if err := sem.Acquire(gctx, 1); err != nil {
			acquireErr = err
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			fctx := slogctx.With(gctx, "file", path)
			if err := renderFile(fctx, path, newPrinter(&bufs[i]), memo); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if acquireErr != nil {
		return fmt.Errorf("failed to schedule render: %w", acquireErr)
	}
	slogctx.Debug(ctx, "render: rendered documents", "files", len(paths), "unique_lines", memo.Len())
	for i := range bufs {
		if _, err := bufs[i].WriteTo(dst); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func renderFile(ctx context.Context, path string, p *printer.Printer, memo *Memo[string, []style.Segment]) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()
	slogctx.Debug(ctx, "render: rendering document")
	return renderDocument(ctx, f, p, memo)
}

// renderDocument renders a single document. Sections still open at the end
// of the document are closed.
func renderDocument(ctx context.Context, r io.Reader, p *printer.Printer, memo *Memo[string, []style.Segment]) error {
	var exits []func()
	defer func() {
		for i := len(exits) - 1; i >= 0; i-- {
			exits[i]()
		}
	}()

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		var err error
		switch {
		case strings.TrimSpace(line) == "":
			continue
		case line == ruleMarker:
			err = p.Line("-", printer.Format{})
		case line == exitMarker:
			if len(exits) == 0 {
				err = fmt.Errorf("%q without an open section", exitMarker)
				break
			}
			exits[len(exits)-1]()
			exits = exits[:len(exits)-1]
		case strings.HasPrefix(line, enterMarker):
			var exit func()
			exit, err = p.Enter(strings.TrimSpace(strings.TrimPrefix(line, enterMarker)))
			if err == nil {
				exits = append(exits, exit)
			}
		default:
			if kind, text, ok := parseHeaderLine(line); ok {
				err = p.Header(kind, text, printer.HeaderOpts{})
				break
			}
			var segments []style.Segment
			segments, err = memo.Do(ctx, line, func() ([]style.Segment, error) {
				return style.Segments(line)
			})
			if err == nil {
				err = p.PS(segments)
			}
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return nil
}

// parseHeaderLine parses lines like "H2: Some title".
func parseHeaderLine(line string) (printer.HeaderKind, string, bool) {
	for _, kind := range printer.HeaderKinds() {
		if text, found := strings.CutPrefix(line, string(kind)+":"); found {
			return kind, strings.TrimSpace(text), true
		}
	}
	return "", "", false
}

// Package view is the catalog filter/render loop. A View owns one display:
// Load renders the full catalog, every input change runs one synchronous
// filter pass followed by one render pass.
package view

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agentx-labs/automatiza/internal/catalog"
	"github.com/agentx-labs/automatiza/internal/logging"
	"github.com/agentx-labs/automatiza/internal/render"
	"github.com/agentx-labs/automatiza/internal/search"
	"github.com/rs/zerolog"
)

// View filters an immutable catalog and renders the result into a display.
// It is not safe for concurrent use; events are expected one at a time.
type View struct {
	catalog *catalog.Catalog
	display render.Display
	builder *render.Builder
	log     zerolog.Logger
}

// Option configures a View.
type Option func(*View)

// WithLabels overrides the card labels.
func WithLabels(labels render.Labels) Option {
	return func(v *View) { v.builder = render.NewBuilder(labels) }
}

// WithLogger sets the logger used for skipped renders and display errors.
func WithLogger(log zerolog.Logger) Option {
	return func(v *View) { v.log = log }
}

// New returns a view over c writing into display. A nil display is allowed:
// every render is then skipped.
func New(c *catalog.Catalog, display render.Display, opts ...Option) *View {
	v := &View{
		catalog: c,
		display: display,
		builder: render.NewBuilder(render.DefaultLabels()),
		log:     *logging.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Render replaces the display's children with one card per category, or with
// the "no results" placeholder when data is empty. Display errors are logged,
// not returned.
func (v *View) Render(data []catalog.AutomationCategory) {
	if v.display == nil {
		v.log.Debug().Msg("no display; render skipped")
		return
	}
	if err := v.display.Replace(v.builder.Cards(data)); err != nil {
		v.log.Error().Err(err).Int("categories", len(data)).Msg("display update failed")
	}
}

// Filter computes the categories matching term, renders them and returns
// them. An empty or whitespace-only term yields the full catalog.
func (v *View) Filter(term string) []catalog.AutomationCategory {
	result := search.Filter(v.catalog.All(), term)
	v.log.Debug().
		Str("term", term).
		Int("matches", len(result)).
		Int("total", v.catalog.Len()).
		Msg("filtered catalog")
	v.Render(result)
	return result
}

// Load performs the initial render of the full catalog.
func (v *View) Load() {
	v.Render(v.catalog.All())
}

// OnInput handles one change of the search field.
func (v *View) OnInput(value string) []catalog.AutomationCategory {
	return v.Filter(value)
}

// Run treats every line read from r as the new value of the search field and
// handles it with OnInput. before, if non-nil, is called ahead of each read
// (e.g. to print a prompt). Run returns nil at EOF, ctx.Err() once ctx is
// cancelled (even while a read is blocked), and a read error otherwise. A nil
// reader is a no-op. Lines have no length limit.
//
// Reads happen on a separate goroutine. After a cancel that goroutine stays
// blocked until r returns from its pending Read; callers that need it gone
// must close or drain r themselves.
func (v *View) Run(ctx context.Context, r io.Reader, before func()) error {
	if r == nil {
		v.log.Debug().Msg("no input; loop skipped")
		return nil
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(r)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				readErr <- err
				return
			}
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if before != nil {
			before()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading search input: %w", err)
				}
				return nil
			}
			v.OnInput(line)
		}
	}
}

// Package render draws the gallery grid and the wallpaper detail page as
// plain text for terminal use.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wallgrid/wallpaper-gallery/internal/gallery"
	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

type Renderer struct {
	out     io.Writer
	printer *message.Printer
}

// New returns a renderer formatting counts for English readers ("12,453").
func New(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

// Count formats n with thousands separators.
func (r *Renderer) Count(n int) string {
	return r.printer.Sprintf("%d", n)
}

// Categories prints the category bar with the selected entry bracketed.
func (r *Renderer) Categories(categories []string, selected string) error {
	parts := make([]string, len(categories))
	for i, c := range categories {
		if c == selected {
			parts[i] = "[" + c + "]"
		} else {
			parts[i] = c
		}
	}
	_, err := fmt.Fprintln(r.out, strings.Join(parts, "  "))
	return err
}

// Gallery prints the derived view as a table, or its empty-state message.
func (r *Renderer) Gallery(view gallery.View) error {
	if s := strings.TrimSpace(view.State.Search); s != "" {
		if _, err := fmt.Fprintf(r.out, "Showing results for: %q\n", view.State.Search); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(r.out, "Sort by: %s\n\n", view.State.Sort.Label()); err != nil {
		return err
	}

	if view.Empty != gallery.EmptyNone {
		_, err := fmt.Fprintf(r.out, "%s\nTry adjusting your search or category filters.\n", view.Message())
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tRESOLUTION\tVIEWS\tDOWNLOADS")
	for _, w := range view.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			w.ID, w.Title, w.Category, w.Resolution, r.Count(w.Views), r.Count(w.Downloads))
	}
	return tw.Flush()
}

// Detail prints one wallpaper with its tags in their stored order.
func (r *Renderer) Detail(w wallpaper.Wallpaper) error {
	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n\n", w.Title)
	fmt.Fprintf(tw, "Category\t%s\n", w.Category)
	fmt.Fprintf(tw, "Resolution\t%s\n", w.Resolution)
	fmt.Fprintf(tw, "Views\t%s\n", r.Count(w.Views))
	fmt.Fprintf(tw, "Downloads\t%s\n", r.Count(w.Downloads))
	fmt.Fprintf(tw, "Added\t%s\n", w.DateAdded)
	if len(w.Tags) > 0 {
		fmt.Fprintf(tw, "Tags\t%s\n", strings.Join(w.Tags, ", "))
	}
	fmt.Fprintf(tw, "Image\t%s\n", w.ImageURL)
	fmt.Fprintf(tw, "Save as\t%s\n", w.DownloadName())
	return tw.Flush()
}

// Failure prints the error state shown when a load failed.
func (r *Renderer) Failure(what string, err error) error {
	_, werr := fmt.Fprintf(r.out, "Error! Failed to load %s. Please try again later.\n(%v)\n", what, err)
	return werr
}

// Package render produces the text and JSON views of an interpreted launcher
// document, resolving item paths through the namespace registry. Resolution
// failures render inline per item and never fail the run.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/Norgate-AV/ocsview/internal/launcher"
	"github.com/Norgate-AV/ocsview/internal/logger"
	"github.com/Norgate-AV/ocsview/internal/shellpath"
)

// Document is the serializable view of a launcher forest.
type Document struct {
	Launchers []Launcher `json:"launchers"`
}

// Launcher is the serializable view of one launcher.
type Launcher struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is the serializable view of one menu item. Kind selects which of the
// remaining fields are meaningful.
type Item struct {
	Kind      string `json:"kind"`
	Caption   string `json:"caption,omitempty"`
	Path      string `json:"path,omitempty"`
	PathError string `json:"pathError,omitempty"`
	Parameter string `json:"parameter,omitempty"`
	Verb      string `json:"verb,omitempty"`
	ShowCmd   int    `json:"showCmd,omitempty"`
	ActionID  int    `json:"actionId,omitempty"`
	TypeCode  int    `json:"typeCode,omitempty"`
	Items     []Item `json:"items,omitempty"`
}

// Renderer builds document views. When resolvePaths is false, Launch and
// Folder items carry no path in the output.
type Renderer struct {
	log          logger.LoggerInterface
	resolver     *shellpath.Resolver
	resolvePaths bool
}

// NewRenderer creates a renderer using the given resolver.
func NewRenderer(log logger.LoggerInterface, resolver *shellpath.Resolver, resolvePaths bool) *Renderer {
	return &Renderer{
		log:          log,
		resolver:     resolver,
		resolvePaths: resolvePaths,
	}
}

// Snapshot builds the view of doc, resolving item paths as configured.
func (r *Renderer) Snapshot(doc *launcher.Document) *Document {
	view := &Document{Launchers: make([]Launcher, 0, len(doc.Launchers))}

	for _, l := range doc.Launchers {
		view.Launchers = append(view.Launchers, Launcher{
			Title: l.Title,
			Items: r.snapshotItems(l.Items),
		})
	}

	return view
}

func (r *Renderer) snapshotItems(items []launcher.MenuItem) []Item {
	out := make([]Item, 0, len(items))

	for _, item := range items {
		switch it := item.(type) {
		case *launcher.LaunchItem:
			v := Item{
				Kind:      "launch",
				Caption:   it.Caption,
				Parameter: it.Parameter,
				Verb:      it.Verb,
				ShowCmd:   it.ShowCmd,
			}
			v.Path, v.PathError = r.resolvePath(it.Caption, it.DisplayName)
			out = append(out, v)

		case *launcher.FolderItem:
			v := Item{Kind: "folder", Caption: it.Caption}
			v.Path, v.PathError = r.resolvePath(it.Caption, it.DisplayName)
			out = append(out, v)

		case *launcher.Separator:
			out = append(out, Item{Kind: "separator"})

		case *launcher.Submenu:
			out = append(out, Item{
				Kind:    "submenu",
				Caption: it.Caption,
				Items:   r.snapshotItems(it.Items),
			})

		case *launcher.SpecialItem:
			out = append(out, Item{Kind: "special", Caption: it.Caption, ActionID: it.ID})

		case *launcher.UnknownItem:
			out = append(out, Item{Kind: "unknown", TypeCode: it.TypeCode})
		}
	}

	return out
}

// resolvePath runs one item's memoized resolution, logging failures.
func (r *Renderer) resolvePath(caption string, resolve func(*shellpath.Resolver) (string, error)) (string, string) {
	if !r.resolvePaths {
		return "", ""
	}

	path, err := resolve(r.resolver)
	if err != nil {
		r.log.Warn("Path resolution failed",
			slog.String("caption", caption),
			slog.Any("error", err),
		)
		return "", err.Error()
	}

	return path, ""
}

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	pathColor  = color.New(color.FgHiBlack)
	errColor   = color.New(color.FgRed)
)

// WriteText writes the human-readable tree view.
func (r *Renderer) WriteText(w io.Writer, view *Document) error {
	for i, l := range view.Launchers {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := titleColor.Fprintf(w, "%s\n", l.Title); err != nil {
			return err
		}

		if err := r.writeItems(w, l.Items, 1); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) writeItems(w io.Writer, items []Item, depth int) error {
	indent := strings.Repeat("  ", depth)

	for _, it := range items {
		var err error

		switch it.Kind {
		case "launch", "folder":
			err = r.writeEntry(w, indent, it)

		case "separator":
			_, err = fmt.Fprintf(w, "%s--------\n", indent)

		case "submenu":
			if _, err = fmt.Fprintf(w, "%s%s\n", indent, it.Caption); err == nil {
				err = r.writeItems(w, it.Items, depth+1)
			}

		case "special":
			_, err = fmt.Fprintf(w, "%s%s (action %d)\n", indent, it.Caption, it.ActionID)

		case "unknown":
			_, err = fmt.Fprintf(w, "%s(unknown item type %d)\n", indent, it.TypeCode)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) writeEntry(w io.Writer, indent string, it Item) error {
	if _, err := fmt.Fprintf(w, "%s%s", indent, it.Caption); err != nil {
		return err
	}

	if it.PathError != "" {
		if _, err := errColor.Fprintf(w, "  [%s]", it.PathError); err != nil {
			return err
		}
	} else if it.Path != "" {
		if _, err := pathColor.Fprintf(w, "  %s", it.Path); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

// WriteJSON writes the view as indented JSON.
func (r *Renderer) WriteJSON(w io.Writer, view *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(view)
}

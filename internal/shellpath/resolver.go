// Package shellpath turns a decoded identifier list chain into a displayable
// path string. A fixed registry maps well-known namespace root CLSIDs to
// path-building strategies; each strategy appends segments for its own
// namespace and delegates the remaining chain to another strategy, forming a
// recursive resolution graph rather than a linear pipeline.
package shellpath

import (
	"log/slog"
	"strings"

	"github.com/Norgate-AV/ocsview/internal/clsid"
	"github.com/Norgate-AV/ocsview/internal/layout"
	"github.com/Norgate-AV/ocsview/internal/logger"
	"github.com/Norgate-AV/ocsview/internal/shellitem"
)

// Separator joins path segments on output.
const Separator = `\`

// strategy extends the accumulated path from the chain position at which its
// own namespace root record sits. It either appends segments and stops, or
// delegates the remainder to another strategy.
type strategy interface {
	extend(b *pathBuilder, items []shellitem.Item, pos int) error
}

// pathBuilder accumulates path segments. Segments are immutable once pushed.
type pathBuilder struct {
	segments []string
}

// push appends one segment. A single trailing backslash is trimmed so drive
// roots like "C:\" join cleanly; empty segments are dropped, since a record
// with no decodable text degrades to nothing rather than an empty component.
func (b *pathBuilder) push(seg string) {
	seg = strings.TrimSuffix(seg, Separator)
	if seg == "" {
		return
	}

	b.segments = append(b.segments, seg)
}

func (b *pathBuilder) String() string {
	return strings.Join(b.segments, Separator)
}

// Resolver resolves identifier list chains against the well-known namespace
// registry. The registry is built once and never mutated.
type Resolver struct {
	log      logger.LoggerInterface
	registry map[clsid.CLSID]strategy
	desktop  strategy
	generic  strategy
}

// NewResolver creates a resolver reporting diagnostics to log.
func NewResolver(log logger.LoggerInterface) *Resolver {
	r := &Resolver{log: log}

	r.desktop = &desktopStrategy{r: r}
	r.generic = &genericFilesystemStrategy{r: r}

	r.registry = map[clsid.CLSID]strategy{
		clsid.Desktop:        r.desktop,
		clsid.MyComputer:     &myComputerStrategy{r: r},
		clsid.ControlPanel:   &controlPanelStrategy{r: r},
		clsid.ControlPanel2:  &controlPanel2Strategy{r: r},
		clsid.Network:        &networkExplorerStrategy{r: r},
		clsid.UsersLibraries: &userNamespaceStrategy{r: r, root: clsid.UsersLibraries},
		clsid.UsersFiles:     &userNamespaceStrategy{r: r, root: clsid.UsersFiles},
	}

	return r
}

// Resolve renders the chain as a path string. Resolution always starts with
// the Desktop strategy on the complete chain; an empty chain is the Desktop
// itself.
func (r *Resolver) Resolve(items []shellitem.Item) (string, error) {
	b := &pathBuilder{}

	if err := r.desktop.extend(b, items, 0); err != nil {
		return "", err
	}

	return b.String(), nil
}

// text returns the record's displayable text, logging records that have none.
func (r *Resolver) text(it shellitem.Item) string {
	t := it.Text()
	if t == "" {
		r.log.Trace("Record yielded no text",
			slog.String("tag", hexTag(it.Tag())),
			slog.Int("length", it.Len()),
		)
	}

	return t
}

// desktopStrategy is the resolution entry point and handles the root of
// every chain.
type desktopStrategy struct {
	r *Resolver
}

func (s *desktopStrategy) extend(b *pathBuilder, items []shellitem.Item, pos int) error {
	if pos >= len(items) {
		b.push(clsid.DisplayName(clsid.Desktop))
		return nil
	}

	cur := items[pos]

	// A sole remaining record renders as its own label.
	if pos == len(items)-1 {
		if c, ok := cur.CLSID(); ok {
			b.push(clsid.DisplayName(c))
		} else {
			b.push(s.r.text(cur))
		}

		return nil
	}

	if c, ok := cur.CLSID(); ok {
		// Delegate at the current record so the target strategy can render
		// its own namespace root. A desktop root delegating back to this
		// strategy at the same position would never terminate, so the
		// desktop entry is treated as unregistered here.
		if st, found := s.r.registry[c]; found && st != strategy(s) {
			return st.extend(b, items, pos)
		}

		b.push(clsid.DisplayName(c))
	}

	return s.r.generic.extend(b, items, pos+1)
}

// genericFilesystemStrategy appends one segment per remaining record.
type genericFilesystemStrategy struct {
	r *Resolver
}

func (s *genericFilesystemStrategy) extend(b *pathBuilder, items []shellitem.Item, pos int) error {
	for i := pos; i < len(items); i++ {
		b.push(s.r.text(items[i]))
	}

	return nil
}

// myComputerStrategy renders drive chains. The drive record immediately
// follows the root; the namespace name itself only shows when the root is
// the final record.
type myComputerStrategy struct {
	r *Resolver
}

func (s *myComputerStrategy) extend(b *pathBuilder, items []shellitem.Item, pos int) error {
	if pos+1 >= len(items) {
		b.push(clsid.DisplayName(clsid.MyComputer))
		return nil
	}

	b.push(s.r.text(items[pos+1]))

	return s.r.generic.extend(b, items, pos+2)
}

// controlPanelStrategy renders the classic control panel namespace, where
// the record after the root names an applet by CLSID.
type controlPanelStrategy struct {
	r *Resolver
}

func (s *controlPanelStrategy) extend(b *pathBuilder, items []shellitem.Item, pos int) error {
	b.push(clsid.DisplayName(clsid.ControlPanel))

	if pos+1 >= len(items) {
		return nil
	}

	next := items[pos+1]
	if c, ok := next.CLSID(); ok {
		b.push(clsid.DisplayName(c))
	} else {
		b.push(s.r.text(next))
	}

	return s.r.generic.extend(b, items, pos+2)
}

// controlPanel2Strategy renders the secondary control panel namespace, which
// carries an extra identifying record that is never rendered.
type controlPanel2Strategy struct {
	r *Resolver
}

func (s *controlPanel2Strategy) extend(b *pathBuilder, items []shellitem.Item, pos int) error {
	b.push(clsid.DisplayName(clsid.ControlPanel2))

	if pos+1 >= len(items) {
		return nil
	}

	return s.r.generic.extend(b, items, pos+2)
}

// networkExplorerStrategy renders network share chains.
type networkExplorerStrategy struct {
	r *Resolver
}

func (s *networkExplorerStrategy) extend(b *pathBuilder, items []shellitem.Item, pos int) error {
	if pos+1 >= len(items) {
		b.push(clsid.DisplayName(clsid.Network))
		return nil
	}

	next := items[pos+1]
	if next.Tag() == layout.TagNetworkShare {
		b.push(next.Text())
	} else {
		b.push(s.r.text(next))
	}

	return s.r.generic.extend(b, items, pos+2)
}

// userNamespaceStrategy renders the libraries and user-files namespaces,
// whose first child is usually a sub-identifier record naming a known
// library or user folder category.
type userNamespaceStrategy struct {
	r    *Resolver
	root clsid.CLSID
}

func (s *userNamespaceStrategy) extend(b *pathBuilder, items []shellitem.Item, pos int) error {
	b.push(clsid.DisplayName(s.root))

	if pos+1 >= len(items) {
		return nil
	}

	next := items[pos+1]
	if next.Tag() == layout.TagSubIdentifier {
		c, ok := next.SubCLSID()
		if !ok {
			return &shellitem.ChainError{
				Offset: -1,
				Reason: "sub-identifier record too short for its GUID",
			}
		}

		b.push(subIdentifierName(c))
	} else {
		b.push(s.r.text(next))
	}

	return s.r.generic.extend(b, items, pos+2)
}

// hexTag formats a tag byte for diagnostics.
func hexTag(tag byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{'0', 'x', digits[tag>>4], digits[tag&0xF]})
}

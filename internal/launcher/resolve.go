package launcher

import (
	"github.com/Norgate-AV/ocsview/internal/shellitem"
	"github.com/Norgate-AV/ocsview/internal/shellpath"
)

// resolveState tracks the one-time path resolution of a Launch or Folder
// item. Resolution may legitimately fail, and re-decoding on every lookup is
// avoided, so the failure is memoized the same as a success.
type resolveState int

const (
	notResolved resolveState = iota
	pathResolved
	pathFailed
)

type pathState struct {
	state resolveState
	path  string
	err   error
}

func (p *pathState) resolve(itemID []byte, r *shellpath.Resolver) (string, error) {
	switch p.state {
	case pathResolved:
		return p.path, nil
	case pathFailed:
		return "", p.err
	}

	path, err := ResolveItemID(r, itemID)
	if err != nil {
		p.state = pathFailed
		p.err = err
		return "", err
	}

	p.state = pathResolved
	p.path = path

	return path, nil
}

// DisplayName resolves the item's identifier list into a path, computing it
// at most once for the item's lifetime.
func (i *LaunchItem) DisplayName(r *shellpath.Resolver) (string, error) {
	return i.path.resolve(i.ItemID, r)
}

// DisplayName resolves the item's identifier list into a path, computing it
// at most once for the item's lifetime.
func (i *FolderItem) DisplayName(r *shellpath.Resolver) (string, error) {
	return i.path.resolve(i.ItemID, r)
}

// ResolveItemID decodes raw identifier list bytes and resolves them into a
// display path. Errors are chain-scoped: they fail this item only.
func ResolveItemID(r *shellpath.Resolver, itemID []byte) (string, error) {
	items, err := shellitem.Decode(itemID)
	if err != nil {
		return "", err
	}

	return r.Resolve(items)
}

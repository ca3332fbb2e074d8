// Package launcher interprets a parsed OCS section tree into the launcher
// and menu-item domain model, and resolves each item's embedded identifier
// list into a display path on demand.
package launcher

import (
	"fmt"
	"strconv"

	"github.com/Norgate-AV/ocsview/internal/ocs"
)

// Menu item type codes as they appear in OCS Type fields.
const (
	TypeLaunch    = 0
	TypeFolder    = 1
	TypeSeparator = 2
	TypeSubmenu   = 3
	TypeSpecial   = 4
)

// StructureError reports a structurally invalid document: a missing or
// mistyped required field, or a declared count that does not match the
// numbered child sections present. It aborts the whole document.
type StructureError struct {
	Construct string
	Reason    string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Construct, e.Reason)
}

// Document is the interpreted launcher forest.
type Document struct {
	Launchers []*Launcher
}

// Launcher is one named launcher with its ordered menu items.
type Launcher struct {
	Title string
	Items []MenuItem
}

// MenuItem is one of the six menu item variants. The set is closed; consumers
// switch over the concrete types.
type MenuItem interface {
	isMenuItem()
}

// LaunchItem starts a program. ItemID holds the raw identifier list bytes.
type LaunchItem struct {
	ItemID    []byte
	Caption   string
	Parameter string
	Verb      string
	ShowCmd   int

	path pathState
}

// FolderItem opens a folder. ItemID holds the raw identifier list bytes.
type FolderItem struct {
	ItemID  []byte
	Caption string

	path pathState
}

// Separator is a visual divider with no data.
type Separator struct{}

// Submenu nests an ordered sequence of child items.
type Submenu struct {
	Caption string
	Items   []MenuItem
}

// SpecialItem invokes a numbered system action.
type SpecialItem struct {
	ID      int
	Caption string
}

// UnknownItem stands in for an unrecognized type code. It is structurally
// present but semantically inert.
type UnknownItem struct {
	TypeCode int
}

func (*LaunchItem) isMenuItem()  {}
func (*FolderItem) isMenuItem()  {}
func (*Separator) isMenuItem()   {}
func (*Submenu) isMenuItem()     {}
func (*SpecialItem) isMenuItem() {}
func (*UnknownItem) isMenuItem() {}

// Interpret validates the section tree and builds the domain model. Any
// missing or mistyped required field fails the whole document; only the
// Type code itself is allowed to be unrecognized.
func Interpret(root *ocs.Section) (*Document, error) {
	launchers, ok := root.Child("Launchers")
	if !ok {
		// An absent root section is treated as a hard failure rather than
		// an empty document; the stricter of the two historical behaviors.
		return nil, &StructureError{Construct: "Launchers", Reason: "section missing"}
	}

	count, ok := launchers.Int("LauncherCount")
	if !ok {
		return nil, &StructureError{Construct: "Launchers", Reason: "LauncherCount missing or not numeric"}
	}

	doc := &Document{Launchers: make([]*Launcher, 0, count)}

	// Launcher sections are numbered 1..count.
	for n := 1; n <= count; n++ {
		where := `Launchers\` + strconv.Itoa(n)

		sec, ok := launchers.Child(strconv.Itoa(n))
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "launcher section missing"}
		}

		l, err := interpretLauncher(sec, where)
		if err != nil {
			return nil, err
		}

		doc.Launchers = append(doc.Launchers, l)
	}

	return doc, nil
}

func interpretLauncher(sec *ocs.Section, where string) (*Launcher, error) {
	title, ok := sec.String("Title")
	if !ok {
		return nil, &StructureError{Construct: where, Reason: "Title missing or not a string"}
	}

	menu, ok := sec.Child("Menu")
	if !ok {
		return nil, &StructureError{Construct: where, Reason: "Menu section missing"}
	}

	items, err := interpretMenu(menu, where+`\Menu`)
	if err != nil {
		return nil, err
	}

	return &Launcher{Title: title, Items: items}, nil
}

// interpretMenu reads a Menu or Submenu section: a declared Items count and
// that many numbered child sections, 0-based.
func interpretMenu(sec *ocs.Section, where string) ([]MenuItem, error) {
	count, ok := sec.Int("Items")
	if !ok {
		return nil, &StructureError{Construct: where, Reason: "Items missing or not numeric"}
	}

	items := make([]MenuItem, 0, count)

	for n := 0; n < count; n++ {
		itemWhere := where + `\` + strconv.Itoa(n)

		child, ok := sec.Child(strconv.Itoa(n))
		if !ok {
			return nil, &StructureError{Construct: itemWhere, Reason: "item section missing"}
		}

		item, err := interpretItem(child, itemWhere)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func interpretItem(sec *ocs.Section, where string) (MenuItem, error) {
	typ, ok := sec.Int("Type")
	if !ok {
		return nil, &StructureError{Construct: where, Reason: "Type missing or not numeric"}
	}

	switch typ {
	case TypeLaunch:
		itemID, ok := sec.Bytes("ItemID")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "ItemID missing or not a byte sequence"}
		}

		caption, ok := sec.String("Caption")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "Caption missing or not a string"}
		}

		showCmd, ok := sec.Int("ShowCmd")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "ShowCmd missing or not numeric"}
		}

		parameter, _ := sec.String("Parameter")
		verb, _ := sec.String("Verb")

		return &LaunchItem{
			ItemID:    itemID,
			Caption:   caption,
			Parameter: parameter,
			Verb:      verb,
			ShowCmd:   showCmd,
		}, nil

	case TypeFolder:
		itemID, ok := sec.Bytes("ItemID")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "ItemID missing or not a byte sequence"}
		}

		caption, ok := sec.String("Caption")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "Caption missing or not a string"}
		}

		return &FolderItem{ItemID: itemID, Caption: caption}, nil

	case TypeSeparator:
		return &Separator{}, nil

	case TypeSubmenu:
		caption, ok := sec.String("Caption")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "Caption missing or not a string"}
		}

		items, err := interpretMenu(sec, where)
		if err != nil {
			return nil, err
		}

		return &Submenu{Caption: caption, Items: items}, nil

	case TypeSpecial:
		id, ok := sec.Int("ID")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "ID missing or not numeric"}
		}

		caption, ok := sec.String("Caption")
		if !ok {
			return nil, &StructureError{Construct: where, Reason: "Caption missing or not a string"}
		}

		return &SpecialItem{ID: id, Caption: caption}, nil
	}

	return &UnknownItem{TypeCode: typ}, nil
}

package check

import "github.com/avairo/tplcheck/internal/catalog"

// iconNotFound is the explanation attached to every unresolved reference.
const iconNotFound = "Icon file not found in icons directory"

// IconError records an icon reference that does not resolve to a file.
// Suggestion is the closest existing filename, empty when nothing comes
// close enough.
type IconError struct {
	ID         string
	Name       string
	Icon       string
	Message    string
	Suggestion string
}

// Icons checks that every non-empty icon reference resolves to a file in
// the icon set. Entries without an icon are exempt. All violations are
// collected before the caller decides the stage outcome.
func Icons(entries []catalog.Entry, icons *catalog.IconSet) []IconError {
	var errs []IconError
	for i, e := range entries {
		if e.Icon == "" || icons.Contains(e.Icon) {
			continue
		}
		ie := IconError{
			ID:      e.DisplayID(i),
			Name:    e.DisplayName(),
			Icon:    e.Icon,
			Message: iconNotFound,
		}
		if suggestion, ok := ClosestName(e.Icon, icons.Names()); ok {
			ie.Suggestion = suggestion
		}
		errs = append(errs, ie)
	}
	return errs
}

// UnusedIcons returns the icon files no entry references, in listing order.
// Unused icons are informational and never fail a run.
func UnusedIcons(entries []catalog.Entry, icons *catalog.IconSet) []string {
	used := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Icon != "" {
			used[e.Icon] = true
		}
	}

	var unused []string
	for _, name := range icons.Names() {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	return unused
}

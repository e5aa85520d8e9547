package wizard

import (
	"github.com/markorr321/GraphModuleStatus/internal/gallery"
	"github.com/markorr321/GraphModuleStatus/internal/messages"
	"github.com/markorr321/GraphModuleStatus/internal/selection"
)

// The menus offer fixed family combinations, not free text. Labels map to
// family sets here; the flow only ever passes labels around.

var uninstallOptions = []string{
	messages.MenuBothFamilies,
	messages.MenuStableOnly,
	messages.MenuBetaOnly,
}

var installOptions = []string{
	messages.MenuBothFamilies,
	messages.MenuStableOnly,
	messages.MenuBetaOnly,
	messages.MenuSkipInstall,
}

var scopeOptions = []string{
	messages.MenuScopeAllUsers,
	messages.MenuScopeCurrentUser,
}

func familiesFor(label string) []selection.Family {
	switch label {
	case messages.MenuStableOnly:
		return []selection.Family{selection.Stable}
	case messages.MenuBetaOnly:
		return []selection.Family{selection.Beta}
	default:
		return []selection.Family{selection.Stable, selection.Beta}
	}
}

func scopeFor(label string) gallery.Scope {
	if label == messages.MenuScopeCurrentUser {
		return gallery.ScopeCurrentUser
	}
	return gallery.ScopeAllUsers
}

func scopeLabel(scope gallery.Scope) string {
	if scope == gallery.ScopeCurrentUser {
		return messages.MenuScopeCurrentUser
	}
	return messages.MenuScopeAllUsers
}

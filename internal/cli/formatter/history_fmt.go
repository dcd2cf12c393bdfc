package formatter

import (
	"fmt"
	"strings"

	"github.com/mwaldhauser/zeitbot/internal/domain"
)

// FormatHistory renders the conversation log, oldest turn first.
func FormatHistory(turns []domain.ConversationTurn) string {
	if len(turns) == 0 {
		return Dim("Noch keine Unterhaltung.") + "\n"
	}

	var b strings.Builder
	for _, t := range turns {
		ts := t.Timestamp.Format("2006-01-02 15:04")
		fmt.Fprintf(&b, "%s %s\n", Dim(ts), StylePurple.Render(string(t.Intent)))
		fmt.Fprintf(&b, "%s %s\n", Bold("Du:"), t.User)
		fmt.Fprintf(&b, "%s %s\n\n", Bold("Bot:"), t.Bot)
	}
	return b.String()
}

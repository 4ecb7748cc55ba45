package editor

import "log/slog"

// Config configures the editor Model.
type Config struct {
	// Rendering options.
	ShowLineNums bool
	Style        Style

	KeyMap KeyMap

	// Logger receives save results. Nil discards them.
	Logger *slog.Logger

	// OnChange is called after every edit, with the state after the edit.
	OnChange func(ChangeEvent)
}

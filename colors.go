package daylog

import "io"

//nolint:revive // Pointless to comment the colors.
const (
	// ANSI color codes for terminal output.

	// Regular colors.

	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"

	// Bold colors.

	BoldRed    = "\x1b[31;1m"
	BoldYellow = "\x1b[33;1m"

	// Reset resets the terminal's color settings.
	Reset = "\x1b[0m"
)

// DefaultLevelColors returns a map of log levels to their default ANSI color codes.
// Levels missing from the map are mirrored uncolored.
func DefaultLevelColors() map[Level]string {
	return map[Level]string{
		LevelError:            Red,
		LevelWarning:          Yellow,
		LevelSQL:              Magenta,
		LevelDebug:            Blue,
		LevelInfo:             Green,
		LevelNotice:           Cyan,
		LevelException:        BoldRed,
		LevelCoreError:        BoldRed,
		LevelCompileError:     BoldRed,
		LevelUserError:        Red,
		LevelRecoverableError: Red,
		LevelCoreWarning:      BoldYellow,
		LevelCompileWarning:   BoldYellow,
		LevelUserWarning:      Yellow,
		LevelDeprecated:       Yellow,
		LevelUserDeprecated:   Yellow,
	}
}

// ConsoleConfig controls mirroring of written lines to a console.
type ConsoleConfig struct {
	// Enable mirrors every appended line to Output.
	Enable bool
	// Output receives the mirrored lines, os.Stderr when nil.
	Output io.Writer
	// ForceColors colors output even when it is not a terminal.
	ForceColors bool
	// DisableColors never colors output.
	DisableColors bool
	// LevelColors maps levels to their ANSI color codes.
	LevelColors map[Level]string
}

// DefaultConsoleConfig returns a disabled console mirror with the default palette.
func DefaultConsoleConfig() ConsoleConfig {
	return ConsoleConfig{
		Enable:      false,
		LevelColors: DefaultLevelColors(),
	}
}

package daylog

import (
	"slices"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Level is an upper-case level name from the level table.
type Level string

//nolint:revive // The level names document themselves.
const (
	LevelError            Level = "ERROR"
	LevelWarning          Level = "WARNING"
	LevelSQL              Level = "SQL"
	LevelParse            Level = "PARSE"
	LevelDebug            Level = "DEBUG"
	LevelInfo             Level = "INFO"
	LevelAll              Level = "ALL"
	LevelNotice           Level = "NOTICE"
	LevelException        Level = "EXCEPTION"
	LevelCoreError        Level = "CORE_ERROR"
	LevelCoreWarning      Level = "CORE_WARNING"
	LevelCompileError     Level = "COMPILE_ERROR"
	LevelCompileWarning   Level = "COMPILE_WARNING"
	LevelUserError        Level = "USER_ERROR"
	LevelUserWarning      Level = "USER_WARNING"
	LevelUserNotice       Level = "USER_NOTICE"
	LevelStrict           Level = "STRICT"
	LevelRecoverableError Level = "RECOVERABLE_ERROR"
	LevelDeprecated       Level = "DEPRECATED"
	LevelUserDeprecated   Level = "USER_DEPRECATED"
)

// levelTable maps each level to its severity code. It is never mutated.
//
//nolint:gochecknoglobals
var levelTable = map[Level]int{
	LevelError:            1,
	LevelWarning:          2,
	LevelSQL:              3,
	LevelParse:            4,
	LevelDebug:            5,
	LevelInfo:             6,
	LevelAll:              7,
	LevelNotice:           8,
	LevelException:        9,
	LevelCoreError:        16,
	LevelCoreWarning:      32,
	LevelCompileError:     64,
	LevelCompileWarning:   128,
	LevelUserError:        256,
	LevelUserWarning:      512,
	LevelUserNotice:       1024,
	LevelStrict:           2048,
	LevelRecoverableError: 4096,
	LevelDeprecated:       8192,
	LevelUserDeprecated:   16384,
}

// String returns the level name.
func (l Level) String() string {
	return string(l)
}

// Normalize returns the upper-case form of the level name.
func (l Level) Normalize() Level {
	return Level(strings.ToUpper(strings.TrimSpace(string(l))))
}

// Code returns the severity code of the level and whether the level exists.
// Lookup is case-insensitive.
func (l Level) Code() (int, bool) {
	code, ok := levelTable[l.Normalize()]

	return code, ok
}

// MustCode returns the severity code of the level and panics for unknown levels.
// It is meant for constants of this package.
func (l Level) MustCode() int {
	code, ok := l.Code()
	if !ok {
		panic("daylog: unknown level " + string(l))
	}

	return code
}

// IsValid reports whether the level exists in the level table.
func (l Level) IsValid() bool {
	_, ok := l.Code()

	return ok
}

// ParseLevel resolves a case-insensitive level name.
func ParseLevel(name string) (Level, error) {
	level := Level(name).Normalize()
	if !level.IsValid() {
		return "", ewrap.Wrap(ErrUnsupportedOperation, "unknown log level").WithMetadata("level", name)
	}

	return level, nil
}

// Levels returns every level of the table ordered by severity code.
func Levels() []Level {
	levels := make([]Level, 0, len(levelTable))
	for level := range levelTable {
		levels = append(levels, level)
	}

	slices.SortFunc(levels, func(a, b Level) int {
		return levelTable[a] - levelTable[b]
	})

	return levels
}

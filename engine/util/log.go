package util

import "strings"

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogShell | LogInput | LogConfig | LogOpenGL

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogShell LogCategory = 1 << iota
	LogInput
	LogConfig
	LogOpenGL
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

// SetLogLevelByName wires the config file's logging.level value. Unknown
// names keep the current level.
func SetLogLevelByName(name string) {
	switch strings.ToLower(name) {
	case "error":
		GLOBAL_LOG_LEVEL = LogLevelError
	case "warning":
		GLOBAL_LOG_LEVEL = LogLevelWarning
	case "debug":
		GLOBAL_LOG_LEVEL = LogLevelDebug
	case "info":
		GLOBAL_LOG_LEVEL = LogLevelInfo
	}
}

// SetLogCategoriesByName wires the config file's logging.categories list.
// An empty list leaves the default categories enabled.
func SetLogCategoriesByName(names []string) {
	if len(names) == 0 {
		return
	}
	var cats LogCategory
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shell":
			cats |= LogShell
		case "input":
			cats |= LogInput
		case "config":
			cats |= LogConfig
		case "opengl", "gl":
			cats |= LogOpenGL
		}
	}
	GLOBAL_LOG_CATEGORIES = cats
}

func LogShellInfo(txt string) {
	log(LogShell, LogLevelInfo, txt)
}

func LogShellDebug(txt string) {
	log(LogShell, LogLevelDebug, txt)
}

func LogShellError(txt string) {
	log(LogShell, LogLevelError, txt)
}

func LogInputInfo(txt string) {
	log(LogInput, LogLevelInfo, txt)
}

func LogInputDebug(txt string) {
	log(LogInput, LogLevelDebug, txt)
}

func LogConfigInfo(txt string) {
	log(LogConfig, LogLevelInfo, txt)
}

func LogConfigError(txt string) {
	log(LogConfig, LogLevelError, txt)
}

func LogGlInfo(txt string) {
	log(LogOpenGL, LogLevelInfo, txt)
}

func LogGlError(txt string) {
	log(LogOpenGL, LogLevelError, txt)
}

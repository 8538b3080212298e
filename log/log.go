package log

import (
	// Stdlib
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	// Vendor
	"github.com/fatih/color"
	"github.com/shiena/ansicolor"
)

type (
	Level  uint32
	Logger bool
)

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var v = uint32(Info)

func SetV(level Level) {
	atomic.StoreUint32(&v, uint32(level))
}

func V(level Level) Logger {
	if atomic.LoadUint32(&v) > uint32(level) {
		return Logger(false)
	}
	return Logger(true)
}

// Output ----------------------------------------------------------------------

var (
	outputLock sync.Mutex
	output     io.Writer = ansicolor.NewAnsiColorWriter(os.Stderr)
)

// SetOutput redirects all log output to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outputLock.Lock()
	defer outputLock.Unlock()
	previous := output
	output = w
	return previous
}

func (l Logger) log(v ...interface{}) {
	if l {
		outputLock.Lock()
		fmt.Fprint(output, v...)
		outputLock.Unlock()
	}
}

func (l Logger) logf(format string, v ...interface{}) {
	if l {
		outputLock.Lock()
		fmt.Fprintf(output, format, v...)
		outputLock.Unlock()
	}
}

func (l Logger) logln(v ...interface{}) {
	if l {
		outputLock.Lock()
		fmt.Fprintln(output, v...)
		outputLock.Unlock()
	}
}

// Tagged lines ----------------------------------------------------------------

var (
	tagRun      = color.New(color.FgCyan).SprintFunc()
	tagSkip     = color.New(color.FgYellow).SprintFunc()
	tagOk       = color.New(color.FgGreen).SprintFunc()
	tagFail     = color.New(color.FgRed).Add(color.Bold).SprintFunc()
	tagRollback = color.New(color.FgMagenta).SprintFunc()
)

func (l Logger) Run(msg string) {
	l.logf("%v      %v\n", tagRun("[RUN]"), msg)
}

func (l Logger) Skip(msg string) {
	l.logf("%v     %v\n", tagSkip("[SKIP]"), msg)
}

func (l Logger) Ok(msg string) {
	l.logf("%v       %v\n", tagOk("[OK]"), msg)
}

func (l Logger) Fail(msg string) {
	l.logf("%v     %v\n", tagFail("[FAIL]"), msg)
}

func (l Logger) Rollback(msg string) {
	l.logf("%v %v\n", tagRollback("[ROLLBACK]"), msg)
}

// Log is used for debugging output, it prints the message with no tag.
func (l Logger) Log(msg string) {
	l.logf("           %v\n", msg)
}

func (l Logger) NewLine(msg string) {
	l.logf("           %v\n", msg)
}

func (l Logger) Print(v ...interface{}) {
	l.log(v...)
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.logf(format, v...)
}

func (l Logger) Println(v ...interface{}) {
	l.logln(v...)
}

func (l Logger) Fatalln(v ...interface{}) {
	outputLock.Lock()
	fmt.Fprintln(output, v...)
	outputLock.Unlock()
	os.Exit(1)
}

func Run(msg string) {
	V(Info).Run(msg)
}

func Skip(msg string) {
	V(Info).Skip(msg)
}

func Ok(msg string) {
	V(Info).Ok(msg)
}

func Fail(msg string) {
	V(Info).Fail(msg)
}

func Rollback(msg string) {
	V(Info).Rollback(msg)
}

func NewLine(msg string) {
	V(Info).NewLine(msg)
}

func Print(v ...interface{}) {
	V(Info).Print(v...)
}

func Printf(format string, v ...interface{}) {
	V(Info).Printf(format, v...)
}

func Println(v ...interface{}) {
	V(Info).Println(v...)
}

// Fatalln always prints, no matter what the current verbosity is.
func Fatalln(v ...interface{}) {
	Logger(true).Fatalln(v...)
}

// Levels ----------------------------------------------------------------------

var levelToStringMap = map[Level]string{
	Trace:   "trace",
	Debug:   "debug",
	Verbose: "verbose",
	Info:    "info",
	Off:     "off",
}

func LevelToString(level Level) (string, bool) {
	v, ok := levelToStringMap[level]
	return v, ok
}

func MustLevelToString(level Level) string {
	v, ok := LevelToString(level)
	if !ok {
		panic(fmt.Errorf("invalid log level: %v", level))
	}
	return v
}

var stringToLevelMap = map[string]Level{
	"trace":   Trace,
	"debug":   Debug,
	"verbose": Verbose,
	"info":    Info,
	"off":     Off,
}

func StringToLevel(levelString string) (Level, bool) {
	v, ok := stringToLevelMap[levelString]
	return v, ok
}

func MustStringToLevel(levelString string) Level {
	level, ok := StringToLevel(levelString)
	if !ok {
		panic(errors.New("invalid log level string: " + levelString))
	}
	return level
}

// LevelStrings returns the level names ordered from the most verbose one.
func LevelStrings() []string {
	levels := make([]string, 0, len(levelToStringMap))
	for level := Trace; level <= Off; level++ {
		levels = append(levels, levelToStringMap[level])
	}
	return levels
}

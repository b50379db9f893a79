package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/hinfosvc/hinfosvc/pkg/syncx"
	"github.com/hinfosvc/hinfosvc/pkg/tools"
)

type logAppender struct {
	timeFormat  string
	isConsole   bool
	enableTrace bool
	enableColor bool

	bufPool   sync.Pool
	log       *log.Logger
	writeLock sync.Locker
	logFile   *os.File
}

func newLogAppender(timeFormat, path, fileName string, enableTrace, enableColor bool) *logAppender {
	appender := &logAppender{
		timeFormat: timeFormat,
		bufPool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			}},
		enableTrace: enableTrace,
		enableColor: enableColor,
		writeLock:   syncx.NewSpinLock(),
		log:         new(log.Logger),
	}

	if path == "" {
		appender.isConsole = true
		appender.log.SetOutput(os.Stdout)
	} else {
		if err := tools.Mkdir(path, 0755); err != nil {
			panic(fmt.Sprintf("[logger appender] mkdir err: %s\n", err))
		}

		filePath := path + "/" + fileName
		logfile, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0666)
		if err != nil {
			panic(fmt.Errorf("[logger appender] open logfile err: %s", err))
		}
		appender.logFile = logfile
		appender.log.SetOutput(appender.logFile)
	}

	return appender
}

func (appender *logAppender) write(data data) {
	defer onError("[logger appender]")

	timeFormat := data.timestamp.Format(appender.timeFormat)
	if appender.enableColor {
		data.level = getLevelColor(data.level)
	}
	buf := appender.bufPool.Get().(*strings.Builder)
	buf.Reset()
	buf.WriteString(timeFormat)
	buf.WriteString(" [")
	buf.WriteString(data.level)
	buf.WriteString("] ")
	if appender.enableTrace && data.traceID != "" {
		if appender.enableColor {
			data.traceID = fmt.Sprintf("\033[1;35m%s\033[0m", data.traceID)
		}
		buf.WriteString("[")
		buf.WriteString(data.traceID)
		buf.WriteString("] ")
	}
	buf.WriteString(data.position)
	buf.WriteString(" - ")
	buf.WriteString(data.content)

	appender.writeLock.Lock()
	defer func() {
		appender.writeLock.Unlock()
		buf.Reset()
		appender.bufPool.Put(buf)
	}()

	appender.log.Println(buf.String())
}

func (appender *logAppender) close() {
	appender.writeLock.Lock()
	defer appender.writeLock.Unlock()

	if appender.logFile != nil {
		if err := appender.logFile.Sync(); err != nil {
			fmt.Printf("[logger close] sync log file err: %s\n", err)
		}

		if err := appender.logFile.Close(); err != nil {
			fmt.Printf("[logger appender] close logfile err: %s\n", err)
		}
		appender.logFile = nil
	}
}

func onError(txt string) {
	if r := recover(); r != nil {
		fmt.Println(fmt.Sprintf("[ERROR] - Got a runtime error %s. %s", txt, r))
	}
}

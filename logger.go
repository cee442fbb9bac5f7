package ettndcsdk

import (
	"fmt"
	"log"
	"os"
)

type (
	FaasLogger struct {
		ErrorLog *LogPrinter
		InfoLog  *LogPrinter
	}

	LogPrinter struct {
		logger *log.Logger
	}
)

func NewLoggerFunction(functionName string) *FaasLogger {
	return &FaasLogger{
		ErrorLog: &LogPrinter{logger: log.New(os.Stderr, functionName+" ERROR >>> ", log.LstdFlags)},
		InfoLog:  &LogPrinter{logger: log.New(os.Stdout, functionName+" INFO >>> ", log.LstdFlags)},
	}
}

// Sprint logs the arguments and returns the formatted message so callers
// can reuse it inside a ResponseError.
func (p *LogPrinter) Sprint(args ...interface{}) string {
	message := fmt.Sprintln(args...)
	message = message[:len(message)-1]
	if p != nil && p.logger != nil {
		p.logger.Print(message)
	}
	return message
}

func (p *LogPrinter) Sprintf(format string, args ...interface{}) string {
	message := fmt.Sprintf(format, args...)
	if p != nil && p.logger != nil {
		p.logger.Print(message)
	}
	return message
}

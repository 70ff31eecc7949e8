package store

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/amphipod/logging"
)

// boltLogger adapts a bolt logger to badger's Logger interface. Badger's info
// chatter (table loads, compactions) is demoted to debug and its debug
// output to trace.
type boltLogger struct {
	log *bolt.Logger
}

// NewLogger returns a badger.Logger writing through log, for WithLogger.
func NewLogger(log *bolt.Logger) badger.Logger {
	return &boltLogger{log: log}
}

func (l *boltLogger) Errorf(format string, args ...interface{}) {
	l.emit(l.log.Error(), format, args)
}

func (l *boltLogger) Warningf(format string, args ...interface{}) {
	l.emit(l.log.Warn(), format, args)
}

func (l *boltLogger) Infof(format string, args ...interface{}) {
	l.emit(l.log.Debug(), format, args)
}

func (l *boltLogger) Debugf(format string, args ...interface{}) {
	l.emit(l.log.Trace(), format, args)
}

func (l *boltLogger) emit(e *bolt.Event, format string, args []interface{}) {
	logging.NewEvent(e).
		Add(logging.Component("badger")).
		Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

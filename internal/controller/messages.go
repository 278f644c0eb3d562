package controller

import (
	"fmt"

	"github.com/annel0/buildregion/internal/logging"
)

// Сообщения игроку
const (
	MsgLocked     = "build region locked to %s"
	MsgShifted    = "build region shifted to %s"
	MsgResized    = "build region resized to %s"
	MsgUnlocked   = "build region unlocked"
	MsgTooFar     = "build region unlocked\nbecause you are beyond %s blocks away"
	MsgMisclick   = "misclick blocked by build region"
	MsgAmbiguous  = "ambiguous direction\nface north, south, east, west, up, or down"
	MsgModeFormat = "build region mode: %s"
)

// Notifier показывает сообщения игроку
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// LogNotifier выводит сообщения игроку в лог компонента
type LogNotifier struct {
	Logger *logging.Logger
}

func (n LogNotifier) Info(msg string) {
	if n.Logger == nil {
		logging.Info("💬 %s", msg)
		return
	}
	n.Logger.Info("💬 %s", msg)
}

func (n LogNotifier) Error(msg string) {
	if n.Logger == nil {
		logging.Warn("💬 %s", msg)
		return
	}
	n.Logger.Warn("💬 %s", msg)
}

func infof(n Notifier, format string, args ...interface{}) {
	if n != nil {
		n.Info(fmt.Sprintf(format, args...))
	}
}

func errorf(n Notifier, format string, args ...interface{}) {
	if n != nil {
		n.Error(fmt.Sprintf(format, args...))
	}
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, INFO, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLogger_ConsoleThreshold(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{ConsoleLevel: WARN, DisableFile: true, Console: &buf})
	defer Configure(DefaultOptions())

	logger, err := NewLogger("test")
	require.NoError(t, err)

	logger.Info("скрыто %d", 1)
	logger.Warn("видно %d", 2)
	logger.Error("ошибка")

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "[WARN] [test] видно 2")
	assert.Contains(t, out, "[ERROR] [test] ошибка")

	logger.SetLevels(TRACE, TRACE)
	logger.Trace("трассировка")
	assert.Contains(t, buf.String(), "[TRACE] [test] трассировка")
}

func TestLogger_FileSink(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	Configure(Options{Dir: dir, ConsoleLevel: ERROR, FileLevel: DEBUG, Console: &console})
	defer Configure(DefaultOptions())

	logger, err := NewLogger("filetest")
	require.NoError(t, err)
	logger.Debug("в файл")
	logger.Trace("никуда")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close(), "повторное закрытие безопасно")

	files, err := filepath.Glob(filepath.Join(dir, "filetest_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [filetest] в файл")
	assert.NotContains(t, string(data), "никуда")
	assert.Empty(t, console.String())
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{ConsoleLevel: DEBUG, DisableFile: true, Console: &buf})
	defer Configure(DefaultOptions())

	require.NoError(t, InitDefaultLogger("main"))
	defer CloseDefaultLogger()

	Debug("отладка %s", "включена")
	Info("информация")
	out := buf.String()
	assert.Contains(t, out, "[DEBUG] [main] отладка включена")
	assert.Contains(t, out, "[INFO] [main] информация")
}

func TestRegistry_SharesLoggerPerComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{ConsoleLevel: INFO, DisableFile: true, Console: &buf})
	defer Configure(DefaultOptions())

	r := newRegistry()
	a := r.get(ComponentClick)
	assert.Same(t, a, r.get(ComponentClick))
	r.get(ComponentController)
	assert.Equal(t, []string{"click", "controller"}, r.names())

	r.relevel(Options{ConsoleLevel: DEBUG, FileLevel: DEBUG})
	a.Debug("после смены уровня")
	assert.True(t, strings.Contains(buf.String(), "[DEBUG] [click] после смены уровня"))

	require.NoError(t, r.close())
	assert.Empty(t, r.names())
}

func TestRegistry_FallsBackToConsole(t *testing.T) {
	var buf bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	// Директория логов лежит внутри обычного файла, создать её нельзя
	Configure(Options{Dir: filepath.Join(blocker, "logs"), ConsoleLevel: WARN, Console: &buf})
	defer Configure(DefaultOptions())

	logger := newRegistry().get(ComponentSim)
	require.NotNil(t, logger)
	assert.Contains(t, buf.String(), "[WARN] [sim] файловый лог отключён")
	logger.Error("всё ещё пишет")
	assert.Contains(t, buf.String(), "всё ещё пишет")
}

func TestApply_RelevelsIssuedLoggers(t *testing.T) {
	var buf bytes.Buffer
	Apply(Options{ConsoleLevel: ERROR, DisableFile: true, Console: &buf})
	defer Apply(DefaultOptions())

	logger := For(ComponentEventBus)
	logger.Info("скрыто")
	assert.NotContains(t, buf.String(), "скрыто")
	assert.Contains(t, Components(), "eventbus")

	Apply(Options{ConsoleLevel: INFO, DisableFile: true, Console: &buf})
	logger.Info("видно")
	assert.Contains(t, buf.String(), "видно")
}

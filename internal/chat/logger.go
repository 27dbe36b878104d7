package chat

// Logger - sink for connection diagnostics. A *log.Logger satisfies it
// directly.
type Logger interface {
	Println(v ...interface{})
}

// logInfo - logs v when a logger is attached; without one the server runs
// silent.
func logInfo(logger Logger, v ...interface{}) {
	if logger == nil {
		return
	}
	logger.Println(v...)
}

// logError - like logInfo, with an ERR prefix marking failures.
func logError(logger Logger, v ...interface{}) {
	if logger == nil {
		return
	}
	logger.Println(append([]interface{}{"ERR"}, v...)...)
}

package watcher

// ConvertEvent is exported for tests.
var ConvertEvent = convertEvent

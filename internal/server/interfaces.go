package server

// Server is the lifecycle contract the entrypoint drives: RunServer blocks
// serving traffic until a stop is requested, Shutdown drains in-flight work
// and releases resources. Both transports and their background workers hide
// behind it.
type Server interface {
	RunServer()
	Shutdown()
}

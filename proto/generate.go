// Package proto holds the wire definitions. Run go generate to emit the Go
// bindings into gen/.
package proto

//go:generate protoc -I . --go_out=module=github.com/knitworks/pattern-analyzer:.. --go-grpc_out=module=github.com/knitworks/pattern-analyzer:.. patterns/v1/patterns.proto

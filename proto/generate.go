// Package proto contains the gRPC contract for the external responder
// sidecar. Stubs are generated with protoc-gen-go and protoc-gen-go-grpc.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative responder.proto

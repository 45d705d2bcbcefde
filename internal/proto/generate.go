// Package proto holds the generated gRPC API of the memoria server.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/memoria --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/memoria memoria/v1/memoria.proto

// Package proto holds the standup.v1.StandupService gRPC contract shared by
// the server and the CLI. standup.pb.go and standup_grpc.pb.go are generated
// from standup.proto; convert.go maps the wire messages to internal/models.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative standup.proto

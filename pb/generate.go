// Package pb holds the messages exchanged between the world actor and its front-ends.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative accretion.proto

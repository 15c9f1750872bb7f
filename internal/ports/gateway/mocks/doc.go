// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_client.go -package=mocks github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/client Requester
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/platform Clock,IDGenerator

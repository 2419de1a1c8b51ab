// Package mocks provides gomock implementations of the service's small interfaces.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	clk := mocks.NewMockTimeProvider(ctrl)
//	clk.EXPECT().Now().Return(ts)
package mocks

// Generate mock for TimeProvider interface from internal/clock package.
// This creates MockTimeProvider with methods for all TimeProvider interface methods:
// Now
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=time_provider_mock.go github.com/target/heelo-node/internal/clock TimeProvider

package iocache

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/schema"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetActivityStore implements the CacheManager interface.
func (m *MockCacheManager) GetActivityStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// GetRunsStore implements the CacheManager interface.
func (m *MockCacheManager) GetRunsStore() contract.RunsStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunsStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Clear implements the CacheStore interface.
func (m *MockCacheStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRunsStore is a mock implementation of RunsStore for testing.
type MockRunsStore struct {
	mock.Mock
}

var _ contract.RunsStore = &MockRunsStore{} // Compile-time check

// BeginRun implements the RunsStore interface.
func (m *MockRunsStore) BeginRun(startTime time.Time, robotSerial, source string) (int64, error) {
	args := m.Called(startTime, robotSerial, source)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunsStore interface.
func (m *MockRunsStore) EndRun(runID int64, endTime time.Time, eventCount int) error {
	args := m.Called(runID, endTime, eventCount)
	return args.Error(0)
}

// GetStatus implements the RunsStore interface.
func (m *MockRunsStore) GetStatus() (schema.RunsStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunsStatus), args.Error(1)
}

// Close implements the RunsStore interface.
func (m *MockRunsStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

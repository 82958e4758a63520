// Package testutil provides shared test doubles and fixtures for the
// transcript-control packages.
//
// It contains three groups of helpers:
//
// 1. Service mocks (mock_services.go):
//   - MockServices bundles one testify mock per API service
//   - Handler tests wire these into a gin router
//
// 2. Repository and upstream mocks (mock_repositories.go):
//   - MockTranscriptionRepository, MockCalendarRepository and friends
//   - MockWorkflowEngine and MockCSVImporter for the n8n and import clients
//
// 3. Fixtures (fixtures.go):
//   - Sample transcriptions, calendar entries and column layouts
//   - Small constructors for pointer fields
//
// # Usage
//
//	mocks := testutil.NewMockServices(t)
//	mocks.TranscriptionService.On("GetTranscription", mock.Anything, int64(1)).
//		Return(&testutil.TestTranscriptions[0], nil)
//
// Every mock is bound to t, so unexpected calls fail the test that made them.
package testutil

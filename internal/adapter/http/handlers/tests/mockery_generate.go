package tests

// Mock generation example for handler tests. The mocks in this
// package are hand-written; the directives below regenerate expecter
// variants if that ever becomes worthwhile.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name DashboardService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename dashboard_service_mock.go --with-expecter

package service_mocks

//go:generate mockgen -destination=audit_service_mock.go -package=service_mocks bvdu-bank/internal/services AuditServiceInterface
//go:generate mockgen -destination=metrics_recorder_mock.go -package=service_mocks bvdu-bank/internal/services MetricsRecorderInterface

// This file contains the go:generate directives to generate mocks for service interfaces.
// To regenerate the mocks, run:
//   go generate ./internal/services/service_mocks

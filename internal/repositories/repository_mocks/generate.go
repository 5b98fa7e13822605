package repository_mocks

//go:generate mockgen -destination=audit_log_repository_mock.go -package=repository_mocks bvdu-bank/internal/repositories AuditLogRepositoryInterface
//go:generate mockgen -destination=transaction_repository_mock.go -package=repository_mocks bvdu-bank/internal/repositories TransactionRepositoryInterface

// This file contains the go:generate directives to generate mocks for repository interfaces.
// To regenerate the mocks, run:
//   go generate ./internal/repositories/repository_mocks

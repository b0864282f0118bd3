package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/fieldpro-api/internal/application/auth"
	"github.com/tu-usuario/fieldpro-api/internal/application/usecase"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.OnboardingTxRunner and usecase.JobTxRunner.
var _ auth.OnboardingTxRunner = (*TxRunner)(nil)
var _ usecase.JobTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOnboarding inicia una transacción con repos de empresa y usuario
// atados a la tx (alta de empresa + asociación del usuario, atómico).
func (r *TxRunner) RunOnboarding(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(companyRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunJobCompletion inicia una transacción con repos de trabajos e
// historial atados a la tx (cierre del trabajo + fila de historial).
func (r *TxRunner) RunJobCompletion(ctx context.Context, fn func(
	jobRepo repository.JobRepository,
	historyRepo repository.ServiceHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	jobRepo := NewJobRepository(tx)
	historyRepo := NewServiceHistoryRepository(tx)

	if err := fn(jobRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

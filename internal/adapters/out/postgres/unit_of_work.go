// Package postgres provides the GORM-based Unit of Work used by command handlers.
//
// A unit of work wraps one database transaction. Repositories obtained from it after
// Begin run inside that transaction, so a route, its stops' positions and their
// statuses are committed or rolled back together.
//
// Every transaction starts with SET LOCAL lock_timeout. Operations on the same route
// serialize on the route row (SELECT ... FOR UPDATE); a caller that waits longer than
// the timeout gets errs.ErrPersistenceTimeout and nothing is written.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, 5*time.Second)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	r, err := uow.RouteRepository().GetForUpdate(ctx, routeID)
//	if err != nil {
//	    return err
//	}
//	if err := uow.StopRepository().UpdatePositions(ctx, r.ID(), r.StopIDs()); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance holds one transaction and must not be shared between goroutines.
package postgres

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/stoprepo"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A lockTimeout of zero leaves the server's lock_timeout untouched.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, cfg.DBLockTimeout)
func NewGormUnitOfWorkFactory(db *gorm.DB, lockTimeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, lockTimeout: lockTimeout}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:          f.db,
		lockTimeout: f.lockTimeout,
	}
}

// GormUnitOfWork coordinates one database transaction for a business operation.
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	lockTimeout time.Duration
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Translate("begin transaction", tx.Error)
	}

	if uow.lockTimeout > 0 {
		// SET does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			tx.Rollback()
			return pgerr.Translate("set lock timeout", err)
		}
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Translate("commit", err)
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
// Handlers defer it unconditionally, so after a successful Commit it returns
// gorm.ErrInvalidTransaction, which they ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RouteRepository provides access to route persistence within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn())
}

// StopRepository provides access to stop persistence within the unit of work,
// bound to the current transaction like RouteRepository.
func (uow *GormUnitOfWork) StopRepository() ports.StopRepository {
	return stoprepo.NewGormStopRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

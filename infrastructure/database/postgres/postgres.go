package postgres

import (
	"context"
	"database/sql"

	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/leora-investor/investor-os-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Conn interface {
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	RunAsUser(ctx context.Context, user RequestUser, fn func(Queryer) error) error
}

// RequestUser identifica quem está lendo. As RPCs usam auth.uid(), que vem de request.jwt.claims.
type RequestUser struct {
	ID    string
	Email string
	Role  string
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return c.runTx(ctx, &sql.TxOptions{}, fn)
}

// RunAsUser executa fn numa transação somente leitura com as claims do usuário aplicadas,
// do mesmo jeito que o PostgREST faz antes de chamar uma RPC.
func (c *Connection) RunAsUser(ctx context.Context, user RequestUser, fn func(Queryer) error) error {
	role := user.Role
	if role == "" {
		role = "authenticated"
	}

	claims, err := json.Marshal(map[string]string{
		"sub":   user.ID,
		"email": user.Email,
		"role":  role,
	})
	if err != nil {
		return errors.Wrap(err, "postgres: serializar claims")
	}

	return c.runTx(ctx, &sql.TxOptions{ReadOnly: true}, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT set_config('request.jwt.claims', $1, true)", string(claims)); err != nil {
			return errors.Wrap(err, "postgres: aplicar request.jwt.claims")
		}
		if _, err := tx.ExecContext(ctx, "SELECT set_config('role', $1, true)", role); err != nil {
			return errors.Wrap(err, "postgres: aplicar role")
		}
		return fn(tx)
	})
}

func (c *Connection) runTx(ctx context.Context, opts *sql.TxOptions, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrap(err, rbErr.Error())
		}
		return err
	}

	return tx.Commit()
}

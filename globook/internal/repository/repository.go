package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/globook/globook-backend/globook/internal/errs"
	"github.com/globook/globook-backend/globook/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListCatches(ctx context.Context) ([]model.CatchRecord, error)
	GetCopy(ctx context.Context, uid int) (model.Copy, error)
	CreateCatch(ctx context.Context, catch model.Catch) (int, error)
	Ping(ctx context.Context) error
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName = `authors`
	booksTableName   = `books`
	copiesTableName  = `copies`
	catchesTableName = `catches`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// catchRow keeps the joined columns nullable so that a missing copy, book
// or author is visible instead of dropping the catch.
type catchRow struct {
	ID              int       `db:"id"`
	Title           *string   `db:"title"`
	AuthorLastName  *string   `db:"author_last_name"`
	AuthorFirstName *string   `db:"author_first_name"`
	Date            time.Time `db:"date"`
	Lat             float64   `db:"lat"`
	Lon             float64   `db:"lon"`
	Uncertainty     float64   `db:"uncertainty"`
	Message         *string   `db:"message"`
}

func listCatchesQuery() (string, []interface{}, error) {
	return qb.Select(
		"c.id",
		"b.title",
		"a.last_name as author_last_name",
		"a.first_name as author_first_name",
		"c.date",
		"c.lat",
		"c.lon",
		"c.uncertainty",
		"c.message",
	).
		From(catchesTableName + " c").
		LeftJoin(copiesTableName + " cp on cp.uid = c.copy_uid").
		LeftJoin(booksTableName + " b on b.id = cp.book_id").
		LeftJoin(authorsTableName + " a on a.id = b.author_id").
		OrderBy("c.id").
		ToSql()
}

func (r *repository) ListCatches(ctx context.Context) ([]model.CatchRecord, error) {
	query, args, err := listCatchesQuery()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListCatches", zap.String("query", query))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "db.Query")
	}
	defer rows.Close()

	catchRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[catchRow])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return flatten(catchRows)
}

func flatten(rows []catchRow) ([]model.CatchRecord, error) {
	records := make([]model.CatchRecord, 0, len(rows))
	for _, row := range rows {
		if row.Title == nil || row.AuthorLastName == nil || row.AuthorFirstName == nil {
			return nil, errors.Wrapf(errs.ErrBrokenChain, "catch %d", row.ID)
		}
		records = append(records, model.CatchRecord{
			ID:              row.ID,
			Title:           *row.Title,
			AuthorLastName:  *row.AuthorLastName,
			AuthorFirstName: *row.AuthorFirstName,
			Date:            model.NewTimestamp(row.Date),
			Lat:             row.Lat,
			Lon:             row.Lon,
			Uncertainty:     row.Uncertainty,
			Message:         row.Message,
		})
	}
	return records, nil
}

func (r *repository) GetCopy(ctx context.Context, uid int) (model.Copy, error) {
	query, args, err := qb.Select("uid", "book_id", "secret").
		From(copiesTableName).
		Where(sq.Eq{"uid": uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Copy{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Copy{}, errors.Wrap(err, "db.Query")
	}
	defer rows.Close()

	cp, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Copy])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Copy{}, errs.ErrCopyNotFound
		}
		return model.Copy{}, errors.Wrap(err, "pgx.CollectOneRow")
	}
	return cp, nil
}

func (r *repository) CreateCatch(ctx context.Context, catch model.Catch) (int, error) {
	query, args, err := qb.Insert(catchesTableName).
		Columns("copy_uid", "lat", "lon", "uncertainty", "date", "message").
		Values(catch.CopyUID, catch.Lat, catch.Lon, catch.Uncertainty, catch.Date, catch.Message).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return errs.ErrCopyNotFound
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
		return errors.Wrap(errs.ErrInvalidCatch, pgErr.Message)
	}
	return err
}

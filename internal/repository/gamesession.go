package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/pyrat/internal/engine"
	"github.com/vancomm/pyrat/internal/record"
	"github.com/vancomm/pyrat/internal/session"
	"github.com/vancomm/pyrat/internal/state"
)

// Queries stores sessions in the game_session table.
type Queries struct {
	db *pgxpool.Pool
}

var _ session.Store = Queries{}

func New(db *pgxpool.Pool) Queries {
	return Queries{db: db}
}

type GameSession struct {
	GameSessionId string             `db:"game_session_id"`
	Seed          int64              `db:"seed"`
	Engine        string             `db:"engine"`
	Width         int                `db:"width"`
	Height        int                `db:"height"`
	Turn          int                `db:"turn"`
	Finished      bool               `db:"finished"`
	Record        []byte             `db:"record"`
	State         []byte             `db:"state"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
	UpdatedAt     pgtype.Timestamptz `db:"updated_at"`
}

func toRow(s *session.Session) (pgx.NamedArgs, error) {
	rec, err := s.Record.Bytes()
	if err != nil {
		return nil, fmt.Errorf("unable to encode record: %w", err)
	}
	st, err := s.State.Bytes()
	if err != nil {
		return nil, fmt.Errorf("unable to encode state: %w", err)
	}
	return pgx.NamedArgs{
		"game_session_id": s.ID,
		"seed":            int64(s.Seed),
		"engine":          string(s.Kind),
		"width":           s.State.Width,
		"height":          s.State.Height,
		"turn":            s.Record.Len(),
		"finished":        s.State.Finished(),
		"record":          rec,
		"state":           st,
		"updated_at":      s.UpdatedAt,
	}, nil
}

func (g *GameSession) Session() (*session.Session, error) {
	rec, err := record.Decode(g.Record)
	if err != nil {
		return nil, fmt.Errorf("unable to decode record: %w", err)
	}
	st, err := state.Decode(g.State)
	if err != nil {
		return nil, fmt.Errorf("unable to decode state: %w", err)
	}
	return &session.Session{
		ID:        g.GameSessionId,
		Seed:      uint64(g.Seed),
		Kind:      engine.Kind(g.Engine),
		Record:    rec,
		State:     st,
		CreatedAt: g.CreatedAt.Time,
		UpdatedAt: g.UpdatedAt.Time,
	}, nil
}

func (q Queries) CreateGameSession(ctx context.Context, s *session.Session) (*GameSession, error) {
	args, err := toRow(s)
	if err != nil {
		return nil, err
	}
	args["created_at"] = s.CreatedAt

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			game_session_id, seed, engine, width, height, turn, finished,
			record, state, created_at, updated_at
		)
		VALUES (
			@game_session_id, @seed, @engine, @width, @height, @turn, @finished,
			@record, @state, @created_at, @updated_at
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q Queries) FetchGameSession(ctx context.Context, id string) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		id,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q Queries) UpdateGameSession(ctx context.Context, s *session.Session) (*GameSession, error) {
	args, err := toRow(s)
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`UPDATE game_session
		SET turn = @turn, finished = @finished, record = @record, state = @state,
			updated_at = @updated_at
		WHERE game_session_id = @game_session_id
		RETURNING *`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return session.ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation:
		return session.ErrExists
	}
	return err
}

func (q Queries) Create(ctx context.Context, s *session.Session) error {
	if _, err := q.CreateGameSession(ctx, s); err != nil {
		return translate(err)
	}
	return nil
}

func (q Queries) Fetch(ctx context.Context, id string) (*session.Session, error) {
	row, err := q.FetchGameSession(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return row.Session()
}

func (q Queries) Update(ctx context.Context, s *session.Session) error {
	if _, err := q.UpdateGameSession(ctx, s); err != nil {
		return translate(err)
	}
	return nil
}

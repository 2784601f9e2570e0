package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/pkg/cleanup"
	"github.com/limbo/bookwise/pkg/entity"
)

type FriendRequestsRepository struct {
	conn PgConnection
}

func NewFriendRequestsRepo(cfg DBConfig) *FriendRequestsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for friendRequestsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for friendRequestsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FriendRequestsRepository{
		conn: pool,
	}
}

func NewFriendRequestsRepoWithConn(conn PgConnection) *FriendRequestsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for friendRequestsRepo: " + err.Error())
	}
	return &FriendRequestsRepository{
		conn: conn,
	}
}

const friendRequestColumns = `id, sender_id, receiver_id, status, created_at, accepted_at`

func (frr *FriendRequestsRepository) Create(ctx context.Context, fr *entity.FriendRequest) (uuid.UUID, error) {
	var id uuid.UUID
	row := frr.conn.QueryRow(ctx, `INSERT INTO friend_requests (sender_id, receiver_id, status) VALUES ($1, $2, $3) RETURNING id;`,
		fr.SenderID,
		fr.ReceiverID,
		fr.Status,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on the ordered pair index
			case "23505":
				return uuid.UUID{}, errorvalues.ErrFriendRequestExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating friend request error: " + err.Error())
	}
	return id, nil
}

func (frr *FriendRequestsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	row := frr.conn.QueryRow(ctx, `SELECT `+friendRequestColumns+` FROM friend_requests WHERE id = $1;`, id)
	return scanFriendRequest(row)
}

func (frr *FriendRequestsRepository) FindBetween(ctx context.Context, a, b uuid.UUID) (*entity.FriendRequest, error) {
	row := frr.conn.QueryRow(ctx, `SELECT `+friendRequestColumns+` FROM friend_requests
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1);`, a, b)
	return scanFriendRequest(row)
}

func scanFriendRequest(row pgx.Row) (*entity.FriendRequest, error) {
	var fr entity.FriendRequest
	err := row.Scan(&fr.ID, &fr.SenderID, &fr.ReceiverID, &fr.Status, &fr.CreatedAt, &fr.AcceptedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFriendRequestNotFound
		}
		return nil, errors.New("searching friend request error: " + err.Error())
	}
	return &fr, nil
}

func (frr *FriendRequestsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendshipStatus, acceptedAt *time.Time) error {
	ct, err := frr.conn.Exec(ctx, `UPDATE friend_requests SET status = $1, accepted_at = $2 WHERE id = $3;`, status, acceptedAt, id)
	if err != nil {
		return errors.New("updating friend request status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFriendRequestNotFound
	}
	return nil
}

func (frr *FriendRequestsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := frr.conn.Exec(ctx, `DELETE FROM friend_requests WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting friend request error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFriendRequestNotFound
	}
	return nil
}

func (frr *FriendRequestsRepository) GetAcceptedByUser(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error) {
	rows, err := frr.conn.Query(ctx, `SELECT `+friendRequestColumns+` FROM friend_requests
		WHERE (sender_id = $1 OR receiver_id = $1) AND status = $2;`, uid, entity.FriendshipAccepted)
	if err != nil {
		return nil, errors.New("getting accepted friendships error: " + err.Error())
	}
	return scanFriendRequests(rows)
}

func (frr *FriendRequestsRepository) GetPendingReceived(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error) {
	rows, err := frr.conn.Query(ctx, `SELECT `+friendRequestColumns+` FROM friend_requests
		WHERE receiver_id = $1 AND status = $2;`, uid, entity.FriendshipPending)
	if err != nil {
		return nil, errors.New("getting received requests error: " + err.Error())
	}
	return scanFriendRequests(rows)
}

func (frr *FriendRequestsRepository) GetPendingSent(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error) {
	rows, err := frr.conn.Query(ctx, `SELECT `+friendRequestColumns+` FROM friend_requests
		WHERE sender_id = $1 AND status = $2;`, uid, entity.FriendshipPending)
	if err != nil {
		return nil, errors.New("getting sent requests error: " + err.Error())
	}
	return scanFriendRequests(rows)
}

func scanFriendRequests(rows pgx.Rows) ([]*entity.FriendRequest, error) {
	defer rows.Close()
	result := make([]*entity.FriendRequest, 0)
	for rows.Next() {
		fr := entity.FriendRequest{}
		err := rows.Scan(&fr.ID, &fr.SenderID, &fr.ReceiverID, &fr.Status, &fr.CreatedAt, &fr.AcceptedAt)
		if err != nil {
			return nil, errors.New("friend request row parsing error: " + err.Error())
		}
		result = append(result, &fr)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected friend request rows error: " + rows.Err().Error())
	}
	return result, nil
}

package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

const friendRequestColumns = `id, sender_id, receiver_id, status, created_at, accepted_at`

var friendRequestColumnNames = []string{"id", "sender_id", "receiver_id", "status", "created_at", "accepted_at"}

func friendRequestRow(fr *entity.FriendRequest) *pgxmock.Rows {
	return pgxmock.NewRows(friendRequestColumnNames).
		AddRow(fr.ID, fr.SenderID, fr.ReceiverID, fr.Status, fr.CreatedAt, fr.AcceptedAt)
}

func TestCreateFriendRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFriendRequestsRepoWithConn(mock)
	fr := entity.FriendRequest{
		SenderID:   userID,
		ReceiverID: uuid.New(),
		Status:     entity.FriendshipPending,
	}
	frID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO friend_requests (sender_id, receiver_id, status) VALUES ($1, $2, $3) RETURNING id;`)
	ctx := context.Background()
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(fr.SenderID, fr.ReceiverID, fr.Status).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(frID))
		id, err := repo.Create(ctx, &fr)
		assert.NoError(t, err)
		assert.Equal(t, frID, id)
	})
	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(fr.SenderID, fr.ReceiverID, fr.Status).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &fr)
		assert.ErrorIs(t, err, errorvalues.ErrFriendRequestExists)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(fr.SenderID, fr.ReceiverID, fr.Status).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &fr)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestFindBetween(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFriendRequestsRepoWithConn(mock)
	other := uuid.New()
	fr := entity.FriendRequest{
		ID:         uuid.New(),
		SenderID:   other,
		ReceiverID: userID,
		Status:     entity.FriendshipPending,
		CreatedAt:  time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT ` + friendRequestColumns + ` FROM friend_requests
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1);`)
	ctx := context.Background()
	t.Run("found regardless of direction", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, other).
			WillReturnRows(friendRequestRow(&fr))
		result, err := repo.FindBetween(ctx, userID, other)
		assert.NoError(t, err)
		assert.Equal(t, fr, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, other).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindBetween(ctx, userID, other)
		assert.ErrorIs(t, err, errorvalues.ErrFriendRequestNotFound)
	})
}

func TestUpdateFriendRequestStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFriendRequestsRepoWithConn(mock)
	id := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`UPDATE friend_requests SET status = $1, accepted_at = $2 WHERE id = $3;`)
	ctx := context.Background()
	t.Run("accept", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entity.FriendshipAccepted, &now, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateStatus(ctx, id, entity.FriendshipAccepted, &now)
		assert.NoError(t, err)
	})
	t.Run("decline keeps accepted_at empty", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entity.FriendshipDeclined, (*time.Time)(nil), id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateStatus(ctx, id, entity.FriendshipDeclined, nil)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entity.FriendshipAccepted, &now, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateStatus(ctx, id, entity.FriendshipAccepted, &now)
		assert.ErrorIs(t, err, errorvalues.ErrFriendRequestNotFound)
	})
}

func TestDeleteFriendRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFriendRequestsRepoWithConn(mock)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM friend_requests WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrFriendRequestNotFound)
	})
}

func TestGetAcceptedByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFriendRequestsRepoWithConn(mock)
	now := time.Now()
	fr := entity.FriendRequest{
		ID:         uuid.New(),
		SenderID:   userID,
		ReceiverID: uuid.New(),
		Status:     entity.FriendshipAccepted,
		CreatedAt:  now,
		AcceptedAt: &now,
	}
	query := regexp.QuoteMeta(`SELECT ` + friendRequestColumns + ` FROM friend_requests
		WHERE (sender_id = $1 OR receiver_id = $1) AND status = $2;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, entity.FriendshipAccepted).
			WillReturnRows(friendRequestRow(&fr))
		result, err := repo.GetAcceptedByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, fr, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, entity.FriendshipAccepted).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetAcceptedByUser(ctx, userID)
		assert.Error(t, err)
	})
}

func TestGetPendingRequests(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFriendRequestsRepoWithConn(mock)
	fr := entity.FriendRequest{
		ID:         uuid.New(),
		SenderID:   uuid.New(),
		ReceiverID: userID,
		Status:     entity.FriendshipPending,
		CreatedAt:  time.Now(),
	}
	ctx := context.Background()
	t.Run("received", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT ` + friendRequestColumns + ` FROM friend_requests
		WHERE receiver_id = $1 AND status = $2;`)
		mock.ExpectQuery(query).
			WithArgs(userID, entity.FriendshipPending).
			WillReturnRows(friendRequestRow(&fr))
		result, err := repo.GetPendingReceived(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
	t.Run("sent", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT ` + friendRequestColumns + ` FROM friend_requests
		WHERE sender_id = $1 AND status = $2;`)
		mock.ExpectQuery(query).
			WithArgs(userID, entity.FriendshipPending).
			WillReturnRows(friendRequestRow(&fr))
		result, err := repo.GetPendingSent(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

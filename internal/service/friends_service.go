package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/pkg/entity"
)

type FriendsService struct {
	repo      repository.FriendRequestsRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewFriendsService(repo repository.FriendRequestsRepositoryI, usersRepo repository.UsersRepositoryI) *FriendsService {
	if repo == nil || usersRepo == nil {
		log.Fatal("on friends service provided nil repos")
	}
	return &FriendsService{
		repo:      repo,
		usersRepo: usersRepo,
	}
}

func (fs *FriendsService) SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*entity.FriendRequest, error) {
	if senderID == receiverID {
		return nil, errorvalues.ErrSelfFriendRequest
	}
	if _, err := fs.usersRepo.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	// Any existing record between the pair blocks a new request, a
	// declined one included
	_, err := fs.repo.FindBetween(ctx, senderID, receiverID)
	if err == nil {
		return nil, errorvalues.ErrFriendRequestExists
	}
	if !errors.Is(err, errorvalues.ErrFriendRequestNotFound) {
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	req := &entity.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     entity.FriendshipPending,
	}
	id, err := fs.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFriendRequestExists) {
			return nil, err
		}
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	created, err := fs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	return created, nil
}

func (fs *FriendsService) Respond(ctx context.Context, uid, requestID uuid.UUID, action string) (*entity.FriendRequest, error) {
	var status entity.FriendshipStatus
	switch strings.ToUpper(action) {
	case "ACCEPT":
		status = entity.FriendshipAccepted
	case "DECLINE":
		status = entity.FriendshipDeclined
	default:
		return nil, errorvalues.ErrInvalidAction
	}
	req, err := fs.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFriendRequestNotFound) {
			return nil, err
		}
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	if req.ReceiverID != uid {
		return nil, errorvalues.ErrNotReceiver
	}
	if req.Status != entity.FriendshipPending {
		return nil, errorvalues.ErrRequestNotPending
	}
	var acceptedAt *time.Time
	if status == entity.FriendshipAccepted {
		now := time.Now()
		acceptedAt = &now
	}
	if err = fs.repo.UpdateStatus(ctx, requestID, status, acceptedAt); err != nil {
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	req.Status = status
	req.AcceptedAt = acceptedAt
	return req, nil
}

func (fs *FriendsService) Unfriend(ctx context.Context, uid, friendID uuid.UUID) error {
	req, err := fs.repo.FindBetween(ctx, uid, friendID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFriendRequestNotFound) {
			return errorvalues.ErrNotFriends
		}
		return errors.New("friend requests repository error: " + err.Error())
	}
	if req.Status != entity.FriendshipAccepted {
		return errorvalues.ErrNotFriends
	}
	if err = fs.repo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, errorvalues.ErrFriendRequestNotFound) {
			return errorvalues.ErrNotFriends
		}
		return errors.New("friend requests repository error: " + err.Error())
	}
	return nil
}

func (fs *FriendsService) ListFriends(ctx context.Context, uid uuid.UUID) ([]*entity.User, error) {
	accepted, err := fs.repo.GetAcceptedByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	friends := make([]*entity.User, 0, len(accepted))
	for _, req := range accepted {
		friend, err := fs.usersRepo.FindByID(ctx, req.OtherUser(uid))
		if err != nil {
			// A deleted account leaves dangling edges behind, skip them
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				continue
			}
			return nil, errors.New("users repository error: " + err.Error())
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

func (fs *FriendsService) ListReceived(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error) {
	reqs, err := fs.repo.GetPendingReceived(ctx, uid)
	if err != nil {
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	return reqs, nil
}

func (fs *FriendsService) ListSent(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error) {
	reqs, err := fs.repo.GetPendingSent(ctx, uid)
	if err != nil {
		return nil, errors.New("friend requests repository error: " + err.Error())
	}
	return reqs, nil
}

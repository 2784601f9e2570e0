package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/limbo/bookwise/pkg/httputil"
)

type SendFriendRequestRequest struct {
	ReceiverID string `json:"receiver_id"`
}

type RespondFriendRequestRequest struct {
	Action string `json:"action"`
}

type GetFriendRequestsResponse struct {
	Requests []*entity.FriendRequest `json:"requests"`
}

type GetFriendsResponse struct {
	Friends []*entity.User `json:"friends"`
}

func (s *Server) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("send friend request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SendFriendRequestRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("send friend request error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		logger.Error("send friend request error: invalid receiver id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid receiver id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	fr, err := s.friendsService.SendRequest(ctx, uid, receiverID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSelfFriendRequest):
			logger.Error("send friend request error: self request")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "cannot send friend request to yourself", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("send friend request error: unexist receiver")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "receiver doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrFriendRequestExists):
			logger.Error("send friend request error: request already exists")
			httputil.WriteErrorResponse(w, http.StatusConflict, "friend request already exists between users", nil)
		default:
			logger.Error("send friend request error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending request", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, fr)
	logger.Info("friend request sent")
}

func (s *Server) RespondFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("respond friend request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("respond friend request error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request id in path value", nil)
		return
	}
	var req RespondFriendRequestRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("respond friend request error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	fr, err := s.friendsService.Respond(ctx, uid, requestID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidAction):
			logger.Error("respond friend request error: unknown action")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "action must be ACCEPT or DECLINE", nil)
		case errors.Is(err, errorvalues.ErrFriendRequestNotFound):
			logger.Error("respond friend request error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "friend request doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotReceiver):
			logger.Error("respond friend request error: responder is not the receiver")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "only the receiver can respond to a request", nil)
		case errors.Is(err, errorvalues.ErrRequestNotPending):
			logger.Error("respond friend request error: request already responded")
			httputil.WriteErrorResponse(w, http.StatusConflict, "friend request has already been responded to", nil)
		default:
			logger.Error("respond friend request error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while responding to request", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, fr)
	logger.Info("friend request responded")
}

func (s *Server) Unfriend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unfriend error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	friendID, err := uuid.Parse(r.PathValue("friendID"))
	if err != nil {
		logger.Error("unfriend error: invalid friend id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid friend id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err = s.friendsService.Unfriend(ctx, uid, friendID); err != nil {
		if errors.Is(err, errorvalues.ErrNotFriends) {
			logger.Error("unfriend error: users are not friends")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "users are not friends", nil)
			return
		}
		logger.Error("unfriend error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while unfriending", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("unfriended")
}

func (s *Server) GetFriends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get friends error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	friends, err := s.friendsService.ListFriends(ctx, uid)
	if err != nil {
		logger.Error("get friends error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting friends list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetFriendsResponse{Friends: friends})
	logger.Info("friends provided")
}

func (s *Server) GetReceivedRequests(w http.ResponseWriter, r *http.Request) {
	s.friendRequestsHandler("received requests", s.friendsService.ListReceived)(w, r)
}

func (s *Server) GetSentRequests(w http.ResponseWriter, r *http.Request) {
	s.friendRequestsHandler("sent requests", s.friendsService.ListSent)(w, r)
}

func (s *Server) friendRequestsHandler(name string, list func(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := GetUIDFromContext(r)
		if err != nil {
			logger.Error(name + " error: unauthorized")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		requests, err := list(ctx, uid)
		if err != nil {
			logger.Error(name+" error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting requests list", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, GetFriendRequestsResponse{Requests: requests})
		logger.Info(name + " provided")
	}
}

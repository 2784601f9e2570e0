package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTheme     = errors.New("unknown theme preference")

	ErrBookNotFound      = errors.New("book doesn't exist")
	ErrInvalidBookStatus = errors.New("unknown book status")

	ErrUserBookNotFound     = errors.New("book is not in user's library")
	ErrBookInLibrary        = errors.New("book already in user's library")
	ErrWrongOwner           = errors.New("resource has different owner")
	ErrInvalidReadingStatus = errors.New("unknown reading status")
	ErrInvalidProgress      = errors.New("progress percentage out of range")

	ErrMilestoneNotFound = errors.New("milestone doesn't exist")
	ErrInvalidGoal       = errors.New("weekly goal must be non-negative")

	ErrSelfFriendRequest     = errors.New("cannot send friend request to yourself")
	ErrFriendRequestExists   = errors.New("friend request already exists between users")
	ErrFriendRequestNotFound = errors.New("friend request doesn't exist")
	ErrNotReceiver           = errors.New("only the receiver can respond to a request")
	ErrRequestNotPending     = errors.New("friend request has already been responded to")
	ErrNotFriends            = errors.New("users are not friends")
	ErrInvalidAction         = errors.New("unknown respond action")

	ErrOtpNotFound = errors.New("no otp found for this email")
	ErrOtpInvalid  = errors.New("invalid otp")
	ErrOtpExpired  = errors.New("otp has expired or already been used")
)

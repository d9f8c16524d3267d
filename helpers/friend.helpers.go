package helpers

import (
	"context"

	"campushub_server/errors"
	"campushub_server/schemas"
	"campushub_server/store"
)

// AddFriend links caller and target in both directions. The target is
// resolved by display name and student id, since a requester knows a
// person's name and id rather than their login handle. Returns the target
// and whether the edge already existed (an informational no-op).
func AddFriend(ctx context.Context, users store.UserStore, caller *schemas.UserSchema, name string, studentID string) (*schemas.UserSchema, bool, error) {

	target, err := users.FindUserByNameID(ctx, name, studentID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, false, errors.Operation(errors.KindNotFound, "Friend", "no user with that name and student id")
		}
		return nil, false, errors.Operation(errors.KindStoreFailure, "users", err.Error())
	}

	if target.Username == caller.Username {
		return nil, false, errors.Operation(errors.KindInvalidInput, "Friend", "cannot friend yourself")
	}

	for _, friend := range caller.FriendList {
		if friend == target.Username {
			return target, true, nil
		}
	}

	caller.FriendList = append(caller.FriendList, target.Username)
	target.FriendList = append(target.FriendList, caller.Username)

	if err := putBothUsers(ctx, users, caller, target); err != nil {
		return nil, false, err
	}
	return target, false, nil
}

// RemoveFriend unlinks caller and target in both directions by stored
// username. An absent edge is a no-op, so the operation is idempotent.
func RemoveFriend(ctx context.Context, users store.UserStore, caller *schemas.UserSchema, targetUsername string) (*schemas.UserSchema, error) {

	target, err := users.GetUser(ctx, targetUsername)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.Operation(errors.KindNotFound, "Friend", "no such user")
		}
		return nil, errors.Operation(errors.KindStoreFailure, "users", err.Error())
	}

	caller.FriendList = withoutUsername(caller.FriendList, target.Username)
	target.FriendList = withoutUsername(target.FriendList, caller.Username)

	if err := putBothUsers(ctx, users, caller, target); err != nil {
		return nil, err
	}
	return target, nil
}

// ListFriends resolves each stored friend username to its current display
// attributes. A username that no longer resolves is dropped from the view
// without touching the stored list.
func ListFriends(ctx context.Context, users store.UserStore, caller *schemas.UserSchema) ([]schemas.FriendSchema, error) {

	friends := make([]schemas.FriendSchema, 0, len(caller.FriendList))
	for _, username := range caller.FriendList {
		friend, err := users.GetUser(ctx, username)
		if err != nil {
			if err == store.ErrNotFound {
				continue
			}
			return nil, errors.Operation(errors.KindStoreFailure, "users", err.Error())
		}
		friends = append(friends, schemas.FriendSchema{
			Username:     friend.Username,
			Name:         friend.Name,
			StudentID:    friend.StudentID,
			ProfileImage: friend.ProfileImage,
		})
	}
	return friends, nil
}

// putBothUsers issues both record writes concurrently and waits for both.
// There is no cross-record transaction: when one side fails the other may
// have committed, leaving a one-sided edge. That skew is surfaced to the
// caller as a store failure, never repaired here.
func putBothUsers(ctx context.Context, users store.UserStore, a *schemas.UserSchema, b *schemas.UserSchema) error {

	results := make(chan error, 2)
	go func() { results <- users.PutUser(ctx, a) }()
	go func() { results <- users.PutUser(ctx, b) }()

	var first error
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		return errors.Operation(errors.KindStoreFailure, "users", first.Error())
	}
	return nil
}

func withoutUsername(list []string, username string) []string {
	kept := make([]string, 0, len(list))
	for _, entry := range list {
		if entry == username {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

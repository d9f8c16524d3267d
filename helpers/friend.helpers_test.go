package helpers

import (
	Errors "errors"
	"reflect"
	"testing"
	"time"

	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/schemas"
	"campushub_server/store/storetest"
)

func seedPair(st *storetest.Store) {
	st.AddUser(&schemas.UserSchema{
		Username:   "alice",
		Name:       "Alice",
		StudentID:  "20230001",
		FriendList: []string{},
		Created:    time.Now().UTC(),
	})
	st.AddUser(&schemas.UserSchema{
		Username:   "bob",
		Name:       "Bob",
		StudentID:  "20230002",
		FriendList: []string{},
		Created:    time.Now().UTC(),
	})
}

func friendList(t *testing.T, st *storetest.Store, username string) []string {
	t.Helper()
	user, err := st.GetUser(global.Context, username)
	if err != nil {
		t.Fatalf("GetUser(%s): %v", username, err)
	}
	return user.FriendList
}

func TestAddFriend_LinksBothDirections(t *testing.T) {
	st := storetest.New()
	seedPair(st)

	caller, _ := st.GetUser(global.Context, "bob")
	target, already, err := AddFriend(global.Context, st, caller, "Alice", "20230001")
	if err != nil {
		t.Fatalf("AddFriend: %v", err)
	}
	if already {
		t.Fatal("edge reported as existing on first add")
	}
	if target.Username != "alice" {
		t.Fatalf("resolved %s, want alice", target.Username)
	}

	if got := friendList(t, st, "bob"); !reflect.DeepEqual(got, []string{"alice"}) {
		t.Fatalf("bob's friends = %v", got)
	}
	if got := friendList(t, st, "alice"); !reflect.DeepEqual(got, []string{"bob"}) {
		t.Fatalf("alice's friends = %v", got)
	}
}

func TestAddFriend_RepeatIsInformationalNoOp(t *testing.T) {
	st := storetest.New()
	seedPair(st)

	caller, _ := st.GetUser(global.Context, "bob")
	if _, _, err := AddFriend(global.Context, st, caller, "Alice", "20230001"); err != nil {
		t.Fatalf("AddFriend: %v", err)
	}

	caller, _ = st.GetUser(global.Context, "bob")
	_, already, err := AddFriend(global.Context, st, caller, "Alice", "20230001")
	if err != nil {
		t.Fatalf("repeat AddFriend: %v", err)
	}
	if !already {
		t.Fatal("repeat add did not report the existing edge")
	}
	if got := friendList(t, st, "bob"); !reflect.DeepEqual(got, []string{"alice"}) {
		t.Fatalf("bob's friends grew: %v", got)
	}
	if got := friendList(t, st, "alice"); !reflect.DeepEqual(got, []string{"bob"}) {
		t.Fatalf("alice's friends grew: %v", got)
	}
}

func TestAddFriend_SelfReference(t *testing.T) {
	st := storetest.New()
	seedPair(st)

	caller, _ := st.GetUser(global.Context, "alice")
	_, _, err := AddFriend(global.Context, st, caller, "Alice", "20230001")
	if kind := operationKind(t, err); kind != errors.KindInvalidInput {
		t.Fatalf("kind = %s, want InvalidInput", kind)
	}
}

func TestAddFriend_UnknownTarget(t *testing.T) {
	st := storetest.New()
	seedPair(st)

	caller, _ := st.GetUser(global.Context, "alice")
	_, _, err := AddFriend(global.Context, st, caller, "Carol", "20230003")
	if kind := operationKind(t, err); kind != errors.KindNotFound {
		t.Fatalf("kind = %s, want NotFound", kind)
	}
}

func TestAddFriend_OneSidedWriteFailureSurfaces(t *testing.T) {
	st := storetest.New()
	seedPair(st)
	st.PutUserErr = func(username string) error {
		if username == "alice" {
			return Errors.New("write timeout")
		}
		return nil
	}

	caller, _ := st.GetUser(global.Context, "bob")
	_, _, err := AddFriend(global.Context, st, caller, "Alice", "20230001")
	if kind := operationKind(t, err); kind != errors.KindStoreFailure {
		t.Fatalf("kind = %s, want StoreFailure", kind)
	}
}

func TestRemoveFriend_Idempotent(t *testing.T) {
	st := storetest.New()
	seedPair(st)

	caller, _ := st.GetUser(global.Context, "bob")
	if _, _, err := AddFriend(global.Context, st, caller, "Alice", "20230001"); err != nil {
		t.Fatalf("AddFriend: %v", err)
	}

	for i := 0; i < 2; i++ {
		caller, _ = st.GetUser(global.Context, "bob")
		if _, err := RemoveFriend(global.Context, st, caller, "alice"); err != nil {
			t.Fatalf("RemoveFriend pass %d: %v", i+1, err)
		}
		if got := friendList(t, st, "bob"); len(got) != 0 {
			t.Fatalf("pass %d: bob's friends = %v, want none", i+1, got)
		}
		if got := friendList(t, st, "alice"); len(got) != 0 {
			t.Fatalf("pass %d: alice's friends = %v, want none", i+1, got)
		}
	}
}

func TestListFriends_DropsDanglingIdentities(t *testing.T) {
	st := storetest.New()
	seedPair(st)
	st.AddUser(&schemas.UserSchema{
		Username:   "carol",
		Name:       "Carol",
		StudentID:  "20230003",
		FriendList: []string{"alice", "ghost"},
		Created:    time.Now().UTC(),
	})

	caller, _ := st.GetUser(global.Context, "carol")
	friends, err := ListFriends(global.Context, st, caller)
	if err != nil {
		t.Fatalf("ListFriends: %v", err)
	}
	if len(friends) != 1 {
		t.Fatalf("friends = %v, want just alice", friends)
	}
	if friends[0].Username != "alice" || friends[0].Name != "Alice" || friends[0].StudentID != "20230001" {
		t.Fatalf("resolved friend = %+v", friends[0])
	}

	// the stored list keeps the dangling username
	stored := friendList(t, st, "carol")
	if !reflect.DeepEqual(stored, []string{"alice", "ghost"}) {
		t.Fatalf("stored list mutated: %v", stored)
	}
}

package services

import (
	"errors"
	"testing"
)

func TestUserServiceRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db := testDB(t)
		users := NewUserService(db)

		user, err := users.Register("a@x.com", "Alice", "secret123")
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		if user.ID == 0 {
			t.Error("expected a generated id")
		}
		if user.Password == "secret123" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		users := NewUserService(testDB(t))

		cases := [][3]string{
			{"", "Alice", "secret123"},
			{"a@x.com", "", "secret123"},
			{"a@x.com", "Alice", ""},
		}
		for _, tc := range cases {
			if _, err := users.Register(tc[0], tc[1], tc[2]); !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields for %v, got %v", tc, err)
			}
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		users := NewUserService(testDB(t))

		if _, err := users.Register("a@x.com", "Alice", "secret123"); err != nil {
			t.Fatalf("first register failed: %v", err)
		}
		if _, err := users.Register("a@x.com", "Imposter", "other"); !errors.Is(err, ErrUserExists) {
			t.Errorf("expected ErrUserExists, got %v", err)
		}
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	db := testDB(t)
	users := NewUserService(db)
	registerUser(t, db, "a@x.com", "Alice")

	t.Run("ValidCredentials", func(t *testing.T) {
		user, err := users.Authenticate("a@x.com", "secret123")
		if err != nil {
			t.Fatalf("authenticate failed: %v", err)
		}
		if user.Email != "a@x.com" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		if _, err := users.Authenticate("a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		if _, err := users.Authenticate("b@x.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUserServiceUpdate(t *testing.T) {
	t.Run("NameTooShort", func(t *testing.T) {
		db := testDB(t)
		users := NewUserService(db)
		user := registerUser(t, db, "a@x.com", "Alice")

		if err := users.UpdateName(user.ID, "A"); !errors.Is(err, ErrNameTooShort) {
			t.Errorf("expected ErrNameTooShort, got %v", err)
		}
	})

	t.Run("UpdateName", func(t *testing.T) {
		db := testDB(t)
		users := NewUserService(db)
		user := registerUser(t, db, "a@x.com", "Alice")

		if err := users.UpdateName(user.ID, "Alice B"); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		updated, err := users.GetByID(user.ID)
		if err != nil {
			t.Fatal(err)
		}
		if updated.Name != "Alice B" {
			t.Errorf("expected updated name, got %q", updated.Name)
		}
	})

	t.Run("PasswordRotationNeedsCurrent", func(t *testing.T) {
		db := testDB(t)
		users := NewUserService(db)
		user := registerUser(t, db, "a@x.com", "Alice")

		err := users.UpdateProfile(user.ID, "", "", "wrong", "newsecret")
		if !errors.Is(err, ErrWrongPassword) {
			t.Fatalf("expected ErrWrongPassword, got %v", err)
		}

		if err := users.UpdateProfile(user.ID, "", "", "secret123", "newsecret"); err != nil {
			t.Fatalf("rotation failed: %v", err)
		}
		if _, err := users.Authenticate("a@x.com", "newsecret"); err != nil {
			t.Errorf("new password should authenticate: %v", err)
		}
		if _, err := users.Authenticate("a@x.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("old password should be rejected, got %v", err)
		}
	})
}

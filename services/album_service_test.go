package services

import (
	"errors"
	"testing"
)

func TestAlbumCreateAndList(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "a@x.com", "Alice")
	albums := NewAlbumService(db, Options{})

	created, err := albums.Create(user.ID, "Trip", "summer 2025")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}

	listed, err := albums.List(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 album, got %d", len(listed))
	}
	if listed[0].Title != "Trip" || listed[0].Description != "summer 2025" {
		t.Errorf("listed album does not match created one: %+v", listed[0])
	}
}

func TestAlbumEmptyTitle(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "a@x.com", "Alice")
	albums := NewAlbumService(db, Options{})

	t.Run("CreateFails", func(t *testing.T) {
		if _, err := albums.Create(user.ID, "", "desc"); !errors.Is(err, ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}

		listed, err := albums.List(user.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(listed) != 0 {
			t.Errorf("failed create must not insert a row, found %d", len(listed))
		}
	})

	t.Run("UpdateFailsWithoutChange", func(t *testing.T) {
		created, err := albums.Create(user.ID, "Trip", "before")
		if err != nil {
			t.Fatal(err)
		}

		if err := albums.Update(user.ID, created.ID, "", "after"); !errors.Is(err, ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}

		reloaded, err := albums.Get(created.ID)
		if err != nil {
			t.Fatal(err)
		}
		if reloaded.Title != "Trip" || reloaded.Description != "before" {
			t.Errorf("failed update must not alter the row: %+v", reloaded)
		}
	})
}

func TestAlbumUpdate(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "a@x.com", "Alice")
	albums := NewAlbumService(db, Options{})

	created, err := albums.Create(user.ID, "Trip", "old")
	if err != nil {
		t.Fatal(err)
	}

	if err := albums.Update(user.ID, created.ID, "Holiday", "new"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	reloaded, err := albums.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Title != "Holiday" || reloaded.Description != "new" {
		t.Errorf("update not applied: %+v", reloaded)
	}

	if err := albums.Update(user.ID, created.ID+100, "Holiday", ""); !errors.Is(err, ErrAlbumNotFound) {
		t.Errorf("expected ErrAlbumNotFound, got %v", err)
	}
}

func TestAlbumDeleteLeavesPhotos(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "a@x.com", "Alice")
	albums := NewAlbumService(db, Options{})
	photos := NewPhotoService(db, Options{})

	album, err := albums.Create(user.ID, "Trip", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := photos.Create(album.ID, user.ID, []byte("jpegdata"), "image/jpeg", "Beach"); err != nil {
		t.Fatal(err)
	}

	if err := albums.Delete(user.ID, album.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	gone, err := albums.Get(album.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Error("album row should be gone")
	}

	// Photos of a deleted album survive by default
	orphans, err := photos.List(album.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(orphans) != 1 {
		t.Errorf("expected orphaned photo to remain, got %d photos", len(orphans))
	}
}

func TestAlbumCascadeDelete(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "a@x.com", "Alice")
	albums := NewAlbumService(db, Options{CascadePhotoDelete: true})
	photos := NewPhotoService(db, Options{})

	album, err := albums.Create(user.ID, "Trip", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := photos.Create(album.ID, user.ID, []byte("jpegdata"), "image/jpeg", ""); err != nil {
		t.Fatal(err)
	}

	if err := albums.Delete(user.ID, album.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	remaining, err := photos.List(album.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 {
		t.Errorf("cascade delete should remove photos, got %d", len(remaining))
	}
}

func TestAlbumOwnershipEnforcement(t *testing.T) {
	db := testDB(t)
	owner := registerUser(t, db, "a@x.com", "Alice")
	intruder := registerUser(t, db, "b@x.com", "Bob")
	albums := NewAlbumService(db, Options{EnforceOwnership: true})

	album, err := albums.Create(owner.ID, "Trip", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := albums.Update(intruder.ID, album.ID, "Hijacked", ""); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on update, got %v", err)
	}
	if err := albums.Delete(intruder.ID, album.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on delete, got %v", err)
	}

	if err := albums.Update(owner.ID, album.ID, "Still Mine", ""); err != nil {
		t.Errorf("owner update should pass: %v", err)
	}
}

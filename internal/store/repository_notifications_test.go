package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/models"
)

func newTestNotificationRepo(t *testing.T) (*notificationCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &notificationCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestNotificationReplace_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	n := models.Notification{
		ID:        1,
		Actor:     models.User{ID: 2, Username: "bob"},
		Verb:      models.VerbLike,
		TweetID:   5,
		TweetText: "hello",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM notifications").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(
			n.ID,
			n.Actor.ID,
			n.Actor.Username,
			n.Actor.DisplayName,
			n.Actor.AvatarURL,
			string(n.Verb),
			n.TweetID,
			n.TweetText,
			n.IsRead,
			n.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Replace(context.Background(), []models.Notification{n}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestNotificationReplace_EmptyFeedClearsCache(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM notifications").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	if err := repo.Replace(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestNotificationReplace_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM notifications").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO notifications").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.Replace(context.Background(), []models.Notification{{ID: 1}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestNotificationList_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(notificationColumns).
		AddRow(2, 3, "carol", "Carol", "", "follow", 0, "", false, now.Add(time.Minute)).
		AddRow(1, 2, "bob", "Bob", "", "like", 5, "hello", true, now)

	mock.ExpectQuery("SELECT .+ FROM notifications ORDER BY created_at DESC, id DESC").
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Verb != models.VerbFollow {
		t.Errorf("expected follow verb first, got %s", got[0].Verb)
	}
	if got[1].TweetID != 5 || got[1].TweetText != "hello" {
		t.Errorf("expected tweet reference on like notification, got %+v", got[1])
	}
}

func TestNotificationMarkAllRead_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE notifications SET is_read = .+ WHERE is_read = ?").
		WithArgs(true, false).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.MarkAllRead(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotificationUnreadCount_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE is_read = ?`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	got, err := repo.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("expected 4 unread, got %d", got)
	}
}

func TestNotificationClear_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notifications").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

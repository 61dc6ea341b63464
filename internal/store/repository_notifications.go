package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/models"
)

var notificationColumns = []string{
	"id",
	"actor_id",
	"actor_username",
	"actor_display_name",
	"actor_avatar_url",
	"verb",
	"tweet_id",
	"tweet_text",
	"is_read",
	"created_at",
}

type notificationCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewNotificationCacheRepository(db *DB, logger *logger.Logger) NotificationCacheRepository {
	return &notificationCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// Replace runs in a transaction so readers never observe a half-swapped feed.
func (r *notificationCacheRepository) Replace(ctx context.Context, notifications []models.Notification) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin notifications replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery, _, err := sq.Delete("notifications").ToSql()
	if err != nil {
		return fmt.Errorf("build notifications delete: %w", err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery); err != nil {
		return fmt.Errorf("clear notifications before replace: %w", err)
	}

	if len(notifications) > 0 {
		builder := sq.Insert("notifications").Columns(notificationColumns...)
		for _, n := range notifications {
			builder = builder.Values(
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
			)
		}

		insertQuery, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("build notifications insert: %w", err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, args...); err != nil {
			r.logger.Err(err).
				Str("func", "notificationCacheRepository.Replace").
				Int("count", len(notifications)).
				Msg("failed to insert notifications into cache")
			return fmt.Errorf("insert notifications: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit notifications replace: %w", err)
	}

	return nil
}

func (r *notificationCacheRepository) List(ctx context.Context) ([]models.Notification, error) {
	query, _, err := sq.Select(notificationColumns...).
		From("notifications").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notifications select: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		r.logger.Err(err).
			Str("func", "notificationCacheRepository.List").
			Msg("failed to query cached notifications")
		return nil, fmt.Errorf("query cached notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		var verb string
		if err = rows.Scan(
			&n.ID,
			&n.Actor.ID,
			&n.Actor.Username,
			&n.Actor.DisplayName,
			&n.Actor.AvatarURL,
			&verb,
			&n.TweetID,
			&n.TweetText,
			&n.IsRead,
			&n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cached notification: %w", err)
		}
		n.Verb = models.NotificationVerb(verb)
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached notifications: %w", err)
	}

	return notifications, nil
}

func (r *notificationCacheRepository) MarkAllRead(ctx context.Context) error {
	query, args, err := sq.Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark-read update: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "notificationCacheRepository.MarkAllRead").
			Msg("failed to mark cached notifications read")
		return fmt.Errorf("mark cached notifications read: %w", err)
	}

	return nil
}

func (r *notificationCacheRepository) UnreadCount(ctx context.Context) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build unread count: %w", err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Err(err).
			Str("func", "notificationCacheRepository.UnreadCount").
			Msg("failed to count unread notifications")
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return count, nil
}

func (r *notificationCacheRepository) Clear(ctx context.Context) error {
	query, _, err := sq.Delete("notifications").ToSql()
	if err != nil {
		return fmt.Errorf("build notifications clear: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query); err != nil {
		r.logger.Err(err).
			Str("func", "notificationCacheRepository.Clear").
			Msg("failed to clear notification cache")
		return fmt.Errorf("clear notification cache: %w", err)
	}

	return nil
}

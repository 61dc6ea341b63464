// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/models"
)

var tweetColumns = []string{
	"id",
	"author_id",
	"author_username",
	"author_display_name",
	"author_avatar_url",
	"text",
	"photo_url",
	"like_count",
	"is_liked",
	"created_at",
	"updated_at",
}

type tweetCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewTweetCacheRepository(db *DB, logger *logger.Logger) TweetCacheRepository {
	return &tweetCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *tweetCacheRepository) Upsert(ctx context.Context, tweets ...models.Tweet) error {
	if len(tweets) == 0 {
		return nil
	}

	builder := sq.Insert("tweets").
		Options("OR REPLACE").
		Columns(tweetColumns...)
	for _, t := range tweets {
		builder = builder.Values(
			t.ID,
			t.User.ID,
			t.User.Username,
			t.User.DisplayName,
			t.User.AvatarURL,
			t.Text,
			t.PhotoURL,
			t.LikeCount,
			t.IsLiked,
			t.CreatedAt,
			t.UpdatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build tweets upsert: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "tweetCacheRepository.Upsert").
			Int("count", len(tweets)).
			Msg("failed to upsert tweets into cache")
		return fmt.Errorf("upsert tweets: %w", err)
	}

	return nil
}

func (r *tweetCacheRepository) List(ctx context.Context) ([]models.Tweet, error) {
	return r.list(ctx, sq.Select(tweetColumns...).
		From("tweets").
		OrderBy("created_at DESC", "id DESC"))
}

func (r *tweetCacheRepository) ListByAuthor(ctx context.Context, username string) ([]models.Tweet, error) {
	return r.list(ctx, sq.Select(tweetColumns...).
		From("tweets").
		Where(sq.Eq{"author_username": username}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *tweetCacheRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]models.Tweet, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tweets select: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "tweetCacheRepository.list").
			Msg("failed to query cached tweets")
		return nil, fmt.Errorf("query cached tweets: %w", err)
	}
	defer rows.Close()

	var tweets []models.Tweet
	for rows.Next() {
		var t models.Tweet
		if err = rows.Scan(
			&t.ID,
			&t.User.ID,
			&t.User.Username,
			&t.User.DisplayName,
			&t.User.AvatarURL,
			&t.Text,
			&t.PhotoURL,
			&t.LikeCount,
			&t.IsLiked,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cached tweet: %w", err)
		}
		tweets = append(tweets, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached tweets: %w", err)
	}

	return tweets, nil
}

func (r *tweetCacheRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("tweets").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build tweet delete: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "tweetCacheRepository.Delete").
			Int64("tweet_id", id).
			Msg("failed to delete tweet from cache")
		return fmt.Errorf("delete cached tweet: %w", err)
	}

	return nil
}

func (r *tweetCacheRepository) ApplyLike(ctx context.Context, id int64, liked bool, likeCount int) error {
	query, args, err := sq.Update("tweets").
		Set("is_liked", liked).
		Set("like_count", likeCount).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build like update: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "tweetCacheRepository.ApplyLike").
			Int64("tweet_id", id).
			Msg("failed to update like state in cache")
		return fmt.Errorf("update cached like state: %w", err)
	}

	return nil
}

func (r *tweetCacheRepository) Clear(ctx context.Context) error {
	query, _, err := sq.Delete("tweets").ToSql()
	if err != nil {
		return fmt.Errorf("build tweets clear: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query); err != nil {
		r.logger.Err(err).
			Str("func", "tweetCacheRepository.Clear").
			Msg("failed to clear tweet cache")
		return fmt.Errorf("clear tweet cache: %w", err)
	}

	return nil
}

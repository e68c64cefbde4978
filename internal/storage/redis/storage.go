package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	id, err := s.client.Incr(ctx, userSeqKey()).Result()
	if err != nil {
		return err
	}
	user.ID = model.UserID(id)

	// SETNX on the username index is the authoritative uniqueness guard:
	// the loser of a concurrent create fails here
	ok, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), id, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUsernameTaken
	}

	if user.Email != "" {
		ok, err := s.client.SetNX(ctx, emailIndexKey(user.Email), id, 0).Result()
		if err != nil {
			return err
		}
		if !ok {
			// Roll back the username claim so the name stays available
			_ = s.client.Del(ctx, usernameIndexKey(user.Username)).Err()
			return model.ErrEmailTaken
		}
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.getUserByIndex(ctx, usernameIndexKey(username))
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUserByIndex(ctx, emailIndexKey(email))
}

func (s *Storage) getUserByIndex(ctx context.Context, indexKey string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, indexKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, model.UserID(id))
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	recordIDs, err := s.client.ZRange(ctx, recordsForUserIndexKey(id), 0, -1).Result()
	if err != nil {
		return err
	}

	// Cascade-delete the user's records along with the user and its indexes
	pipe := s.client.Pipeline()
	for _, ridStr := range recordIDs {
		rid, err := strconv.ParseInt(ridStr, 10, 64)
		if err != nil {
			continue
		}
		pipe.Del(ctx, recordKey(model.RecordID(rid)))
	}
	pipe.Del(ctx, recordsForUserIndexKey(id))
	pipe.Del(ctx, usernameIndexKey(user.Username))
	if user.Email != "" {
		pipe.Del(ctx, emailIndexKey(user.Email))
	}
	pipe.Del(ctx, userKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Game record operations

func (s *Storage) CreateGameRecord(ctx context.Context, record *model.GameRecord) error {
	id, err := s.client.Incr(ctx, recordSeqKey()).Result()
	if err != nil {
		return err
	}
	record.ID = model.RecordID(id)

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Pipeline the record save with its per-user index entry
	pipe := s.client.Pipeline()
	pipe.Set(ctx, recordKey(record.ID), data, 0)
	pipe.ZAdd(ctx, recordsForUserIndexKey(record.UserID), redis.Z{
		Score:  float64(record.PlayedAt.UnixNano()),
		Member: id,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListGameRecordsForUser(ctx context.Context, userID model.UserID) ([]*model.GameRecord, error) {
	recordIDs, err := s.client.ZRevRange(ctx, recordsForUserIndexKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.GameRecord, 0, len(recordIDs))
	for _, ridStr := range recordIDs {
		rid, err := strconv.ParseInt(ridStr, 10, 64)
		if err != nil {
			continue
		}

		data, err := s.client.Get(ctx, recordKey(model.RecordID(rid))).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}

		var record model.GameRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}

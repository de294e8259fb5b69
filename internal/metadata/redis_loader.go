package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annel0/mmo-guard/internal/logging"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// DefaultKeyPrefix - префикс ключей Redis с метками сущностей
const DefaultKeyPrefix = "entity:tags"

// RedisConfig настройки подключения загрузчика меток
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	Timeout   time.Duration
}

// RedisLoader читает метки сущностей, которые другие компоненты сервера
// хранят в Redis как множества `<prefix>:<uuid>`, и собирает их в снимок Tags.
// Сетевой запрос выполняется один раз на пакет сущностей, сами предикаты
// работают уже со снимком в памяти.
type RedisLoader struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisLoader создаёт загрузчик и проверяет соединение с Redis
func NewRedisLoader(ctx context.Context, config RedisConfig) (*RedisLoader, error) {
	if config.Addr == "" {
		return nil, errors.New("redis address is empty")
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.Info("Redis загрузчик меток подключён: %s (prefix=%s)", config.Addr, prefixOrDefault(config.KeyPrefix))
	return NewRedisLoaderFromClient(rdb, config.KeyPrefix), nil
}

// NewRedisLoaderFromClient оборачивает готовый клиент (например, кластерный)
func NewRedisLoaderFromClient(client redis.UniversalClient, keyPrefix string) *RedisLoader {
	return &RedisLoader{
		client:    client,
		keyPrefix: prefixOrDefault(keyPrefix),
	}
}

// Key возвращает ключ Redis для меток сущности
func (l *RedisLoader) Key(id uuid.UUID) string {
	return l.keyPrefix + ":" + id.String()
}

// Load загружает метки указанных сущностей одним конвейером SMEMBERS
func (l *RedisLoader) Load(ctx context.Context, ids ...uuid.UUID) (*Tags, error) {
	tags := NewTags()
	if len(ids) == 0 {
		return tags, nil
	}

	pipe := l.client.Pipeline()
	cmds := make([]*redis.StringSliceCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.SMembers(ctx, l.Key(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis pipeline error: %w", err)
	}

	for i, cmd := range cmds {
		keys, err := cmd.Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("failed to load tags for %s: %w", ids[i], err)
		}
		tags.Add(ids[i], keys...)
	}

	logging.Debug("Загружены метки для %d сущностей (с метками: %d)", len(ids), tags.Len())
	return tags, nil
}

// Tag навешивает метки на сущность в Redis. Используется инструментами
// администрирования и тестовыми стендами.
func (l *RedisLoader) Tag(ctx context.Context, id uuid.UUID, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	members := make([]interface{}, len(keys))
	for i, key := range keys {
		members[i] = key
	}

	if err := l.client.SAdd(ctx, l.Key(id), members...).Err(); err != nil {
		return fmt.Errorf("redis sadd error: %w", err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (l *RedisLoader) Close() error {
	return l.client.Close()
}

func prefixOrDefault(prefix string) string {
	if prefix == "" {
		return DefaultKeyPrefix
	}
	return prefix
}

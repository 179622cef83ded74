// Package cache contém o cache versionado em Redis usado pelas análises
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	versionKey      = "tpm:analytics:version"
	invalidationKey = "tpm:analytics:bump"
)

var ErrLoaderRequired = errors.New("cache: loader required")

// Cache guarda resultados em JSON com uma versão global para invalidação.
// Um Cache nulo ou sem cliente apenas executa o loader.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// NewRedisClient cria o cliente Redis a partir da configuração
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}

	return client, nil
}

// Version retorna a versão atual do cache, inicializando quando ausente
func (c *Cache) Version(ctx context.Context) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}

	ver, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) || (err == nil && ver <= 0) {
		if err := c.client.SetNX(ctx, versionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return c.client.Get(ctx, versionKey).Int64()
	}
	if err != nil {
		return 0, err
	}

	return ver, nil
}

// BuildKey compõe a chave com a versão atual
func (c *Cache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	joined := strings.Join(parts, ":")
	if c == nil || c.client == nil {
		return joined, nil
	}

	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:v%d", joined, ver), nil
}

// FetchJSON lê o valor em cache ou o popula usando o loader
func (c *Cache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return ErrLoaderRequired
	}

	if c == nil || c.client == nil {
		return loadInto(ctx, dest, loader)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		if err := json.Unmarshal(payload, dest); err == nil {
			return nil
		}
		logrus.WithField("key", key).Warn("Payload inválido no cache, recarregando")
	} else if !errors.Is(err, redis.Nil) {
		return err
	}

	value, err := loader(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao gravar resultado no cache")
	}

	return json.Unmarshal(raw, dest)
}

// Bump invalida o cache incrementando a versão global e publicando o evento
func (c *Cache) Bump(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	ver, err := c.client.Incr(ctx, versionKey).Result()
	if err != nil {
		return err
	}

	return c.client.Publish(ctx, invalidationKey, strconv.FormatInt(ver, 10)).Err()
}

func loadInto(ctx context.Context, dest any, loader func(context.Context) (any, error)) error {
	value, err := loader(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, dest)
}

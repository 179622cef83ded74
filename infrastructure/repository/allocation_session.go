package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=allocation_session.go -destination=mocks/allocation_session_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const allocationSessionPrefix = "tpm:budget:session:"

var (
	ErrSessionNotFound = errors.New("allocation session not found")
	// ErrSessionChanged indica que outra requisição alterou a sessão entre a leitura e a escrita
	ErrSessionChanged = errors.New("allocation session changed concurrently")
)

type AllocationSessionRepository interface {
	Save(ctx context.Context, session *domain.AllocationSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*domain.AllocationSession, error)
	// SwapState grava a sessão somente se o estado armazenado ainda for o esperado
	SwapState(ctx context.Context, expected domain.AllocationSessionState, session *domain.AllocationSession, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type allocationSessionRepository struct {
	client *redis.Client
}

func NewAllocationSessionRepository(client *redis.Client) AllocationSessionRepository {
	return &allocationSessionRepository{
		client: client,
	}
}

func (r *allocationSessionRepository) Save(ctx context.Context, session *domain.AllocationSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("erro ao serializar sessão: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar sessão no redis: %w", err)
	}

	return nil
}

func (r *allocationSessionRepository) Get(ctx context.Context, sessionID string) (*domain.AllocationSession, error) {
	payload, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("erro ao ler sessão do redis: %w", err)
	}

	session := &domain.AllocationSession{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("erro ao desserializar sessão: %w", err)
	}

	return session, nil
}

func (r *allocationSessionRepository) SwapState(
	ctx context.Context,
	expected domain.AllocationSessionState,
	session *domain.AllocationSession,
	ttl time.Duration,
) error {
	key := sessionKey(session.ID)

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("erro ao serializar sessão: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrSessionNotFound
			}
			return err
		}

		stored := &domain.AllocationSession{}
		if err := json.Unmarshal(current, stored); err != nil {
			return fmt.Errorf("erro ao desserializar sessão: %w", err)
		}
		if stored.State != expected {
			return ErrSessionChanged
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrSessionChanged
	}

	return err
}

func (r *allocationSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return allocationSessionPrefix + sessionID
}

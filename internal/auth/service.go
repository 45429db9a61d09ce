package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/fitlogapp/fitlog/pkg"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitlog-session||"
	tokensSetKey     = "fitlog-sessions"

	// session values are "<user id>||<created at unix>"
	sessionValueSeparator = "||"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(
	db *pgxpool.Pool,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		db:             db,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login checks the credentials against the account table and creates a new
// session, returning its token.
func (as *Service) Login(ctx context.Context, username, password string) (string, error) {
	var userID, passwordHash string
	err := as.db.QueryRow(
		ctx,
		`SELECT id, password_hash FROM account WHERE username = $1;`,
		username,
	).Scan(&userID, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("get account: %w", err)
	}

	if !pkg.CheckPasswordHash(password, passwordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionValue := fmt.Sprintf("%s%s%d", userID, sessionValueSeparator, time.Now().Unix())
	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, sessionValue, 0).Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Get(ctx, sessionKey).Err(); err != nil {
		return err
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return err
	}

	// remove token from the list of sessions
	return as.redisClient.SRem(ctx, tokensSetKey, token).Err()
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
		if err := cmd.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			log.Warnf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}

func parseSessionValue(value string) (userID string, createdAt time.Time, err error) {
	parts := strings.Split(value, sessionValueSeparator)
	if len(parts) != 2 {
		return "", time.Time{}, fmt.Errorf("malformed session value [%s]", value)
	}

	createdAtUnix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed session timestamp [%s]", value)
	}

	return parts[0], time.Unix(createdAtUnix, 0), nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "meteorit"

// holdScript claims [start, start+duration) on one table. Each table keeps a
// sorted set of "owner:start" members scored by their expiry in unix
// milliseconds. A claim overlapping another owner's live hold fails; the
// caller's own earlier holds on the table are replaced.
//
// KEYS[1] holds key; ARGV: owner, start (unix s), duration (s), now (ms),
// expiry (ms), ttl (ms).
var holdScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", ARGV[4])
local start = tonumber(ARGV[2])
local duration = tonumber(ARGV[3])
local own = {}
for _, member in ipairs(redis.call("ZRANGE", KEYS[1], 0, -1)) do
	local owner, s = string.match(member, "^(%-?%d+):(%-?%d+)$")
	if owner == ARGV[1] then
		table.insert(own, member)
	elseif s and math.abs(tonumber(s) - start) < duration then
		return 0
	end
end
for _, member in ipairs(own) do
	redis.call("ZREM", KEYS[1], member)
end
redis.call("ZADD", KEYS[1], ARGV[5], ARGV[1] .. ":" .. ARGV[2])
redis.call("PEXPIRE", KEYS[1], ARGV[6])
return 1
`)

type RedisCache struct {
	client   *redis.Client
	holdTTL  time.Duration
	stateTTL time.Duration
	slot     time.Duration
	now      func() time.Time
}

// NewRedisCache builds the cache. slot is the length of a reservation and
// decides when two holds on one table overlap.
func NewRedisCache(client *redis.Client, holdTTL, stateTTL, slot time.Duration) *RedisCache {
	return &RedisCache{
		client:   client,
		holdTTL:  holdTTL,
		stateTTL: stateTTL,
		slot:     slot,
		now:      time.Now,
	}
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Hold claims the slot interval on tableRef for userID until the hold TTL
// passes. A guest that already holds the same start gets its hold extended.
func (c *RedisCache) Hold(ctx context.Context, tableRef string, start time.Time, userID int64) (bool, error) {
	key := holdsKey(tableRef)
	now := c.now()

	res, err := holdScript.Run(ctx, c.client, []string{key},
		strconv.FormatInt(userID, 10),
		start.Unix(),
		int64(c.slot/time.Second),
		now.UnixMilli(),
		now.Add(c.holdTTL).UnixMilli(),
		c.holdTTL.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("acquire hold %s: %w", key, err)
	}
	return res == 1, nil
}

func (c *RedisCache) Release(ctx context.Context, tableRef string, start time.Time, userID int64) error {
	key := holdsKey(tableRef)
	if err := c.client.ZRem(ctx, key, holdMember(userID, start)).Err(); err != nil {
		return fmt.Errorf("release hold %s: %w", key, err)
	}
	return nil
}

// Held returns the live holds on tableRefs that belong to anyone but
// exceptUserID.
func (c *RedisCache) Held(ctx context.Context, tableRefs []string, exceptUserID int64) ([]domain.SlotHold, error) {
	if len(tableRefs) == 0 {
		return nil, nil
	}

	live := &redis.ZRangeBy{
		Min: "(" + strconv.FormatInt(c.now().UnixMilli(), 10),
		Max: "+inf",
	}
	cmds := make([]*redis.StringSliceCmd, len(tableRefs))
	if _, err := c.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, table := range tableRefs {
			cmds[i] = p.ZRangeByScore(ctx, holdsKey(table), live)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("list holds: %w", err)
	}

	var out []domain.SlotHold
	for i, cmd := range cmds {
		for _, member := range cmd.Val() {
			userID, start, ok := parseHoldMember(member)
			if !ok || userID == exceptUserID {
				continue
			}
			out = append(out, domain.SlotHold{TableRef: tableRefs[i], StartAt: start, UserID: userID})
		}
	}
	return out, nil
}

// LoadState decodes the chat state into dst and reports whether any was stored.
func (c *RedisCache) LoadState(ctx context.Context, chatID int64, dst any) (bool, error) {
	data, err := c.client.Get(ctx, stateKey(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("load state: %w", err)
	}

	if err = json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode state: %w", err)
	}
	return true, nil
}

func (c *RedisCache) SaveState(ctx context.Context, chatID int64, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return c.client.Set(ctx, stateKey(chatID), payload, c.stateTTL).Err()
}

func (c *RedisCache) DeleteState(ctx context.Context, chatID int64) error {
	return c.client.Del(ctx, stateKey(chatID)).Err()
}

func holdsKey(tableRef string) string {
	return fmt.Sprintf("%s:holds:%s", keyPrefix, tableRef)
}

func holdMember(userID int64, start time.Time) string {
	return fmt.Sprintf("%d:%d", userID, start.Unix())
}

func parseHoldMember(member string) (int64, time.Time, bool) {
	owner, ts, ok := strings.Cut(member, ":")
	if !ok {
		return 0, time.Time{}, false
	}
	userID, err := strconv.ParseInt(owner, 10, 64)
	if err != nil {
		return 0, time.Time{}, false
	}
	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return 0, time.Time{}, false
	}
	return userID, time.Unix(unix, 0).UTC(), true
}

func stateKey(chatID int64) string {
	return fmt.Sprintf("%s:dialog:%d", keyPrefix, chatID)
}

package storage

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/lqhuy182/art-registry/internal/core/domain"
)

const ownerKeyPrefix = "owner:"

// replaceOwnerScript swaps the mirrored owner only when the entry still
// reads the expected previous owner. A missing entry counts as a match
// so a cold mirror warms up on the first transfer it sees.
var replaceOwnerScript = redis.NewScript(`
local key = KEYS[1]
local from = ARGV[1]
local to = ARGV[2]

local current = redis.call('GET', key)
if current == false or current == from then
	redis.call('SET', key, to)
	return 1
end

return 0
`)

// RedisAdapter mirrors the authoritative owner of each item for
// out-of-process readers.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func ownerKey(itemID domain.ItemID) string {
	return ownerKeyPrefix + strconv.FormatUint(uint64(itemID), 10)
}

func (r *RedisAdapter) SetOwner(ctx context.Context, itemID domain.ItemID, owner domain.Account) error {
	return r.client.Set(ctx, ownerKey(itemID), string(owner), 0).Err()
}

func (r *RedisAdapter) ReplaceOwner(ctx context.Context, itemID domain.ItemID, from, to domain.Account) (bool, error) {
	result, err := replaceOwnerScript.Run(ctx, r.client, []string{ownerKey(itemID)}, string(from), string(to)).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

func (r *RedisAdapter) GetOwner(ctx context.Context, itemID domain.ItemID) (domain.Account, bool, error) {
	owner, err := r.client.Get(ctx, ownerKey(itemID)).Result()
	if err == redis.Nil {
		return domain.NullAccount, false, nil
	}
	if err != nil {
		return domain.NullAccount, false, err
	}
	return domain.Account(owner), true, nil
}

func (r *RedisAdapter) DeleteOwner(ctx context.Context, itemID domain.ItemID) error {
	return r.client.Del(ctx, ownerKey(itemID)).Err()
}

package redis

import "github.com/redis/go-redis/v9"

// deleteByNameScript removes every record in a name index.
// KEYS[1] name index, KEYS[2] all-players set, ARGV[1] player key prefix.
var deleteByNameScript = redis.NewScript(`
local ids = redis.call('SMEMBERS', KEYS[1])
for _, id in ipairs(ids) do
  redis.call('DEL', ARGV[1] .. id)
  redis.call('SREM', KEYS[2], id)
end
redis.call('DEL', KEYS[1])
return #ids
`)

// incrementByNameScript bumps counters on every record in a name index.
// KEYS[1] name index, ARGV[1] player key prefix, ARGV[2] played field,
// ARGV[3] won field or empty for a loss.
var incrementByNameScript = redis.NewScript(`
local ids = redis.call('SMEMBERS', KEYS[1])
for _, id in ipairs(ids) do
  local key = ARGV[1] .. id
  redis.call('HINCRBY', key, ARGV[2], 1)
  if ARGV[3] ~= '' then
    redis.call('HINCRBY', key, ARGV[3], 1)
  end
end
return #ids
`)

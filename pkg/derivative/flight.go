package derivative

import (
	"hash/fnv"

	"golang.org/x/sync/singleflight"
)

const flightShards = 64

// flightGroup coalesces computations of the same key. Keys are spread over
// independent groups, so unrelated keys rarely contend on the same lock.
type flightGroup struct {
	shards [flightShards]singleflight.Group
}

func (g *flightGroup) DoChan(signature string, fn func() (interface{}, error)) <-chan singleflight.Result {
	return g.shardOf(signature).DoChan(signature, fn)
}

func (g *flightGroup) shardOf(signature string) *singleflight.Group {
	hash := fnv.New32a()
	hash.Write([]byte(signature))
	return &g.shards[hash.Sum32()%flightShards]
}

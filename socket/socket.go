package socket

import (
	"sync"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

const CONCURRENCY = 32
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type conc_client_table struct {
	table map[string]chan []byte
	sync.RWMutex
}
type conc_client_table_shards []*conc_client_table

func (ct conc_client_table_shards) get_shard(id string) *conc_client_table {
	return ct[fnv1a.HashString32(id)%CONCURRENCY]
}

var client_chan_table conc_client_table_shards = func() conc_client_table_shards {
	shards := make([]*conc_client_table, CONCURRENCY)

	for i := 0; uint32(i) < CONCURRENCY; i++ {
		shards[i] = &conc_client_table{table: make(map[string]chan []byte)}
	}

	return shards
}()

func create_client() (string, chan []byte) {

	messageChannel := make(chan []byte, 8)

	clientID, err := nanoid.GenerateString(VALID_NANOID_CHAR, 10)
	if err != nil {
		return "", nil
	}

	shard := client_chan_table.get_shard(clientID)

	shard.Lock()

	for {
		if _, exists := shard.table[clientID]; !exists {
			break
		}
		clientID, err = nanoid.GenerateString(VALID_NANOID_CHAR, 10)
		if err != nil {
			shard.Unlock()
			return "", nil
		}
	}

	shard.table[clientID] = messageChannel

	shard.Unlock()

	return clientID, messageChannel
}

func delete_client(clientID string) {

	shard := client_chan_table.get_shard(clientID)

	shard.Lock()
	delete(shard.table, clientID)
	shard.Unlock()
}

func client_count() int {

	count := 0
	for _, shard := range client_chan_table {
		shard.RLock()
		count += len(shard.table)
		shard.RUnlock()
	}
	return count
}

// broadcast fans a payload out to every connected client. Slow clients
// whose buffers are full are skipped rather than blocking the sender.
func broadcast(payload []byte) {

	for _, shard := range client_chan_table {
		shard.RLock()
		for _, messageChannel := range shard.table {
			select {
			case messageChannel <- payload:
			default:
			}
		}
		shard.RUnlock()
	}
}

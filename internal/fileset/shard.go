package fileset

import "hash/fnv"

// Shard returns the subset of files assigned to shard index out of count.
// Assignment hashes each path with FNV-1a modulo count, so membership is a
// pure function of the file's identity: re-sharding the same set yields
// identical shards, shards are pairwise disjoint, and their union is the
// input. Relative order within a shard follows the input order.
func Shard(files []string, index, count int) []string {
	if count <= 1 {
		out := make([]string, len(files))
		copy(out, files)
		return out
	}
	var out []string
	for _, f := range files {
		h := fnv.New32a()
		_, _ = h.Write([]byte(f))
		if int(h.Sum32()%uint32(count)) == index {
			out = append(out, f)
		}
	}
	return out
}

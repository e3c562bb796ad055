package cookiejar

import "time"

// enforceLimits evicts entries after the entry keyed by key/eid was
// created, first within its bucket and then within the whole jar.
func (j *Jar) enforceLimits(key, eid string, now time.Time) {
	if j.maxEntriesPerDomain > 0 {
		for len(j.entries[key]) > j.maxEntriesPerDomain {
			if !j.evict([]string{key}, eid, now) {
				break
			}
		}
	}
	if j.maxEntries > 0 {
		for j.size > j.maxEntries {
			keys := make([]string, 0, len(j.entries))
			for k := range j.entries {
				keys = append(keys, k)
			}
			if !j.evict(keys, eid, now) {
				break
			}
		}
	}
}

// evict removes one entry of the given buckets other than keep: an expired
// one if any, else the least recently accessed.
func (j *Jar) evict(keys []string, keep string, now time.Time) bool {
	var (
		victim    *Entry
		victimKey string
	)
	for _, key := range keys {
		for eid, e := range j.entries[key] {
			if eid == keep {
				continue
			}
			if victim == nil || evictBefore(e, victim, now) {
				victim, victimKey = e, key
			}
		}
	}
	if victim == nil {
		return false
	}
	j.logger.Debug("evict cookie", "id", victim.ID())
	j.remove(victimKey, victim.ID())
	return true
}

func evictBefore(a, b *Entry, now time.Time) bool {
	if ae, be := a.expired(now), b.expired(now); ae != be {
		return ae
	}
	if !a.LastAccess.Equal(b.LastAccess) {
		return a.LastAccess.Before(b.LastAccess)
	}
	return a.SeqNum < b.SeqNum
}

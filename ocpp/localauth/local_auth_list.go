package localauth

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"sort"
	"sync"
)

const ProfileName = "LocalAuthListManagement"

var Profile = []ocpp.Feature{
	GetLocalListVersionFeature{},
	SendLocalListFeature{},
}

// LocalAuthList is the local authorization list of one charge point. Entries
// are keyed by the folded id tag, so lookups ignore case.
type LocalAuthList struct {
	mutex     sync.RWMutex
	version   int
	maxLength int
	entries   map[types.IdTokenKey]types.AuthorizationData
}

// NewLocalAuthList maxLength limits the number of entries, 0 means no limit.
func NewLocalAuthList(maxLength int) *LocalAuthList {
	return &LocalAuthList{
		maxLength: maxLength,
		entries:   make(map[types.IdTokenKey]types.AuthorizationData),
	}
}

// Apply installs a full or differential update. A rejected update leaves the
// list unchanged.
//
// A full update replaces the list and every entry must carry IdTagInfo. A
// differential update must have a higher version than the installed list; an
// entry with IdTagInfo is added or replaced, an entry without it is removed.
// An IdTagInfo without a valid status fails the update.
func (l *LocalAuthList) Apply(request *SendLocalListRequest) UpdateStatus {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var next map[types.IdTokenKey]types.AuthorizationData
	switch request.UpdateType {
	case UpdateTypeFull:
		next = make(map[types.IdTokenKey]types.AuthorizationData, len(request.LocalAuthorizationList))
		for _, entry := range request.LocalAuthorizationList {
			if !entry.HasIdTagInfo() || !entry.IdTagInfo.Status.IsValid() {
				return UpdateStatusFailed
			}
			next[entry.IdTag.Key()] = entry
		}
	case UpdateTypeDifferential:
		if request.ListVersion <= l.version {
			return UpdateStatusVersionMismatch
		}
		next = make(map[types.IdTokenKey]types.AuthorizationData, len(l.entries))
		for key, entry := range l.entries {
			next[key] = entry
		}
		for _, entry := range request.LocalAuthorizationList {
			if entry.HasIdTagInfo() {
				if !entry.IdTagInfo.Status.IsValid() {
					return UpdateStatusFailed
				}
				next[entry.IdTag.Key()] = entry
			} else {
				delete(next, entry.IdTag.Key())
			}
		}
	default:
		return UpdateStatusFailed
	}

	if l.maxLength > 0 && len(next) > l.maxLength {
		return UpdateStatusFailed
	}
	l.entries = next
	l.version = request.ListVersion
	return UpdateStatusAccepted
}

// Lookup returns the authorization info stored for idTag.
func (l *LocalAuthList) Lookup(idTag types.IdToken) (*types.IdTagInfo, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	entry, ok := l.entries[idTag.Key()]
	if !ok {
		return nil, false
	}
	return entry.IdTagInfo, true
}

func (l *LocalAuthList) Version() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.version
}

func (l *LocalAuthList) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.entries)
}

// Snapshot returns the version and the entries ordered by key.
func (l *LocalAuthList) Snapshot() (int, []types.AuthorizationData) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	keys := make([]string, 0, len(l.entries))
	for key := range l.entries {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)
	entries := make([]types.AuthorizationData, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, l.entries[types.IdTokenKey(key)])
	}
	return l.version, entries
}

// Restore replaces the list with a previously saved snapshot.
func (l *LocalAuthList) Restore(version int, entries []types.AuthorizationData) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.entries = make(map[types.IdTokenKey]types.AuthorizationData, len(entries))
	for _, entry := range entries {
		l.entries[entry.IdTag.Key()] = entry
	}
	l.version = version
}

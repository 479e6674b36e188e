package catalog

import "sort"

// DiffResult describes how one message set differs from another.
type DiffResult struct {
	// Added contains messages present only in the new set.
	Added []Message

	// Removed contains messages present only in the old set.
	Removed []Message

	// Unchanged contains messages identical in both sets.
	Unchanged []Message

	// Changed contains pairs where the value differs for the same key
	// and language.
	Changed []ChangedMessage
}

// ChangedMessage pairs the old and new versions of a changed message.
type ChangedMessage struct {
	Old Message
	New Message
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Unchanged int
	Changed   int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Unchanged: len(d.Unchanged),
		Changed:   len(d.Changed),
	}
}

// HasChanges reports whether the two sets differ.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0
}

// NeedsReview returns the messages a translator still has to look at:
// the added ones plus the new side of every change.
func (d *DiffResult) NeedsReview() []Message {
	msgs := make([]Message, 0, len(d.Added)+len(d.Changed))
	msgs = append(msgs, d.Added...)
	for _, ch := range d.Changed {
		msgs = append(msgs, ch.New)
	}
	sortMessages(msgs)
	return msgs
}

type messageID struct {
	key  string
	lang string
}

// Diff compares two message sets, matching messages by key and language
// code. It is meant for incremental catalog updates: diff two bundle
// exports and re-translate only what NeedsReview reports. All result
// slices come back sorted by language, then key.
func Diff(oldMessages, newMessages []Message) *DiffResult {
	oldByID := indexByID(oldMessages)
	newByID := indexByID(newMessages)

	result := &DiffResult{}

	for id, newMsg := range newByID {
		oldMsg, ok := oldByID[id]
		switch {
		case !ok:
			result.Added = append(result.Added, newMsg)
		case oldMsg.Value == newMsg.Value:
			result.Unchanged = append(result.Unchanged, newMsg)
		default:
			result.Changed = append(result.Changed, ChangedMessage{Old: oldMsg, New: newMsg})
		}
	}

	for id, oldMsg := range oldByID {
		if _, ok := newByID[id]; !ok {
			result.Removed = append(result.Removed, oldMsg)
		}
	}

	sortMessages(result.Added)
	sortMessages(result.Removed)
	sortMessages(result.Unchanged)
	sortChanged(result.Changed)

	return result
}

// indexByID maps messages by key and language. Later duplicates replace
// earlier ones, mirroring Catalog.Add.
func indexByID(msgs []Message) map[messageID]Message {
	byID := make(map[messageID]Message, len(msgs))
	for _, msg := range msgs {
		byID[messageID{key: msg.Key, lang: msg.LanguageCode}] = msg
	}
	return byID
}

// sortChanged orders changed pairs by the new message's language, then key.
func sortChanged(changed []ChangedMessage) {
	sort.Slice(changed, func(i, j int) bool {
		if changed[i].New.LanguageCode != changed[j].New.LanguageCode {
			return changed[i].New.LanguageCode < changed[j].New.LanguageCode
		}
		return changed[i].New.Key < changed[j].New.Key
	})
}

package wikrawler

// ChunkEntries splits entries into consecutive chunks of at most size
// entries, preserving order. The last chunk holds the remainder.
// A size below 1 yields a single chunk.
func ChunkEntries(entries []*DictionaryEntry, size int) [][]*DictionaryEntry {
	if len(entries) == 0 {
		return nil
	}
	if size < 1 {
		return [][]*DictionaryEntry{entries}
	}
	chunks := make([][]*DictionaryEntry, 0, (len(entries)+size-1)/size)
	for len(entries) > size {
		chunks = append(chunks, entries[:size:size])
		entries = entries[size:]
	}
	return append(chunks, entries)
}

// Package wikrawler crawls the English Wiktionary index pages and extracts
// dictionary entries (word, part of speech, numbered definitions, source URL)
// one index page at a time, handing each page's batch to a sink.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, postgres/).
package wikrawler

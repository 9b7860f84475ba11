// Package redact replaces sensitive substrings with placeholders.
//
// [Redact] runs one pass per category in a fixed order: email, IPv4,
// UUIDv4, JWT, token. Each pass rewrites the output of the previous one, so
// text claimed by an earlier category is never seen by a later one. An email
// address with a random-looking local part therefore becomes <EMAIL> and is
// not also counted as a token.
//
// Placeholders are either fixed (<EMAIL>, <IP>, <UUID>, <JWT>, <TOKEN>) or,
// with Options.StablePlaceholders, numbered per category in order of
// appearance (<EMAIL_1>, <EMAIL_2>, ...). Placeholders never match any
// pattern, which makes Redact idempotent.
//
// Path-based redaction is also supported: files whose paths match configured
// glob patterns have their entire content withheld rather than being
// scanned.
package redact
